// Package queue serializes inbound chat messages: the engine drains it one
// job at a time, which is what keeps the pending store and the record files
// free of same-session races.
package queue

import (
	"log/slog"

	"leadagent/app/service/conversation"

	"github.com/samber/do"
)

const bufferSize = 64

var _ do.Shutdownable = (*Service)(nil)

type Service struct {
	queue chan Job
}

type Job struct {
	SessionID string
	Text      string
	History   []conversation.Turn

	// Reply receives exactly one reply string; buffered by the producer.
	Reply chan string
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		queue: make(chan Job, bufferSize),
	}, nil
}

// Add enqueues a job without blocking. Returns false when the queue is full
// or shut down.
func (s *Service) Add(job Job) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	select {
	case s.queue <- job:
		return true
	default:
		slog.Warn("message queue is full")
		return false
	}
}

func (s *Service) Channel() <-chan Job {
	return s.queue
}

func (s *Service) Shutdown() error {
	close(s.queue)

	return nil
}
