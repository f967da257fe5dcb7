// Package engine is the single worker that drains the chat queue. One
// message is processed to completion before the next is picked up.
package engine

import (
	"context"
	"log/slog"
	"time"

	"leadagent/app/service/conversation"
	"leadagent/app/service/queue"

	"github.com/samber/do"
)

type Service struct {
	conversationSvc *conversation.Service
	queueSvc        *queue.Service
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		conversationSvc: do.MustInvoke[*conversation.Service](di),
		queueSvc:        do.MustInvoke[*queue.Service](di),
	}, nil
}

func (s *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-s.queueSvc.Channel():
			if !ok {
				return
			}

			start := time.Now()
			reply := s.conversationSvc.Reply(ctx, job.SessionID, job.Text, job.History)

			select {
			case job.Reply <- reply:
			default:
				slog.Warn("Reply channel abandoned", "session_id", job.SessionID)
			}

			slog.Info("Processed message",
				"session_id", job.SessionID,
				"text", job.Text,
				"duration", time.Since(start))
		}
	}
}
