// Package record is the sole writer of finalized leads and feedback. Both
// lists are mirrored to flat JSON array files, rewritten in full on every
// change.
package record

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"leadagent/app/config"
	"leadagent/app/service/pending"

	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
	"github.com/samber/oops"
)

const (
	defaultName    = "Interested Client"
	defaultMessage = "General inquiry"

	emailPrompt = "Could you share your email address so our team can reach you?"
)

type Service struct {
	leadsPath    string
	feedbackPath string
	pendingStore *pending.Store

	mu       sync.Mutex
	leads    []Lead
	feedback []Feedback
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return NewService(cfg.Storage.LeadsPath, cfg.Storage.FeedbackPath, do.MustInvoke[*pending.Store](di))
}

func NewService(leadsPath, feedbackPath string, pendingStore *pending.Store) (*Service, error) {
	s := &Service{
		leadsPath:    leadsPath,
		feedbackPath: feedbackPath,
		pendingStore: pendingStore,
	}

	// missing files are a fresh install, not an error
	if err := loadList(leadsPath, &s.leads); err != nil {
		return nil, err
	}
	if err := loadList(feedbackPath, &s.feedback); err != nil {
		return nil, err
	}

	return s, nil
}

func loadList[T any](path string, out *[]T) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return oops.Errorf("failed to read %s: %w", path, err)
	}

	if err = json.Unmarshal(data, out); err != nil {
		return oops.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

func saveList[T any](path string, list []T) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return oops.Errorf("failed to marshal %s: %w", path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return oops.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// RecordLead finalizes a lead. Missing arguments fall back to the pending
// store for the session, then to fixed defaults. Email is the only gate: if
// it is still absent after resolution, nothing is persisted and the returned
// text asks the user for one.
func (s *Service) RecordLead(name, email, message, sessionID string) (string, error) {
	stored := s.pendingStore.Get(sessionID)

	if name == "" {
		name = stored.Name
	}
	if email == "" {
		email = stored.Email
	}
	if message == "" {
		message = stored.Interest
	}

	if email == "" {
		return emailPrompt, nil
	}

	if name == "" {
		name = defaultName
	}
	if message == "" {
		message = defaultMessage
	}

	lead := Lead{
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: time.Now(),
		Status:    StatusNew,
		SessionID: sessionID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = append(s.leads, lead)

	if err := saveList(s.leadsPath, s.leads); err != nil {
		s.leads = s.leads[:len(s.leads)-1]
		return "", err
	}

	s.pendingStore.Clear(sessionID)

	slog.Info("New lead captured",
		"name", name,
		"email", email,
		"message", message,
		"telegram", true)

	return fmt.Sprintf("Thank you %s! We've received your interest and will contact you at %s shortly.",
		name, email), nil
}

// RecordFeedback appends an unanswered question unconditionally.
func (s *Service) RecordFeedback(question string) (string, error) {
	entry := Feedback{
		Question:  question,
		Timestamp: time.Now(),
		Status:    StatusUnanswered,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.feedback = append(s.feedback, entry)

	if err := saveList(s.feedbackPath, s.feedback); err != nil {
		s.feedback = s.feedback[:len(s.feedback)-1]
		return "", err
	}

	slog.Info("Unanswered question recorded",
		"question", question,
		"telegram", true)

	return fmt.Sprintf("We've noted your question about '%s'. Our team will research this and get back to you.",
		question), nil
}

// Stats returns totals plus the number of leads captured today.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := time.Now().Format(time.DateOnly)

	newToday := pie.Filter(s.leads, func(l Lead) bool {
		return l.Timestamp.Format(time.DateOnly) == today
	})

	return Stats{
		TotalLeads:    len(s.leads),
		TotalFeedback: len(s.feedback),
		NewLeadsToday: len(newToday),
	}
}
