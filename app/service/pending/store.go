// Package pending tracks partially-filled leads per conversation session.
package pending

import (
	"sync"

	"github.com/samber/do"
)

// Lead is a transient accumulator of contact info for one session.
// Zero value means "nothing known yet".
type Lead struct {
	Name     string
	Email    string
	Interest string
}

// Complete reports whether the lead is worth finalizing: an email plus at
// least one of name or interest.
func (l Lead) Complete() bool {
	return l.Email != "" && (l.Name != "" || l.Interest != "")
}

// Empty reports whether no signal has been collected at all.
func (l Lead) Empty() bool {
	return l == Lead{}
}

// Store keeps pending leads keyed by session id. Lives for the whole
// process, entries are removed only on successful finalization.
type Store struct {
	mu    sync.RWMutex
	leads map[string]Lead
}

func New(_ *do.Injector) (*Store, error) {
	return NewStore(), nil
}

func NewStore() *Store {
	return &Store{
		leads: make(map[string]Lead),
	}
}

// Update merges the supplied fields into the session's entry, creating it
// if needed. Empty arguments leave the stored field untouched.
func (s *Store) Update(sessionID, name, email, interest string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := s.leads[sessionID]

	if name != "" {
		lead.Name = name
	}
	if email != "" {
		lead.Email = email
	}
	if interest != "" {
		lead.Interest = interest
	}

	s.leads[sessionID] = lead
}

// Get returns the stored entry or a zero Lead. It never creates an entry.
func (s *Store) Get(sessionID string) Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.leads[sessionID]
}

// Complete reports whether the session's pending lead can be finalized.
func (s *Store) Complete(sessionID string) bool {
	return s.Get(sessionID).Complete()
}

// Clear removes the session's entry. Called after a lead is recorded.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.leads, sessionID)
}
