package intake

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMaxSessions session cap used when none is configured
const DefaultMaxSessions = 10000

// Sessions keeps one Wizard per browser, keyed by a cookie value. Sessions
// idle for longer than the TTL expire in the background; when the registry
// is full the least recently used session is evicted.
type Sessions struct {
	newWizard func() *Wizard
	cache     *expirable.LRU[string, *Wizard]
}

// NewSessions creates a registry holding at most maxSessions wizards;
// newWizard builds the wizard of a new session.
func NewSessions(newWizard func() *Wizard, idleTTL time.Duration, maxSessions int) *Sessions {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Sessions{
		newWizard: newWizard,
		cache:     expirable.NewLRU[string, *Wizard](maxSessions, nil, idleTTL),
	}
}

// Lookup returns the live wizard of session id and refreshes its idle timer.
// It never creates a session.
func (s *Sessions) Lookup(id string) (*Wizard, bool) {
	if id == "" {
		return nil, false
	}
	w, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	s.cache.Add(id, w)
	return w, true
}

// Get returns the wizard of session id, creating a new session when id is
// unknown or expired. The returned id is the one the caller must keep.
func (s *Sessions) Get(id string) (*Wizard, string) {
	if w, ok := s.Lookup(id); ok {
		return w, id
	}

	id = uuid.NewString()
	w := s.newWizard()
	s.cache.Add(id, w)
	return w, id
}

// Fresh a wizard in its initial state that is not registered
func (s *Sessions) Fresh() *Wizard {
	return s.newWizard()
}

// Len number of live sessions
func (s *Sessions) Len() int {
	return s.cache.Len()
}
