// Package session holds the client-side session state: an in-memory store
// guarded by a mutex, a sqlite-backed cache so the CLI survives restarts,
// and a background job that periodically re-validates the held credential
// against the API.
package session

import (
	"sync"
	"time"

	"github.com/sunway-travel/vacation-booking/models"
)

// State is a snapshot of the client's session.
type State struct {
	Token       string
	User        models.SessionUser
	ValidatedAt time.Time
}

// Store is the in-memory client session holder. All access is mutex-guarded;
// the re-validation job and the interactive flow touch it concurrently.
type Store struct {
	mu    sync.RWMutex
	state State
	held  bool

	// now is injected so tests can pin the clock.
	now func() time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Set replaces the held session with the given token and user, stamping the
// validation time from the store's clock.
func (s *Store) Set(token string, user models.SessionUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Token: token, User: user, ValidatedAt: s.now()}
	s.held = true
}

// Touch refreshes the validation timestamp of the held session. No-op when
// no session is held.
func (s *Store) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.held {
		s.state.ValidatedAt = s.now()
	}
}

// Get returns the held session state and whether one is held.
func (s *Store) Get() (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.held
}

// Token returns the held credential, empty when no session is held.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// Clear drops the held session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
	s.held = false
}
