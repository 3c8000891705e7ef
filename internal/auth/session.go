package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/vocdoni/votecaster-tui/internal/api"
)

// Verifier validates an access token against the backend and returns the
// profile it belongs to. Satisfied by (*api.Client).Me via a closure.
type Verifier func(ctx context.Context, token string) (*api.Profile, error)

// Session is the process-wide authentication state. It is created once at
// application start, mutated only through Login and Logout, and observed by
// views through Subscribe. The invariant that an authenticated session
// carries a non-nil profile holds at all times.
type Session struct {
	mu      sync.RWMutex
	store   *Store
	profile *api.Profile
	token   string

	nextSub   int
	listeners map[int]func()
}

// NewSession creates a Session backed by the given store and restores any
// persisted sign-in.
func NewSession(store *Store) (*Session, error) {
	s := &Session{
		store:     store,
		listeners: make(map[int]func()),
	}
	creds, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	if creds != nil {
		s.profile = creds.Profile
		s.token = creds.Token
	}
	return s, nil
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile != nil
}

// Profile returns the signed-in user's profile, or nil when signed out.
func (s *Session) Profile() *api.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Token returns the access token of the current sign-in, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Login validates the token with the verifier, persists the resulting
// credentials and transitions to authenticated. The state is untouched on
// failure.
func (s *Session) Login(ctx context.Context, token string, verify Verifier) (*api.Profile, error) {
	profile, err := verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("verifying token: %w", err)
	}
	if _, err := s.store.Save(token, profile); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.profile = profile
	s.token = token
	s.mu.Unlock()

	s.notify()
	return profile, nil
}

// Logout clears the persisted credentials and then the in-memory state.
// The session stays authenticated until the store is cleared, so an
// observer never sees a signed-out state while the teardown is still able
// to fail.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	s.mu.Lock()
	s.profile = nil
	s.token = ""
	s.mu.Unlock()

	s.notify()
	return nil
}

// Subscribe registers a callback invoked after every sign-in state change
// and returns a handle for Unsubscribe.
func (s *Session) Subscribe(fn func()) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	s.listeners[s.nextSub] = fn
	return s.nextSub
}

// Unsubscribe removes a previously registered callback.
func (s *Session) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

func (s *Session) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
