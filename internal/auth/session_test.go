package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vocdoni/votecaster-tui/internal/api"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func staticVerifier(profile *api.Profile, err error) Verifier {
	return func(ctx context.Context, token string) (*api.Profile, error) {
		return profile, err
	}
}

func TestSessionStartsSignedOut(t *testing.T) {
	s, err := NewSession(testStore(t))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("fresh session should be signed out")
	}
	if s.Profile() != nil {
		t.Error("signed-out session should have a nil profile")
	}
}

func TestLoginAndRestore(t *testing.T) {
	store := testStore(t)
	s, err := NewSession(store)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	profile := &api.Profile{FID: 42, Username: "alice"}
	got, err := s.Login(context.Background(), "tok", staticVerifier(profile, nil))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if got.Username != "alice" || !s.IsAuthenticated() {
		t.Errorf("post-login state: %+v authenticated=%v", got, s.IsAuthenticated())
	}
	if s.Token() != "tok" {
		t.Errorf("token: got %q", s.Token())
	}

	// A new session over the same store restores the sign-in.
	restored, err := NewSession(store)
	if err != nil {
		t.Fatalf("NewSession (restore) failed: %v", err)
	}
	if !restored.IsAuthenticated() || restored.Profile().FID != 42 {
		t.Errorf("restored session: authenticated=%v profile=%+v",
			restored.IsAuthenticated(), restored.Profile())
	}
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	s, err := NewSession(testStore(t))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	_, err = s.Login(context.Background(), "bad", staticVerifier(nil, errors.New("invalid token")))
	if err == nil {
		t.Fatal("expected an error")
	}
	if s.IsAuthenticated() || s.Profile() != nil {
		t.Error("failed login mutated session state")
	}
}

func TestLogoutClearsStateAndStore(t *testing.T) {
	store := testStore(t)
	s, err := NewSession(store)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if _, err := s.Login(context.Background(), "tok", staticVerifier(&api.Profile{FID: 1}, nil)); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := s.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if s.IsAuthenticated() || s.Profile() != nil {
		t.Error("logout should clear the in-memory session")
	}
	creds, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if creds != nil {
		t.Error("logout should clear the persisted session")
	}
}

func TestSubscribeNotifiesOnChanges(t *testing.T) {
	s, err := NewSession(testStore(t))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	calls := 0
	id := s.Subscribe(func() { calls++ })
	if _, err := s.Login(context.Background(), "tok", staticVerifier(&api.Profile{FID: 1}, nil)); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := s.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("listener calls: got %d, want 2", calls)
	}

	s.Unsubscribe(id)
	if _, err := s.Login(context.Background(), "tok", staticVerifier(&api.Profile{FID: 1}, nil)); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("unsubscribed listener was called: %d", calls)
	}
}
