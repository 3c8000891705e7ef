// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/auth"
	"github.com/vocdoni/votecaster-tui/internal/config"
	"github.com/vocdoni/votecaster-tui/internal/log"
)

// ViewState represents the current state of the TUI.
type ViewState int

const (
	StateSignIn ViewState = iota // No authenticated session
	StateMenu
	StatePollForm
	StatePollDone
	StateCommunityForm
	StateCommunityDone
	StatePolls
	StatePollDetail
	StateCommunities
	StateCommunityDetail
)

// Model is the main TUI model that holds shared application state.
type Model struct {
	// State management
	State ViewState

	// Collaborators
	Cfg     *config.Config
	Session *auth.Session
	Client  *api.Client
	Logger  *log.Logger

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool // True when waiting for second Ctrl+C press
}

// NewModel creates a new Model with the given collaborators. The initial
// view state follows the session: the sign-in gate when signed out, the
// menu otherwise.
func NewModel(cfg *config.Config, session *auth.Session, client *api.Client, logger *log.Logger) *Model {
	state := StateSignIn
	if session.IsAuthenticated() {
		state = StateMenu
	}

	return &Model{
		State:   state,
		Cfg:     cfg,
		Session: session,
		Client:  client,
		Logger:  logger,

		// Default dimensions (will be updated on WindowSizeMsg)
		Width:  80,
		Height: 24,
	}
}
