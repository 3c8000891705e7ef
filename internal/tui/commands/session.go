// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/auth"
	"github.com/vocdoni/votecaster-tui/internal/log"
	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// LoginCmd validates the access token against the backend and persists the
// session. Returns LoginResultMsg either way; the session is only mutated
// on success.
func LoginCmd(session *auth.Session, client *api.Client, logger *log.Logger, token string) tea.Cmd {
	return func() tea.Msg {
		profile, err := session.Login(context.Background(), token, func(ctx context.Context, tok string) (*api.Profile, error) {
			return client.WithToken(tok).Me(ctx)
		})
		if err != nil {
			return tui.LoginResultMsg{Err: err}
		}
		_ = logger.Append(log.LogEvent{Event: log.EventLogin, FID: profile.FID, Username: profile.Username})
		return tui.LoginResultMsg{Profile: profile}
	}
}

// LogoutCmd tears the session down. The UI keeps treating the session as
// authenticated until SessionClearedMsg arrives.
func LogoutCmd(session *auth.Session, logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		if err := session.Logout(context.Background()); err != nil {
			return tui.SessionClearedMsg{Err: err}
		}
		_ = logger.Append(log.LogEvent{Event: log.EventLogout})
		return tui.SessionClearedMsg{}
	}
}
