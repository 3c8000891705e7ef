// Package views provides TUI view components for the Votecaster application.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// SubmitTokenMsg is emitted when the user submits an access token.
type SubmitTokenMsg struct {
	Token string
}

// SignInModel is the signed-out gate. Until a session exists this is the
// only view the application renders.
type SignInModel struct {
	tokenInput     textinput.Model
	spinner        spinner.Model
	authenticating bool
	Err            error
	width          int
	height         int
}

// NewSignInModel creates a new SignInModel.
func NewSignInModel(width, height int) SignInModel {
	ti := textinput.New()
	ti.Placeholder = "Paste your Votecaster access token..."
	ti.CharLimit = 512
	ti.Width = 60
	ti.EchoMode = textinput.EchoPassword
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return SignInModel{
		tokenInput: ti,
		spinner:    sp,
		width:      width,
		height:     height,
	}
}

// Init returns the initial command for the sign-in view.
func (m SignInModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetAuthenticating toggles the in-flight indicator. While authenticating
// the token input is ignored.
func (m *SignInModel) SetAuthenticating(v bool) {
	m.authenticating = v
}

// Update handles messages for the sign-in view.
func (m SignInModel) Update(msg tea.Msg) (SignInModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.authenticating {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.authenticating {
			return m, nil
		}
		if msg.String() == tui.KeyEnter {
			token := strings.TrimSpace(m.tokenInput.Value())
			if token == "" {
				return m, nil
			}
			m.authenticating = true
			m.Err = nil
			return m, tea.Batch(
				m.spinner.Tick,
				func() tea.Msg { return SubmitTokenMsg{Token: token} },
			)
		}
	}

	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return m, cmd
}

// View renders the sign-in view.
func (m SignInModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Votecaster"))
	b.WriteString("\n\n")
	b.WriteString("Sign in with Farcaster to create a poll\n\n")

	if m.authenticating {
		b.WriteString(m.spinner.View())
		b.WriteString(" Verifying token...")
	} else {
		b.WriteString(m.tokenInput.View())
	}
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(m.Err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Enter to sign in · Ctrl+C to quit"))

	return tui.BoxStyle.Render(b.String())
}
