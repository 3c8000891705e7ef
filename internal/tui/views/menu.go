package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// Menu actions.
const (
	ActionNewPoll = iota
	ActionNewCommunity
	ActionBrowsePolls
	ActionBrowseCommunities
	ActionLogout
)

// MenuSelectMsg is emitted when the user picks a menu action.
type MenuSelectMsg struct {
	Action int
}

// menuEntry is one selectable line of the menu.
type menuEntry struct {
	action int
	label  string
}

// MenuModel is the authenticated landing view.
type MenuModel struct {
	profile    *api.Profile
	entries    []menuEntry
	selected   int
	signingOut bool
	Err        error
	width      int
	height     int
}

// NewMenuModel creates the menu for the given signed-in profile.
func NewMenuModel(profile *api.Profile, width, height int) MenuModel {
	return MenuModel{
		profile: profile,
		entries: []menuEntry{
			{ActionNewPoll, "Create a new poll"},
			{ActionNewCommunity, "Create a new community"},
			{ActionBrowsePolls, "Browse polls"},
			{ActionBrowseCommunities, "Browse communities"},
			{ActionLogout, "Log out"},
		},
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the menu view.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// SetSigningOut marks the logout teardown as in flight. The menu stays on
// screen, still showing the authenticated branch, until the session is
// actually cleared.
func (m *MenuModel) SetSigningOut(v bool) {
	m.signingOut = v
}

// Update handles messages for the menu view.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.signingOut {
			return m, nil
		}
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.selected > 0 {
				m.selected--
			}
		case tui.KeyDown, "j":
			if m.selected < len(m.entries)-1 {
				m.selected++
			}
		case tui.KeyEnter:
			action := m.entries[m.selected].action
			return m, func() tea.Msg {
				return MenuSelectMsg{Action: action}
			}
		}
	}

	return m, nil
}

// View renders the menu view.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Votecaster"))
	if m.profile != nil {
		b.WriteString(tui.DimStyle.Render(fmt.Sprintf("  @%s", m.profile.Username)))
	}
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		if i == m.selected {
			b.WriteString(tui.SelectedStyle.Render("❯ " + entry.label))
		} else {
			b.WriteString("  " + entry.label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.signingOut {
		b.WriteString(tui.DimStyle.Render("Signing out..."))
	} else if m.Err != nil {
		b.WriteString(tui.ErrorStyle.Render(m.Err.Error()))
	} else {
		b.WriteString(tui.DimStyle.Render("Enter to select · ↑↓ to navigate · Ctrl+C to quit"))
	}

	return tui.BoxStyle.Render(b.String())
}
