package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// PollDoneModel is the read-only confirmation shown after a successful
// poll submission. There is no path from here back to editing the draft;
// Esc starts over with a fresh form via the menu.
type PollDoneModel struct {
	pollID string
	width  int
	height int
}

// NewPollDoneModel creates the confirmation view for the given poll id.
func NewPollDoneModel(pollID string, width, height int) PollDoneModel {
	return PollDoneModel{pollID: pollID, width: width, height: height}
}

// Init returns the initial command for the confirmation view.
func (m PollDoneModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view.
func (m PollDoneModel) Update(msg tea.Msg) (PollDoneModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc, tui.KeyEnter:
			return m, func() tea.Msg { return tui.GoMenuMsg{} }
		}
	}
	return m, nil
}

// View renders the confirmation view.
func (m PollDoneModel) View() string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render("✓ Poll created!"))
	b.WriteString("\n\n")
	b.WriteString("Poll id: ")
	b.WriteString(tui.TitleStyle.Render(m.pollID))
	b.WriteString("\n\n")
	b.WriteString("Share it on a cast:\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("https://farcaster.vote/%s", m.pollID)))
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Enter to go back to the menu"))

	return tui.BoxStyle.Render(b.String())
}

// CommunityDoneModel is the read-only confirmation shown after a
// successful community submission.
type CommunityDoneModel struct {
	community *api.Community
	width     int
	height    int
}

// NewCommunityDoneModel creates the confirmation view for the given
// community.
func NewCommunityDoneModel(community *api.Community, width, height int) CommunityDoneModel {
	return CommunityDoneModel{community: community, width: width, height: height}
}

// Init returns the initial command for the confirmation view.
func (m CommunityDoneModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view.
func (m CommunityDoneModel) Update(msg tea.Msg) (CommunityDoneModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc, tui.KeyEnter:
			return m, func() tea.Msg { return tui.GoMenuMsg{} }
		}
	}
	return m, nil
}

// View renders the confirmation view.
func (m CommunityDoneModel) View() string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render("✓ Community created!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s (id %d)\n", m.community.Name, m.community.ID))
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("Census: %s", m.community.CensusType)))
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Enter to go back to the menu"))

	return tui.BoxStyle.Render(b.String())
}
