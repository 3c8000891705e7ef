package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// CloseCommunityMsg returns from the community detail to the community
// browser.
type CloseCommunityMsg struct{}

// CommunityDetailModel is the view model for one community's details.
type CommunityDetailModel struct {
	community *api.Community
	viewport  viewport.Model
	loading   bool
	errMsg    string
	spinner   spinner.Model
	width     int
	height    int
}

// NewCommunityDetailModel creates a community detail view in the loading
// state.
func NewCommunityDetailModel(width, height int) CommunityDetailModel {
	vp := viewport.New(70, 16)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return CommunityDetailModel{
		viewport: vp,
		loading:  true,
		spinner:  sp,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the community detail view.
func (m CommunityDetailModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the community detail view.
func (m CommunityDetailModel) Update(msg tea.Msg) (CommunityDetailModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tui.CommunityLoadedMsg:
		m.loading = false
		m.errMsg = ""
		m.community = msg.Community
		m.viewport.SetContent(renderCommunity(msg.Community))
		return m, nil

	case tui.BrowseErrMsg:
		m.loading = false
		m.errMsg = errMessage(msg.Err)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == tui.KeyEsc {
			return m, func() tea.Msg { return CloseCommunityMsg{} }
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// renderCommunity formats a community's census and channel configuration.
func renderCommunity(c *api.Community) string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(c.Name))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("ID: %d", c.ID))
	b.WriteString("\n")
	if c.Disabled {
		b.WriteString(tui.WarningStyle.Render("Disabled"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(tui.LabelStyle.Render("Census"))
	b.WriteString("\n")
	switch c.CensusType {
	case api.CensusTypeChannel:
		if c.CensusChannel != nil {
			b.WriteString(fmt.Sprintf("Channel /%s (%d followers)", c.CensusChannel.ID, c.CensusChannel.Followers))
		} else {
			b.WriteString("Channel based")
		}
		b.WriteString("\n")
	case api.CensusTypeERC20, api.CensusTypeNFT:
		b.WriteString(c.CensusType)
		b.WriteString("\n")
		for _, addr := range c.CensusAddresses {
			b.WriteString(fmt.Sprintf("  %s on %s", addr.Address, addr.Blockchain))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if len(c.Channels) > 0 {
		b.WriteString(tui.LabelStyle.Render("Announcement channels"))
		b.WriteString("\n")
		for _, ch := range c.Channels {
			b.WriteString("  /" + ch)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if c.GroupChatURL != "" {
		b.WriteString(tui.DimStyle.Render("Group chat: " + c.GroupChatURL))
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the community detail view.
func (m CommunityDetailModel) View() string {
	if m.loading {
		return tui.BoxStyle.Render(m.spinner.View() + " Loading community...")
	}
	if m.errMsg != "" {
		return tui.BoxStyle.Render(
			tui.ErrorStyle.Render(m.errMsg) + "\n\n" +
				tui.DimStyle.Render("Esc to go back"),
		)
	}
	return tui.BoxStyle.Render(
		m.viewport.View() + "\n\n" +
			tui.DimStyle.Render("↑↓ to scroll · Esc to go back"),
	)
}
