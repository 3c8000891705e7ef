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

// ClosePollMsg returns from the poll detail to the poll browser.
type ClosePollMsg struct{}

// PollDetailModel is the view model for one poll's details, including the
// running tally when the backend has one.
type PollDetailModel struct {
	poll     *api.Poll
	viewport viewport.Model
	loading  bool
	errMsg   string
	spinner  spinner.Model
	width    int
	height   int
}

// NewPollDetailModel creates a poll detail view in the loading state.
func NewPollDetailModel(width, height int) PollDetailModel {
	vp := viewport.New(70, 16)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return PollDetailModel{
		viewport: vp,
		loading:  true,
		spinner:  sp,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the poll detail view.
func (m PollDetailModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the poll detail view.
func (m PollDetailModel) Update(msg tea.Msg) (PollDetailModel, tea.Cmd) {
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

	case tui.PollLoadedMsg:
		m.loading = false
		m.errMsg = ""
		m.poll = msg.Poll
		m.viewport.SetContent(renderPoll(msg.Poll))
		return m, nil

	case tui.BrowseErrMsg:
		m.loading = false
		m.errMsg = errMessage(msg.Err)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == tui.KeyEsc {
			return m, func() tea.Msg { return ClosePollMsg{} }
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// renderPoll formats a poll's question, choices, tally and timing.
func renderPoll(p *api.Poll) string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(p.Question))
	b.WriteString("\n\n")

	for i, choice := range p.Choices {
		line := fmt.Sprintf("%d. %s", i+1, choice)
		if i < len(p.Tally) {
			line += tui.DimStyle.Render(fmt.Sprintf("  (%s votes)", p.Tally[i]))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Votes cast: %d", p.CastedVotes))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Turnout: %.1f%%", p.Turnout))
	b.WriteString("\n")
	if p.Username != "" {
		b.WriteString(fmt.Sprintf("Created by @%s", p.Username))
		b.WriteString("\n")
	}
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf(
		"Created %s · Ends %s",
		p.CreatedTime.Format("Jan 02, 2006 15:04"),
		p.EndTime.Format("Jan 02, 2006 15:04"),
	)))
	b.WriteString("\n")
	if p.Finalized {
		b.WriteString(tui.SuccessStyle.Render("Finalized"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Share: https://farcaster.vote/" + p.PollID))
	return b.String()
}

// View renders the poll detail view.
func (m PollDetailModel) View() string {
	if m.loading {
		return tui.BoxStyle.Render(m.spinner.View() + " Loading poll...")
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
