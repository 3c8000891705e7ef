package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// OpenPollMsg is sent when the user selects a poll from the browser.
type OpenPollMsg struct {
	PollID string
}

// PollItem implements list.Item for the poll browser.
type PollItem struct {
	poll *api.Poll
}

// Title returns the poll question for list display.
func (i PollItem) Title() string {
	return i.poll.Question
}

// Description returns the vote count and author for list display.
func (i PollItem) Description() string {
	state := "open"
	if i.poll.Finalized {
		state = "finalized"
	}
	return fmt.Sprintf("%d votes · %s · by @%s", i.poll.CastedVotes, state, i.poll.Username)
}

// FilterValue returns the value used for filtering in the list.
func (i PollItem) FilterValue() string {
	return i.poll.Question
}

// PollsModel is the view model for the poll browser screen.
type PollsModel struct {
	pollList list.Model
	loading  bool
	errMsg   string
	spinner  spinner.Model
	width    int
	height   int
}

// NewPollsModel creates an empty poll browser in the loading state.
func NewPollsModel(width, height int) PollsModel {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("#8A63D2")).
		BorderForeground(lipgloss.Color("#8A63D2"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("#9CA3AF"))

	l := list.New(nil, delegate, 70, 18)
	l.Title = "Latest polls"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return PollsModel{
		pollList: l,
		loading:  true,
		spinner:  sp,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the poll browser.
func (m PollsModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the poll browser.
func (m PollsModel) Update(msg tea.Msg) (PollsModel, tea.Cmd) {
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

	case tui.PollsLoadedMsg:
		m.loading = false
		m.errMsg = ""
		items := make([]list.Item, len(msg.List.Polls))
		for i, p := range msg.List.Polls {
			items[i] = PollItem{poll: p}
		}
		m.pollList.SetItems(items)
		return m, nil

	case tui.BrowseErrMsg:
		m.loading = false
		m.errMsg = errMessage(msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			if m.pollList.FilterState() == list.Filtering {
				break
			}
			return m, func() tea.Msg { return tui.GoMenuMsg{} }
		case tui.KeyEnter:
			if item, ok := m.pollList.SelectedItem().(PollItem); ok {
				pid := item.poll.PollID
				return m, func() tea.Msg { return OpenPollMsg{PollID: pid} }
			}
			return m, nil
		}
	}

	m.pollList, cmd = m.pollList.Update(msg)
	return m, cmd
}

// View renders the poll browser.
func (m PollsModel) View() string {
	if m.loading {
		return tui.BoxStyle.Render(m.spinner.View() + " Loading polls...")
	}
	if m.errMsg != "" {
		return tui.BoxStyle.Render(
			tui.ErrorStyle.Render(m.errMsg) + "\n\n" +
				tui.DimStyle.Render("Esc to go back"),
		)
	}
	return tui.BoxStyle.Render(
		m.pollList.View() + "\n" +
			tui.DimStyle.Render("Enter to open · / to filter · Esc to go back"),
	)
}
