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

// OpenCommunityMsg is sent when the user selects a community from the
// browser.
type OpenCommunityMsg struct {
	CommunityID uint64
}

// CommunityItem implements list.Item for the community browser.
type CommunityItem struct {
	community *api.Community
}

// Title returns the community name for list display.
func (i CommunityItem) Title() string {
	if i.community.Disabled {
		return i.community.Name + " (disabled)"
	}
	return i.community.Name
}

// Description returns the census kind for list display.
func (i CommunityItem) Description() string {
	switch i.community.CensusType {
	case api.CensusTypeChannel:
		if i.community.CensusChannel != nil {
			return fmt.Sprintf("channel census · /%s", i.community.CensusChannel.ID)
		}
		return "channel census"
	case api.CensusTypeERC20, api.CensusTypeNFT:
		return fmt.Sprintf("%s census · %d addresses", i.community.CensusType, len(i.community.CensusAddresses))
	}
	return "community"
}

// FilterValue returns the value used for filtering in the list.
func (i CommunityItem) FilterValue() string {
	return i.community.Name
}

// CommunitiesModel is the view model for the community browser screen.
type CommunitiesModel struct {
	communityList list.Model
	loading       bool
	errMsg        string
	spinner       spinner.Model
	width         int
	height        int
}

// NewCommunitiesModel creates an empty community browser in the loading
// state.
func NewCommunitiesModel(width, height int) CommunitiesModel {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("#8A63D2")).
		BorderForeground(lipgloss.Color("#8A63D2"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("#9CA3AF"))

	l := list.New(nil, delegate, 70, 18)
	l.Title = "Communities"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return CommunitiesModel{
		communityList: l,
		loading:       true,
		spinner:       sp,
		width:         width,
		height:        height,
	}
}

// Init returns the initial command for the community browser.
func (m CommunitiesModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the community browser.
func (m CommunitiesModel) Update(msg tea.Msg) (CommunitiesModel, tea.Cmd) {
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

	case tui.CommunitiesLoadedMsg:
		m.loading = false
		m.errMsg = ""
		items := make([]list.Item, len(msg.List.Communities))
		for i, c := range msg.List.Communities {
			items[i] = CommunityItem{community: c}
		}
		m.communityList.SetItems(items)
		return m, nil

	case tui.BrowseErrMsg:
		m.loading = false
		m.errMsg = errMessage(msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			if m.communityList.FilterState() == list.Filtering {
				break
			}
			return m, func() tea.Msg { return tui.GoMenuMsg{} }
		case tui.KeyEnter:
			if item, ok := m.communityList.SelectedItem().(CommunityItem); ok {
				id := item.community.ID
				return m, func() tea.Msg { return OpenCommunityMsg{CommunityID: id} }
			}
			return m, nil
		}
	}

	m.communityList, cmd = m.communityList.Update(msg)
	return m, cmd
}

// View renders the community browser.
func (m CommunitiesModel) View() string {
	if m.loading {
		return tui.BoxStyle.Render(m.spinner.View() + " Loading communities...")
	}
	if m.errMsg != "" {
		return tui.BoxStyle.Render(
			tui.ErrorStyle.Render(m.errMsg) + "\n\n" +
				tui.DimStyle.Render("Esc to go back"),
		)
	}
	return tui.BoxStyle.Render(
		m.communityList.View() + "\n" +
			tui.DimStyle.Render("Enter to open · / to filter · Esc to go back"),
	)
}
