package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/log"
	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// CreateCommunityCmd submits the community creation request.
func CreateCommunityCmd(client *api.Client, logger *log.Logger, req *api.CreateCommunityRequest) tea.Cmd {
	return func() tea.Msg {
		community, err := client.CreateCommunity(context.Background(), req)
		if err != nil {
			_ = logger.Append(log.LogEvent{
				Event: log.EventCommunityFailed,
				FID:   fidOf(req.Profile),
				Error: err.Error(),
			})
			return tui.CommunityCreateErrMsg{Err: err}
		}
		_ = logger.Append(log.LogEvent{
			Event:       log.EventCommunityCreated,
			CommunityID: community.ID,
			FID:         fidOf(req.Profile),
		})
		return tui.CommunityCreatedMsg{Community: community}
	}
}

// LoadCommunityCmd fetches one community's details for the detail view.
func LoadCommunityCmd(client *api.Client, id uint64) tea.Cmd {
	return func() tea.Msg {
		community, err := client.Community(context.Background(), id)
		if err != nil {
			return tui.BrowseErrMsg{Err: err}
		}
		return tui.CommunityLoadedMsg{Community: community}
	}
}

// LoadCommunitiesCmd fetches a page of communities for the browser.
func LoadCommunitiesCmd(client *api.Client, limit, offset int64) tea.Cmd {
	return func() tea.Msg {
		list, err := client.ListCommunities(context.Background(), limit, offset)
		if err != nil {
			return tui.BrowseErrMsg{Err: err}
		}
		return tui.CommunitiesLoadedMsg{List: list}
	}
}
