package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/log"
	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// CreatePollCmd submits the poll creation request. Exactly one of
// PollCreatedMsg or PollCreateErrMsg is returned; the failure message is
// the backend's text verbatim so the form banner can show it unchanged.
func CreatePollCmd(client *api.Client, logger *log.Logger, req *api.CreatePollRequest) tea.Cmd {
	return func() tea.Msg {
		pid, err := client.CreatePoll(context.Background(), req)
		if err != nil {
			_ = logger.Append(log.LogEvent{
				Event: log.EventPollCreateFailed,
				FID:   fidOf(req.Profile),
				Error: err.Error(),
			})
			return tui.PollCreateErrMsg{Err: err}
		}
		_ = logger.Append(log.LogEvent{
			Event:  log.EventPollCreated,
			PollID: pid,
			FID:    fidOf(req.Profile),
		})
		return tui.PollCreatedMsg{PollID: pid}
	}
}

// LoadPollCmd fetches one poll's details for the detail view.
func LoadPollCmd(client *api.Client, pid string) tea.Cmd {
	return func() tea.Msg {
		poll, err := client.Poll(context.Background(), pid)
		if err != nil {
			return tui.BrowseErrMsg{Err: err}
		}
		return tui.PollLoadedMsg{Poll: poll}
	}
}

// LoadPollsCmd fetches a page of recent polls for the browser.
func LoadPollsCmd(client *api.Client, limit, offset int64) tea.Cmd {
	return func() tea.Msg {
		list, err := client.ListPolls(context.Background(), limit, offset)
		if err != nil {
			return tui.BrowseErrMsg{Err: err}
		}
		return tui.PollsLoadedMsg{List: list}
	}
}

func fidOf(profile *api.Profile) uint64 {
	if profile == nil {
		return 0
	}
	return profile.FID
}
