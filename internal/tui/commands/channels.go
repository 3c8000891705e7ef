package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/log"
	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// SearchDebounce is how long after the last keystroke a channel lookup is
// actually issued.
const SearchDebounce = 300 * time.Millisecond

// DebounceCmd schedules a SearchDebounceMsg carrying the given tag. The
// view compares the tag against its latest keystroke to drop superseded
// timers.
func DebounceCmd(tag int) tea.Cmd {
	return tea.Tick(SearchDebounce, func(time.Time) tea.Msg {
		return tui.SearchDebounceMsg{Tag: tag}
	})
}

// SearchChannelsCmd performs a channel lookup. The sequence number is
// passed through to the result message so the ChannelSearch state machine
// can discard stale resolutions.
func SearchChannelsCmd(client *api.Client, logger *log.Logger, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		channels, err := client.SearchChannels(context.Background(), query)
		if err != nil {
			_ = logger.Append(log.LogEvent{
				Event: log.EventChannelSearchFailed,
				Query: query,
				Error: err.Error(),
			})
			return tui.ChannelSearchErrMsg{Seq: seq, Err: err}
		}
		return tui.ChannelSearchResultMsg{Seq: seq, Channels: channels}
	}
}
