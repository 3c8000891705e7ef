package form

import "github.com/vocdoni/votecaster-tui/internal/api"

// SearchState enumerates the channel lookup states.
type SearchState int

const (
	SearchIdle SearchState = iota
	SearchLoading
	SearchLoaded
	SearchErrored
)

// Option is a selectable channel produced by a lookup. Immutable once
// created.
type Option struct {
	Value string
	Label string
	Image string
}

// ChannelSearch is the state machine behind the channel multi-select. Each
// lookup carries a monotonically increasing sequence number; a result whose
// sequence is behind the latest issued lookup is stale and discarded, so
// overlapping lookups resolve last-request-wins regardless of network
// ordering. The selection is an independent list that survives lookup
// failures and new lookups.
type ChannelSearch struct {
	state    SearchState
	seq      int
	options  []Option
	selected []Option
	errMsg   string
}

// NewChannelSearch creates an idle ChannelSearch.
func NewChannelSearch() *ChannelSearch {
	return &ChannelSearch{}
}

// Begin registers a new lookup and returns its sequence number, which must
// be passed back to Resolve or Fail. Any lookup still in flight is
// superseded. The field error is cleared so a stale failure message does not
// outlive the keystroke that retried it.
func (s *ChannelSearch) Begin() int {
	s.seq++
	s.state = SearchLoading
	s.errMsg = ""
	return s.seq
}

// Resolve applies a successful lookup result. Results for superseded
// lookups are discarded and the method reports false.
func (s *ChannelSearch) Resolve(seq int, channels []*api.Channel) bool {
	if seq != s.seq {
		return false
	}
	s.options = s.options[:0]
	for _, ch := range channels {
		s.options = append(s.options, Option{
			Value: ch.ID,
			Label: ch.Name,
			Image: ch.ImageURL,
		})
	}
	s.state = SearchLoaded
	s.errMsg = ""
	return true
}

// Fail applies a lookup failure. The message is surfaced as the field
// error; the option list and selection are left untouched so the user does
// not lose prior picks. Stale failures are discarded.
func (s *ChannelSearch) Fail(seq int, message string) bool {
	if seq != s.seq {
		return false
	}
	s.state = SearchErrored
	s.errMsg = message
	return true
}

// Select copies the option at the given index of the loaded set into the
// selection. Already-selected options are a no-op.
func (s *ChannelSearch) Select(i int) {
	if i < 0 || i >= len(s.options) {
		return
	}
	opt := s.options[i]
	for _, sel := range s.selected {
		if sel.Value == opt.Value {
			return
		}
	}
	s.selected = append(s.selected, opt)
}

// Deselect removes the option with the given value from the selection. It
// never triggers a new lookup.
func (s *ChannelSearch) Deselect(value string) {
	for i, sel := range s.selected {
		if sel.Value == value {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
}

// State returns the current lookup state.
func (s *ChannelSearch) State() SearchState {
	return s.state
}

// Options returns the options of the most recent applied lookup.
func (s *ChannelSearch) Options() []Option {
	return s.options
}

// Selected returns the persistent selection in pick order.
func (s *ChannelSearch) Selected() []Option {
	return s.selected
}

// Err returns the field error message, or "" when there is none.
func (s *ChannelSearch) Err() string {
	return s.errMsg
}

// NoMatches reports whether the last lookup completed with an empty result
// set, which the UI renders distinctly from loading and from an error.
func (s *ChannelSearch) NoMatches() bool {
	return s.state == SearchLoaded && len(s.options) == 0
}
