// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/vocdoni/votecaster-tui/internal/api"
)

// ============================================================================
// Session Messages
// ============================================================================

// LoginResultMsg carries the outcome of a sign-in attempt.
type LoginResultMsg struct {
	Profile *api.Profile
	Err     error
}

// SessionClearedMsg signals that logout finished. The session must be
// treated as authenticated until this message arrives.
type SessionClearedMsg struct {
	Err error
}

// ============================================================================
// Poll Submission Messages
// ============================================================================

// PollCreatedMsg signals that the backend accepted the poll and assigned
// the carried identifier.
type PollCreatedMsg struct {
	PollID string
}

// PollCreateErrMsg signals that poll submission failed.
type PollCreateErrMsg struct {
	Err error
}

// ============================================================================
// Community Submission Messages
// ============================================================================

// CommunityCreatedMsg signals that the backend created the community.
type CommunityCreatedMsg struct {
	Community *api.Community
}

// CommunityCreateErrMsg signals that community submission failed.
type CommunityCreateErrMsg struct {
	Err error
}

// ============================================================================
// Channel Search Messages
// ============================================================================

// SearchDebounceMsg fires when the debounce interval after a keystroke has
// elapsed. Tag identifies the keystroke that scheduled it; an older tag
// means the user has typed again and the lookup must not be issued.
type SearchDebounceMsg struct {
	Tag int
}

// ChannelSearchResultMsg carries a successful channel lookup. Seq is the
// lookup's sequence number for last-request-wins filtering.
type ChannelSearchResultMsg struct {
	Seq      int
	Channels []*api.Channel
}

// ChannelSearchErrMsg carries a failed channel lookup.
type ChannelSearchErrMsg struct {
	Seq int
	Err error
}

// ============================================================================
// Browsing Messages
// ============================================================================

// PollsLoadedMsg carries a page of polls for the browser.
type PollsLoadedMsg struct {
	List *api.PollList
}

// PollLoadedMsg carries one poll's full details.
type PollLoadedMsg struct {
	Poll *api.Poll
}

// CommunitiesLoadedMsg carries a page of communities for the browser.
type CommunitiesLoadedMsg struct {
	List *api.CommunityList
}

// CommunityLoadedMsg carries one community's full details.
type CommunityLoadedMsg struct {
	Community *api.Community
}

// BrowseErrMsg signals that loading a browse view failed.
type BrowseErrMsg struct {
	Err error
}

// ============================================================================
// Utility Messages
// ============================================================================

// GoMenuMsg returns the user to the menu.
type GoMenuMsg struct{}

// CtrlCResetMsg resets the Ctrl+C confirmation state after timeout.
type CtrlCResetMsg struct{}
