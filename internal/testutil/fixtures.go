// Package testutil provides test helper utilities for votecaster tests.
package testutil

import (
	"fmt"

	"github.com/vocdoni/votecaster-tui/internal/api"
)

// Profile returns a complete profile for the given username. FIDs are
// derived from the username length so distinct fixtures stay distinct.
func Profile(username string) *api.Profile {
	return &api.Profile{
		FID:           uint64(1000 + len(username)),
		Username:      username,
		DisplayName:   username,
		Bio:           "test fixture",
		Custody:       "0x0000000000000000000000000000000000000001",
		Avatar:        "https://example.com/" + username + ".png",
		Verifications: []string{"0x0000000000000000000000000000000000000002"},
	}
}

// Channels returns n channels with ids ch0..ch(n-1).
func Channels(n int) []*api.Channel {
	chs := make([]*api.Channel, n)
	for i := range chs {
		id := fmt.Sprintf("ch%d", i)
		chs[i] = &api.Channel{
			ID:        id,
			Name:      "Channel " + id,
			Followers: 100 * (i + 1),
			ImageURL:  "https://example.com/" + id + ".png",
			URL:       "https://warpcast.com/~/channel/" + id,
		}
	}
	return chs
}

// Poll returns a poll with the given id, two choices and a running tally.
func Poll(pid string) *api.Poll {
	return &api.Poll{
		PollID:      pid,
		Question:    "Test question?",
		Choices:     []string{"Yes", "No"},
		Tally:       []string{"3", "1"},
		CastedVotes: 4,
		Turnout:     40,
	}
}

// Community returns a channel-census community with the given id.
func Community(id uint64) *api.Community {
	return &api.Community{
		ID:            id,
		Name:          fmt.Sprintf("Community %d", id),
		CensusType:    api.CensusTypeChannel,
		CensusChannel: Channels(1)[0],
		Channels:      []string{"ch0"},
	}
}
