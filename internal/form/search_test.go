package form

import (
	"testing"

	"github.com/vocdoni/votecaster-tui/internal/api"
)

func channelFixtures(ids ...string) []*api.Channel {
	channels := make([]*api.Channel, len(ids))
	for i, id := range ids {
		channels[i] = &api.Channel{ID: id, Name: id, ImageURL: "https://img/" + id}
	}
	return channels
}

func TestSearchLastRequestWins(t *testing.T) {
	s := NewChannelSearch()
	first := s.Begin()
	second := s.Begin()

	// The newer lookup resolves before the older one.
	if !s.Resolve(second, channelFixtures("vitalik")) {
		t.Fatal("latest lookup result should apply")
	}
	if s.Resolve(first, channelFixtures("degen", "memes")) {
		t.Error("stale lookup result should be discarded")
	}

	opts := s.Options()
	if len(opts) != 1 || opts[0].Value != "vitalik" {
		t.Errorf("options should reflect only the second lookup: %+v", opts)
	}
	if s.State() != SearchLoaded {
		t.Errorf("state: got %v, want SearchLoaded", s.State())
	}
}

func TestSearchStaleFailureDiscarded(t *testing.T) {
	s := NewChannelSearch()
	first := s.Begin()
	second := s.Begin()

	if !s.Resolve(second, channelFixtures("degen")) {
		t.Fatal("latest lookup result should apply")
	}
	if s.Fail(first, "timeout") {
		t.Error("stale failure should be discarded")
	}
	if s.Err() != "" {
		t.Errorf("stale failure set the field error: %q", s.Err())
	}
}

func TestSearchFailureKeepsOptionsAndSelection(t *testing.T) {
	s := NewChannelSearch()
	seq := s.Begin()
	s.Resolve(seq, channelFixtures("degen", "memes"))
	s.Select(0)

	seq = s.Begin()
	s.Fail(seq, "hub unreachable")

	if s.State() != SearchErrored {
		t.Errorf("state: got %v, want SearchErrored", s.State())
	}
	if s.Err() != "hub unreachable" {
		t.Errorf("error message: got %q", s.Err())
	}
	if len(s.Options()) != 2 {
		t.Errorf("options should survive a failed lookup: %+v", s.Options())
	}
	if len(s.Selected()) != 1 || s.Selected()[0].Value != "degen" {
		t.Errorf("selection should survive a failed lookup: %+v", s.Selected())
	}
}

func TestSearchSuccessClearsPriorError(t *testing.T) {
	s := NewChannelSearch()
	seq := s.Begin()
	s.Fail(seq, "hub unreachable")

	seq = s.Begin()
	if s.Err() != "" {
		t.Error("starting a new lookup should clear the field error")
	}
	s.Resolve(seq, channelFixtures("degen"))
	if s.Err() != "" {
		t.Errorf("error should stay cleared after success: %q", s.Err())
	}
}

func TestSearchSelectionIndependentOfLookups(t *testing.T) {
	s := NewChannelSearch()
	seq := s.Begin()
	s.Resolve(seq, channelFixtures("degen", "memes"))
	s.Select(0)
	s.Select(0) // selecting twice is a no-op
	if len(s.Selected()) != 1 {
		t.Fatalf("selection: got %d entries, want 1", len(s.Selected()))
	}

	// A later lookup replaces the options but not the selection.
	seq = s.Begin()
	s.Resolve(seq, channelFixtures("vitalik"))
	if len(s.Selected()) != 1 || s.Selected()[0].Value != "degen" {
		t.Errorf("selection changed after a new lookup: %+v", s.Selected())
	}

	s.Deselect("degen")
	if len(s.Selected()) != 0 {
		t.Errorf("deselect failed: %+v", s.Selected())
	}
	// Deselect must not disturb the lookup state.
	if s.State() != SearchLoaded || len(s.Options()) != 1 {
		t.Error("deselect should not touch lookup state")
	}
}

func TestSearchNoMatches(t *testing.T) {
	s := NewChannelSearch()
	seq := s.Begin()
	if s.NoMatches() {
		t.Error("loading state should not report no-matches")
	}
	s.Resolve(seq, nil)
	if !s.NoMatches() {
		t.Error("an empty loaded set should report no-matches")
	}

	seq = s.Begin()
	s.Fail(seq, "boom")
	if s.NoMatches() {
		t.Error("errored state should not report no-matches")
	}
}
