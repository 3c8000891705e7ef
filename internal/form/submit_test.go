package form

import (
	"testing"

	"github.com/vocdoni/votecaster-tui/internal/api"
)

func TestSubmissionSingleFlight(t *testing.T) {
	s := NewSubmission()
	if !s.Begin() {
		t.Fatal("first Begin should succeed")
	}
	if s.Begin() {
		t.Error("Begin while in flight should be a no-op")
	}
	if s.State() != SubmitInFlight {
		t.Errorf("state: got %v, want SubmitInFlight", s.State())
	}
}

func TestSubmissionSuccessIsTerminal(t *testing.T) {
	s := NewSubmission()
	s.Begin()
	s.Succeed("0xdeadbeef")

	if !s.Done() || s.PollID() != "0xdeadbeef" {
		t.Errorf("success state: done=%v pid=%q", s.Done(), s.PollID())
	}
	if s.Begin() {
		t.Error("Begin after success should be a no-op; there is no path back to editing")
	}
	// Late failure results must not disturb the terminal state.
	s.Fail("too late")
	if !s.Done() || s.Err() != "" {
		t.Errorf("terminal state disturbed: %v %q", s.State(), s.Err())
	}
}

func TestSubmissionFailureAllowsRetry(t *testing.T) {
	s := NewSubmission()
	s.Begin()
	s.Fail("backend exploded")

	if s.State() != SubmitFailed || s.Err() != "backend exploded" {
		t.Errorf("failed state: %v %q", s.State(), s.Err())
	}
	if !s.Begin() {
		t.Error("Begin after failure should succeed")
	}
	if s.Err() != "" {
		t.Error("a new attempt should dismiss the failure banner")
	}
}

func TestPollDraftRequestOmitsEmptyDuration(t *testing.T) {
	d := NewPollDraft()
	d.Question = "gm?"
	fields := d.Choices.Fields()
	d.Choices.Update(fields[0].ID, "yes")
	d.Choices.Update(fields[1].ID, "no")

	profile := &api.Profile{FID: 42, Username: "alice"}
	req := d.Request(profile)
	if req.Duration != nil {
		t.Errorf("duration: got %v, want nil for an empty field", *req.Duration)
	}
	if req.Question != "gm?" || req.Profile != profile {
		t.Errorf("request fields: %+v", req)
	}
	if len(req.Options) != 2 || req.Options[0] != "yes" || req.Options[1] != "no" {
		t.Errorf("options: got %v", req.Options)
	}

	d.Duration = " 48 "
	req = d.Request(profile)
	if req.Duration == nil || *req.Duration != 48 {
		t.Errorf("duration: got %v, want 48", req.Duration)
	}
}

func TestCommunityDraftRequest(t *testing.T) {
	d := NewCommunityDraft()
	d.Name = "Degen Voters"
	seq := d.Search.Begin()
	d.Search.Resolve(seq, channelFixtures("degen", "memes"))
	d.Search.Select(0)
	d.Search.Select(1)

	req := d.Request(&api.Profile{FID: 42})
	if req.CensusType != api.CensusTypeChannel {
		t.Errorf("census type: got %q", req.CensusType)
	}
	if len(req.Channels) != 2 || req.Channels[0] != "degen" {
		t.Errorf("channels: got %v", req.Channels)
	}

	d.CensusType = api.CensusTypeERC20
	d.Addresses.Update(d.Addresses.Fields()[0].ID, api.CensusAddress{Address: "0x1", Blockchain: "base"})
	req = d.Request(&api.Profile{FID: 42})
	if len(req.CensusAddresses) != 1 || req.CensusAddresses[0].Address != "0x1" {
		t.Errorf("census addresses: got %+v", req.CensusAddresses)
	}
	if req.Channels != nil {
		t.Errorf("token census should not carry channels: %v", req.Channels)
	}
}
