package cli

import (
	"testing"
)

func TestPollDraftFromFlagsNegativeDurationRejected(t *testing.T) {
	draft, err := pollDraftFromFlags("Best L2?", []string{"Base", "Optimism"}, "-5")
	if err != nil {
		t.Fatalf("pollDraftFromFlags failed: %v", err)
	}
	errs := draft.Validate()
	if errs["duration"] == "" {
		t.Errorf("negative duration passed validation: %v", errs)
	}
}

func TestPollDraftFromFlagsOmittedDurationValid(t *testing.T) {
	draft, err := pollDraftFromFlags("Best L2?", []string{"Base", "Optimism"}, "")
	if err != nil {
		t.Fatalf("pollDraftFromFlags failed: %v", err)
	}
	if errs := draft.Validate(); len(errs) != 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
	if req := draft.Request(nil); req.Duration != nil {
		t.Errorf("omitted duration should not be sent, got %d", *req.Duration)
	}
}

func TestPollDraftFromFlagsChoiceBound(t *testing.T) {
	choices := []string{"a", "b", "c", "d"}
	draft, err := pollDraftFromFlags("q", choices, "")
	if err != nil {
		t.Fatalf("four choices should fit: %v", err)
	}
	if draft.Choices.Len() != 4 {
		t.Errorf("choice rows: got %d, want 4", draft.Choices.Len())
	}

	if _, err := pollDraftFromFlags("q", append(choices, "e"), ""); err == nil {
		t.Error("fifth choice should be rejected")
	}
}
