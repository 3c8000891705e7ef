package form

import (
	"strings"
	"testing"
)

func TestValidateEmptyQuestion(t *testing.T) {
	d := NewPollDraft()
	fields := d.Choices.Fields()
	d.Choices.Update(fields[0].ID, "yes")
	d.Choices.Update(fields[1].ID, "no")

	errs := d.Validate()
	if errs["question"] != "This field is required" {
		t.Errorf("question error: got %q", errs["question"])
	}
	if len(errs) != 1 {
		t.Errorf("unexpected extra errors: %v", errs)
	}
}

func TestValidateChoiceMaxLength(t *testing.T) {
	d := NewPollDraft()
	d.Question = "gm?"
	fields := d.Choices.Fields()
	d.Choices.Update(fields[0].ID, strings.Repeat("x", 51))
	d.Choices.Update(fields[1].ID, "no")

	errs := d.Validate()
	if errs["choices[0]"] != "Max length is 50 characters" {
		t.Errorf("choices[0] error: got %q", errs["choices[0]"])
	}
	if _, ok := errs["choices[1]"]; ok {
		t.Error("choices[1] should have no error")
	}
	if len(errs) != 1 {
		t.Errorf("errors should be scoped to the violating field only: %v", errs)
	}
}

func TestValidateDurationRange(t *testing.T) {
	d := NewPollDraft()
	d.Question = "gm?"
	fields := d.Choices.Fields()
	d.Choices.Update(fields[0].ID, "yes")
	d.Choices.Update(fields[1].ID, "no")

	d.Duration = "400"
	if errs := d.Validate(); errs["duration"] != "Must be between 1 and 360" {
		t.Errorf("duration error: got %q", errs["duration"])
	}

	d.Duration = ""
	if errs := d.Validate(); len(errs) != 0 {
		t.Errorf("absent duration should be valid, got %v", errs)
	}

	d.Duration = "24"
	if errs := d.Validate(); len(errs) != 0 {
		t.Errorf("in-range duration should be valid, got %v", errs)
	}

	d.Duration = "soon"
	if errs := d.Validate(); errs["duration"] != "Must be a number" {
		t.Errorf("non-numeric duration error: got %q", errs["duration"])
	}
}

func TestValidateStopsAtFirstFailingRule(t *testing.T) {
	errs := Validate([]FieldRules{
		{Path: "question", Value: "", Rules: []Rule{Required(), MaxLength(5)}},
	})
	if errs["question"] != "This field is required" {
		t.Errorf("got %q, want the first rule's message only", errs["question"])
	}
}

func TestValidateThirdChoiceIsOptional(t *testing.T) {
	d := NewPollDraft()
	d.Question = "gm?"
	fields := d.Choices.Fields()
	d.Choices.Update(fields[0].ID, "yes")
	d.Choices.Update(fields[1].ID, "no")
	d.Choices.Append("")

	if errs := d.Validate(); len(errs) != 0 {
		t.Errorf("an empty third choice should be valid, got %v", errs)
	}

	id := d.Choices.Fields()[2].ID
	d.Choices.Update(id, strings.Repeat("x", 51))
	if errs := d.Validate(); errs["choices[2]"] != "Max length is 50 characters" {
		t.Errorf("choices[2] error: got %q", errs["choices[2]"])
	}
}

func TestValidateAllFailuresReportedTogether(t *testing.T) {
	d := NewPollDraft()
	d.Duration = "0"

	errs := d.Validate()
	for _, path := range []string{"question", "choices[0]", "choices[1]", "duration"} {
		if errs[path] == "" {
			t.Errorf("missing error for %s: %v", path, errs)
		}
	}
}

func TestCommunityDraftValidation(t *testing.T) {
	d := NewCommunityDraft()
	errs := d.Validate()
	if errs["name"] == "" || errs["channels"] == "" {
		t.Errorf("empty channel-census draft should fail name and channels: %v", errs)
	}

	d.Name = "Degen Voters"
	seq := d.Search.Begin()
	d.Search.Resolve(seq, channelFixtures("degen"))
	d.Search.Select(0)
	if errs := d.Validate(); len(errs) != 0 {
		t.Errorf("valid channel-census draft: got %v", errs)
	}

	d.CensusType = "nft"
	if errs := d.Validate(); errs["addresses[0]"] == "" {
		t.Errorf("empty token-census address should fail: %v", errs)
	}
}
