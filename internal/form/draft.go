package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vocdoni/votecaster-tui/internal/api"
)

// PollDraft is the editable state of the poll creation form. Choices live in
// a bounded FieldList so rows keep their identity across removals.
type PollDraft struct {
	Question string
	Choices  *FieldList[string]
	Duration string // free text, validated as an optional numeric range
}

// NewPollDraft creates an empty draft with the minimum two choice rows.
func NewPollDraft() *PollDraft {
	return &PollDraft{
		Choices: NewFieldList(2, 4, ""),
	}
}

// Validate checks the whole draft and returns the field errors, keyed by
// "question", "choices[i]" and "duration". Only the first two choices are
// required; later ones are optional but still length-bounded.
func (d *PollDraft) Validate() Errors {
	fields := []FieldRules{
		{Path: "question", Value: d.Question, Rules: []Rule{Required(), MaxLength(MaxQuestionLength)}},
		{Path: "duration", Value: d.Duration, Rules: []Rule{NumericRange(MinDurationHours, MaxDurationHours)}},
	}
	for i, f := range d.Choices.Fields() {
		rules := []Rule{MaxLength(MaxChoiceLength)}
		if i < 2 {
			rules = []Rule{Required(), MaxLength(MaxChoiceLength)}
		}
		fields = append(fields, FieldRules{
			Path:  fmt.Sprintf("choices[%d]", i),
			Value: f.Row,
			Rules: rules,
		})
	}
	return Validate(fields)
}

// Request builds the wire request for the draft. The duration key is left
// out entirely when the field is empty; the backend applies its own default.
func (d *PollDraft) Request(profile *api.Profile) *api.CreatePollRequest {
	req := &api.CreatePollRequest{
		Profile:  profile,
		Question: d.Question,
	}
	for _, f := range d.Choices.Fields() {
		req.Options = append(req.Options, f.Row)
	}
	if v := strings.TrimSpace(d.Duration); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			req.Duration = &hours
		}
	}
	return req
}

// CommunityDraft is the editable state of the community creation form. Token
// census addresses use a FieldList bounded to [1, 3]; the channel census uses
// the ChannelSearch selection instead.
type CommunityDraft struct {
	Name       string
	CensusType string
	Addresses  *FieldList[api.CensusAddress]
	Search     *ChannelSearch
}

// NewCommunityDraft creates an empty community draft defaulting to a channel
// census.
func NewCommunityDraft() *CommunityDraft {
	return &CommunityDraft{
		CensusType: api.CensusTypeChannel,
		Addresses:  NewFieldList(1, 3, api.CensusAddress{}),
		Search:     NewChannelSearch(),
	}
}

// Validate checks the community draft. A channel census requires at least
// one selected channel; a token census requires every address row to be
// filled in.
func (d *CommunityDraft) Validate() Errors {
	errs := Validate([]FieldRules{
		{Path: "name", Value: d.Name, Rules: []Rule{Required(), MaxLength(MaxNameLength)}},
	})
	switch d.CensusType {
	case api.CensusTypeChannel:
		if len(d.Search.Selected()) == 0 {
			errs["channels"] = "Select at least one channel"
		}
	case api.CensusTypeERC20, api.CensusTypeNFT:
		for i, f := range d.Addresses.Fields() {
			if strings.TrimSpace(f.Row.Address) == "" {
				errs[fmt.Sprintf("addresses[%d]", i)] = "This field is required"
			}
		}
	default:
		errs["censusType"] = "Unknown census type"
	}
	return errs
}

// Request builds the wire request for the community draft.
func (d *CommunityDraft) Request(profile *api.Profile) *api.CreateCommunityRequest {
	req := &api.CreateCommunityRequest{
		Name:       d.Name,
		CensusType: d.CensusType,
		Profile:    profile,
	}
	switch d.CensusType {
	case api.CensusTypeChannel:
		for _, opt := range d.Search.Selected() {
			req.Channels = append(req.Channels, opt.Value)
		}
	case api.CensusTypeERC20, api.CensusTypeNFT:
		for _, f := range d.Addresses.Fields() {
			addr := f.Row
			req.CensusAddresses = append(req.CensusAddresses, &addr)
		}
	}
	return req
}
