package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// validPollForm returns a form whose draft passes validation.
func validPollForm() PollFormModel {
	m := NewPollFormModel(80, 24)
	m.draft.Question = "Best L2?"
	for i, f := range m.draft.Choices.Fields() {
		m.draft.Choices.Update(f.ID, []string{"Base", "Optimism"}[i])
	}
	return m
}

func submitPollOf(t *testing.T, cmd tea.Cmd) SubmitPollMsg {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		if submit, ok := msg.(SubmitPollMsg); ok {
			return submit
		}
	}
	t.Fatal("no SubmitPollMsg emitted")
	return SubmitPollMsg{}
}

func TestPollFormSubmitEmitsDraft(t *testing.T) {
	m := validPollForm()

	m, cmd := m.submit()
	submit := submitPollOf(t, cmd)

	req := submit.Draft.Request(nil)
	if req.Question != "Best L2?" {
		t.Errorf("question: got %q", req.Question)
	}
	if len(req.Options) != 2 || req.Options[0] != "Base" || req.Options[1] != "Optimism" {
		t.Errorf("options: got %v", req.Options)
	}
	if req.Duration != nil {
		t.Errorf("empty duration should be omitted, got %d", *req.Duration)
	}
	if !m.submission.InFlight() {
		t.Error("submission should be in flight after submit")
	}
}

func TestPollFormValidationBlocksSubmit(t *testing.T) {
	m := NewPollFormModel(80, 24)

	m, cmd := m.submit()
	if cmd != nil {
		t.Fatal("submit should not emit a command when validation fails")
	}
	if m.submission.InFlight() {
		t.Error("failed validation must not start a submission")
	}

	// Every violating field reports at once.
	for _, path := range []string{"question", "choices[0]", "choices[1]"} {
		if m.errs[path] == "" {
			t.Errorf("missing error for %s: %v", path, m.errs)
		}
	}
	if !strings.Contains(m.View(), m.errs["question"]) {
		t.Error("question error not rendered")
	}
}

func TestPollFormKeysSwallowedWhileSubmitting(t *testing.T) {
	m := validPollForm()
	m, _ = m.submit()

	// Focus sits on the question input; the keystroke must not reach it.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'X'}})
	if m.draft.Question != "Best L2?" {
		t.Errorf("question edited while in flight: %q", m.draft.Question)
	}

	// A repeated submit trigger is swallowed too.
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter while in flight should be a no-op")
	}
}

func TestPollFormSuccessIsTerminal(t *testing.T) {
	m := validPollForm()
	m, _ = m.submit()

	m, _ = m.Update(tui.PollCreatedMsg{PollID: "0xabc123"})
	if !m.submission.Done() {
		t.Fatal("submission should be done after PollCreatedMsg")
	}
	if got := m.submission.PollID(); got != "0xabc123" {
		t.Errorf("poll id: got %q, want %q", got, "0xabc123")
	}

	// The draft is no longer submittable.
	if _, cmd := m.submit(); cmd != nil {
		t.Error("submit after success should be a no-op")
	}
}

func TestPollFormFailureKeepsFieldsAndRearms(t *testing.T) {
	m := validPollForm()
	m, _ = m.submit()

	m, _ = m.Update(tui.PollCreateErrMsg{Err: errors.New("something exploded")})
	if !strings.Contains(m.View(), "something exploded") {
		t.Error("backend error not shown in the banner")
	}
	if m.draft.Question != "Best L2?" {
		t.Errorf("failure must not touch field values, got %q", m.draft.Question)
	}

	// The same draft can be resubmitted.
	m, cmd := m.submit()
	submit := submitPollOf(t, cmd)
	if submit.Draft.Question != "Best L2?" {
		t.Errorf("resubmitted draft: %q", submit.Draft.Question)
	}
	if !m.submission.InFlight() {
		t.Error("resubmit should be in flight")
	}
}
