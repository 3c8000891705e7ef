package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/form"
	"github.com/vocdoni/votecaster-tui/internal/tui"
)

// SubmitPollMsg is emitted when the poll form passes validation and a
// submission slot was acquired. The app layer attaches the profile and
// performs the network call.
type SubmitPollMsg struct {
	Draft *form.PollDraft
}

// PollFormModel is the poll creation form: question, a bounded list of
// choices, and an optional duration. The draft owns the choice rows; the
// view binds one text input per row keyed by the row's stable id, so an
// input never migrates to a different row when one is removed.
type PollFormModel struct {
	draft      *form.PollDraft
	submission *form.Submission

	questionInput textinput.Model
	durationInput textinput.Model
	choiceInputs  map[string]textinput.Model

	errs    form.Errors
	focus   int
	spinner spinner.Model
	width   int
	height  int
}

// Poll form focus slots. Choices occupy slots [slotChoices,
// slotChoices+len); duration and submit follow.
const slotQuestion = 0
const slotChoices = 1

// NewPollFormModel creates an empty poll form.
func NewPollFormModel(width, height int) PollFormModel {
	qi := textinput.New()
	qi.Placeholder = "Enter your question"
	qi.CharLimit = form.MaxQuestionLength + 1
	qi.Width = 60
	qi.Focus()

	di := textinput.New()
	di.Placeholder = "Enter duration (in hours)"
	di.CharLimit = 4
	di.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := PollFormModel{
		draft:         form.NewPollDraft(),
		submission:    form.NewSubmission(),
		questionInput: qi,
		durationInput: di,
		choiceInputs:  make(map[string]textinput.Model),
		errs:          form.Errors{},
		spinner:       sp,
		width:         width,
		height:        height,
	}
	m.syncChoiceInputs()
	return m
}

// Init returns the initial command for the poll form.
func (m PollFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// slotDuration and slotSubmit are derived from the current choice count.
func (m PollFormModel) slotDuration() int { return slotChoices + m.draft.Choices.Len() }
func (m PollFormModel) slotSubmit() int   { return m.slotDuration() + 1 }

// syncChoiceInputs makes the input map cover exactly the draft's rows.
func (m *PollFormModel) syncChoiceInputs() {
	seen := make(map[string]bool, m.draft.Choices.Len())
	for _, f := range m.draft.Choices.Fields() {
		seen[f.ID] = true
		if _, ok := m.choiceInputs[f.ID]; !ok {
			ti := textinput.New()
			ti.CharLimit = form.MaxChoiceLength + 1
			ti.Width = 60
			ti.SetValue(f.Row)
			m.choiceInputs[f.ID] = ti
		}
	}
	for id := range m.choiceInputs {
		if !seen[id] {
			delete(m.choiceInputs, id)
		}
	}
}

// Update handles messages for the poll form.
func (m PollFormModel) Update(msg tea.Msg) (PollFormModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.submission.InFlight() {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tui.PollCreateErrMsg:
		m.submission.Fail(errMessage(msg.Err))
		return m, nil

	case tui.PollCreatedMsg:
		m.submission.Succeed(msg.PollID)
		return m, nil

	case tea.KeyMsg:
		// Editing is disabled while a submission is in flight; a repeated
		// submit trigger is also swallowed here.
		if m.submission.InFlight() {
			return m, nil
		}
		switch msg.String() {
		case tui.KeyEsc:
			return m, func() tea.Msg { return tui.GoMenuMsg{} }

		case tui.KeyUp:
			return m.moveFocus(-1), nil

		case tui.KeyDown, tui.KeyTab:
			return m.moveFocus(1), nil

		case "ctrl+a":
			if m.draft.Choices.CanAppend() {
				m.draft.Choices.Append("")
				m.syncChoiceInputs()
			}
			return m, nil

		case "ctrl+d":
			return m.removeFocusedChoice(), nil

		case tui.KeyEnter:
			if m.focus == m.slotSubmit() {
				return m.submit()
			}
			return m.moveFocus(1), nil

		default:
			return m.updateFocusedInput(msg)
		}
	}

	return m, nil
}

// moveFocus shifts focus by delta, wrapping at the ends, and moves the
// cursor between the bound inputs.
func (m PollFormModel) moveFocus(delta int) PollFormModel {
	last := m.slotSubmit()
	m.focus += delta
	if m.focus < 0 {
		m.focus = last
	}
	if m.focus > last {
		m.focus = 0
	}

	m.questionInput.Blur()
	m.durationInput.Blur()
	fields := m.draft.Choices.Fields()
	for _, f := range fields {
		ti := m.choiceInputs[f.ID]
		ti.Blur()
		m.choiceInputs[f.ID] = ti
	}

	switch {
	case m.focus == slotQuestion:
		m.questionInput.Focus()
	case m.focus == m.slotDuration():
		m.durationInput.Focus()
	case m.focus >= slotChoices && m.focus < m.slotDuration():
		id := fields[m.focus-slotChoices].ID
		ti := m.choiceInputs[id]
		ti.Focus()
		m.choiceInputs[id] = ti
	}
	return m
}

// removeFocusedChoice removes the choice row under the cursor. The remove
// affordance does not exist at the minimum cardinality.
func (m PollFormModel) removeFocusedChoice() PollFormModel {
	if m.focus < slotChoices || m.focus >= m.slotDuration() || !m.draft.Choices.CanRemove() {
		return m
	}
	id := m.draft.Choices.Fields()[m.focus-slotChoices].ID
	m.draft.Choices.Remove(id)
	m.syncChoiceInputs()
	if m.focus >= m.slotDuration() {
		m.focus = m.slotDuration() - 1
	}
	return m.moveFocus(0)
}

// updateFocusedInput routes a keystroke into the focused input and mirrors
// the new value into the draft.
func (m PollFormModel) updateFocusedInput(msg tea.KeyMsg) (PollFormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus == slotQuestion:
		m.questionInput, cmd = m.questionInput.Update(msg)
		m.draft.Question = m.questionInput.Value()
	case m.focus == m.slotDuration():
		m.durationInput, cmd = m.durationInput.Update(msg)
		m.draft.Duration = m.durationInput.Value()
	case m.focus >= slotChoices && m.focus < m.slotDuration():
		f := m.draft.Choices.Fields()[m.focus-slotChoices]
		ti := m.choiceInputs[f.ID]
		ti, cmd = ti.Update(msg)
		m.choiceInputs[f.ID] = ti
		m.draft.Choices.Update(f.ID, ti.Value())
	}
	return m, cmd
}

// submit validates the draft and, when it passes, acquires the single
// submission slot and hands the draft to the app layer. On validation
// failure every violating field's message is set at once and no network
// call is made.
func (m PollFormModel) submit() (PollFormModel, tea.Cmd) {
	if m.submission.InFlight() || m.submission.Done() {
		return m, nil
	}
	m.errs = m.draft.Validate()
	if len(m.errs) > 0 {
		return m, nil
	}
	if !m.submission.Begin() {
		return m, nil
	}
	draft := m.draft
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return SubmitPollMsg{Draft: draft} },
	)
}

// View renders the poll form.
func (m PollFormModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Create a new farcaster poll"))
	b.WriteString("\n\n")

	m.renderField(&b, tui.LabelStyle.Render("Question"), m.questionInput.View(), m.errs["question"])

	for i, f := range m.draft.Choices.Fields() {
		label := tui.LabelStyle.Render(fmt.Sprintf("Choice %d", i+1))
		if m.draft.Choices.CanRemove() && m.focus == slotChoices+i {
			label += tui.DimStyle.Render("  (Ctrl+D to remove)")
		}
		m.renderField(&b, label, m.choiceInputs[f.ID].View(), m.errs[fmt.Sprintf("choices[%d]", i)])
	}

	if m.draft.Choices.CanAppend() {
		b.WriteString(tui.DimStyle.Render("Ctrl+A to add a choice"))
		b.WriteString("\n\n")
	}

	durationLabel := tui.LabelStyle.Render("Duration (Optional)") + tui.DimStyle.Render("  24h by default")
	m.renderField(&b, durationLabel, m.durationInput.View(), m.errs["duration"])

	if banner := m.submission.Err(); banner != "" {
		b.WriteString(tui.BannerStyle.Render(banner))
		b.WriteString("\n\n")
	}

	switch {
	case m.submission.InFlight():
		b.WriteString(m.spinner.View())
		b.WriteString(" Creating poll...")
	case m.focus == m.slotSubmit():
		b.WriteString(tui.SelectedStyle.Render("❯ Create"))
	default:
		b.WriteString("  Create")
	}
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Tab/↑↓ to navigate · Enter to submit · Esc to go back"))

	return tui.BoxStyle.Render(b.String())
}

// renderField writes a label, input line and optional error message.
func (m PollFormModel) renderField(b *strings.Builder, label, input, errMsg string) {
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n")
	if errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// errMessage extracts a user-facing message from an error, falling back to
// a generic one when the error carries no text.
func errMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Something went wrong, please try again"
	}
	return err.Error()
}
