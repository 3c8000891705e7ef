package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/form"
	"github.com/vocdoni/votecaster-tui/internal/tui"
	"github.com/vocdoni/votecaster-tui/internal/tui/commands"
)

// SubmitCommunityMsg is emitted when the community form passes validation
// and a submission slot was acquired.
type SubmitCommunityMsg struct {
	Draft *form.CommunityDraft
}

// SearchRequestMsg asks the app layer to run a channel lookup carrying the
// given sequence number.
type SearchRequestMsg struct {
	Seq   int
	Query string
}

// censusTypes in selector order.
var censusTypes = []string{api.CensusTypeChannel, api.CensusTypeERC20, api.CensusTypeNFT}

// blockchains selectable for token census addresses.
var blockchains = []string{"ethereum", "base", "optimism", "polygon"}

// Community form focus slot kinds.
type slotKind int

const (
	slotName slotKind = iota
	slotCensusType
	slotQuery
	slotResults
	slotSelected
	slotAddress
	slotSubmit
)

// slotRef identifies one focusable element; index is the address row for
// slotAddress.
type slotRef struct {
	kind  slotKind
	index int
}

// CommunityFormModel is the community creation form: a name, a census type
// and the census source: a channel multi-select backed by debounced
// remote search, or a bounded list of token contract addresses.
type CommunityFormModel struct {
	draft      *form.CommunityDraft
	submission *form.Submission

	nameInput     textinput.Model
	queryInput    textinput.Model
	addressInputs map[string]textinput.Model

	errs         form.Errors
	focus        int
	resultsIndex int
	selIndex     int
	searchTag    int  // latest keystroke tag for debouncing
	searching    bool // a lookup is in flight

	spinner spinner.Model
	width   int
	height  int
}

// NewCommunityFormModel creates an empty community form defaulting to a
// channel census.
func NewCommunityFormModel(width, height int) CommunityFormModel {
	ni := textinput.New()
	ni.Placeholder = "Community name"
	ni.CharLimit = form.MaxNameLength + 1
	ni.Width = 60
	ni.Focus()

	qi := textinput.New()
	qi.Placeholder = "Search and add channels"
	qi.CharLimit = 64
	qi.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := CommunityFormModel{
		draft:         form.NewCommunityDraft(),
		submission:    form.NewSubmission(),
		nameInput:     ni,
		queryInput:    qi,
		addressInputs: make(map[string]textinput.Model),
		errs:          form.Errors{},
		spinner:       sp,
		width:         width,
		height:        height,
	}
	for _, f := range m.draft.Addresses.Fields() {
		row := f.Row
		row.Blockchain = blockchains[0]
		m.draft.Addresses.Update(f.ID, row)
	}
	m.syncAddressInputs()
	return m
}

// Init returns the initial command for the community form.
func (m CommunityFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// slots returns the focusable elements for the current census type and
// search state, in traversal order.
func (m CommunityFormModel) slots() []slotRef {
	s := []slotRef{{kind: slotName}, {kind: slotCensusType}}
	switch m.draft.CensusType {
	case api.CensusTypeChannel:
		s = append(s, slotRef{kind: slotQuery})
		if len(m.draft.Search.Options()) > 0 {
			s = append(s, slotRef{kind: slotResults})
		}
		if len(m.draft.Search.Selected()) > 0 {
			s = append(s, slotRef{kind: slotSelected})
		}
	default:
		for i := 0; i < m.draft.Addresses.Len(); i++ {
			s = append(s, slotRef{kind: slotAddress, index: i})
		}
	}
	return append(s, slotRef{kind: slotSubmit})
}

func (m CommunityFormModel) focusedSlot() slotRef {
	s := m.slots()
	if m.focus >= len(s) {
		return s[len(s)-1]
	}
	return s[m.focus]
}

// syncAddressInputs makes the input map cover exactly the draft's address
// rows.
func (m *CommunityFormModel) syncAddressInputs() {
	seen := make(map[string]bool, m.draft.Addresses.Len())
	for _, f := range m.draft.Addresses.Fields() {
		seen[f.ID] = true
		if _, ok := m.addressInputs[f.ID]; !ok {
			ti := textinput.New()
			ti.Placeholder = "0x..."
			ti.CharLimit = 64
			ti.Width = 50
			ti.SetValue(f.Row.Address)
			m.addressInputs[f.ID] = ti
		}
	}
	for id := range m.addressInputs {
		if !seen[id] {
			delete(m.addressInputs, id)
		}
	}
}

// Update handles messages for the community form.
func (m CommunityFormModel) Update(msg tea.Msg) (CommunityFormModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.searching || m.submission.InFlight() {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tui.SearchDebounceMsg:
		// A newer keystroke supersedes this timer.
		if msg.Tag != m.searchTag {
			return m, nil
		}
		seq := m.draft.Search.Begin()
		m.searching = true
		query := m.queryInput.Value()
		return m, tea.Batch(
			m.spinner.Tick,
			func() tea.Msg { return SearchRequestMsg{Seq: seq, Query: query} },
		)

	case tui.ChannelSearchResultMsg:
		if m.draft.Search.Resolve(msg.Seq, msg.Channels) {
			m.searching = false
			if m.resultsIndex >= len(m.draft.Search.Options()) {
				m.resultsIndex = 0
			}
		}
		return m, nil

	case tui.ChannelSearchErrMsg:
		if m.draft.Search.Fail(msg.Seq, errMessage(msg.Err)) {
			m.searching = false
		}
		return m, nil

	case tui.CommunityCreateErrMsg:
		m.submission.Fail(errMessage(msg.Err))
		return m, nil

	case tui.CommunityCreatedMsg:
		m.submission.Succeed(fmt.Sprintf("%d", msg.Community.ID))
		return m, nil

	case tea.KeyMsg:
		if m.submission.InFlight() {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m CommunityFormModel) handleKey(msg tea.KeyMsg) (CommunityFormModel, tea.Cmd) {
	slot := m.focusedSlot()

	switch msg.String() {
	case tui.KeyEsc:
		return m, func() tea.Msg { return tui.GoMenuMsg{} }

	case tui.KeyUp:
		if slot.kind == slotResults && m.resultsIndex > 0 {
			m.resultsIndex--
			return m, nil
		}
		return m.moveFocus(-1), nil

	case tui.KeyDown:
		if slot.kind == slotResults && m.resultsIndex < len(m.draft.Search.Options())-1 {
			m.resultsIndex++
			return m, nil
		}
		return m.moveFocus(1), nil

	case tui.KeyTab:
		return m.moveFocus(1), nil

	case tui.KeyLeft:
		switch slot.kind {
		case slotCensusType:
			return m.cycleCensusType(-1), nil
		case slotSelected:
			if m.selIndex > 0 {
				m.selIndex--
			}
			return m, nil
		}

	case tui.KeyRight:
		switch slot.kind {
		case slotCensusType:
			return m.cycleCensusType(1), nil
		case slotSelected:
			if m.selIndex < len(m.draft.Search.Selected())-1 {
				m.selIndex++
			}
			return m, nil
		}

	case "ctrl+a":
		if slot.kind == slotAddress && m.draft.Addresses.CanAppend() {
			m.draft.Addresses.Append(api.CensusAddress{Blockchain: blockchains[0]})
			m.syncAddressInputs()
		}
		return m, nil

	case "ctrl+d":
		switch slot.kind {
		case slotAddress:
			if m.draft.Addresses.CanRemove() {
				id := m.draft.Addresses.Fields()[slot.index].ID
				m.draft.Addresses.Remove(id)
				m.syncAddressInputs()
				return m.moveFocus(0), nil
			}
		case slotSelected:
			m = m.removeSelected()
		}
		return m, nil

	case "ctrl+b":
		if slot.kind == slotAddress {
			m.cycleBlockchain(slot.index)
		}
		return m, nil

	case tui.KeyEnter:
		switch slot.kind {
		case slotSubmit:
			return m.submit()
		case slotResults:
			m.draft.Search.Select(m.resultsIndex)
			return m, nil
		case slotSelected:
			m = m.removeSelected()
			return m, nil
		default:
			return m.moveFocus(1), nil
		}
	}

	return m.updateFocusedInput(msg)
}

// cycleCensusType switches the census source, resetting focus-dependent
// indices. The draft keeps both sources so switching back loses nothing.
func (m CommunityFormModel) cycleCensusType(delta int) CommunityFormModel {
	cur := 0
	for i, t := range censusTypes {
		if t == m.draft.CensusType {
			cur = i
			break
		}
	}
	cur = (cur + delta + len(censusTypes)) % len(censusTypes)
	m.draft.CensusType = censusTypes[cur]
	m.resultsIndex = 0
	m.selIndex = 0
	return m
}

func (m *CommunityFormModel) cycleBlockchain(row int) {
	f := m.draft.Addresses.Fields()[row]
	cur := 0
	for i, b := range blockchains {
		if b == f.Row.Blockchain {
			cur = i
			break
		}
	}
	addr := f.Row
	addr.Blockchain = blockchains[(cur+1)%len(blockchains)]
	m.draft.Addresses.Update(f.ID, addr)
}

func (m CommunityFormModel) removeSelected() CommunityFormModel {
	selected := m.draft.Search.Selected()
	if m.selIndex >= len(selected) {
		return m
	}
	m.draft.Search.Deselect(selected[m.selIndex].Value)
	if m.selIndex >= len(m.draft.Search.Selected()) && m.selIndex > 0 {
		m.selIndex--
	}
	return m.moveFocus(0)
}

// moveFocus shifts focus by delta over the current slot set and moves the
// cursor between the bound inputs.
func (m CommunityFormModel) moveFocus(delta int) CommunityFormModel {
	slots := m.slots()
	m.focus += delta
	if m.focus < 0 {
		m.focus = len(slots) - 1
	}
	if m.focus >= len(slots) {
		m.focus = 0
	}

	m.nameInput.Blur()
	m.queryInput.Blur()
	for id, ti := range m.addressInputs {
		ti.Blur()
		m.addressInputs[id] = ti
	}

	switch slot := slots[m.focus]; slot.kind {
	case slotName:
		m.nameInput.Focus()
	case slotQuery:
		m.queryInput.Focus()
	case slotAddress:
		id := m.draft.Addresses.Fields()[slot.index].ID
		ti := m.addressInputs[id]
		ti.Focus()
		m.addressInputs[id] = ti
	}
	return m
}

// updateFocusedInput routes a keystroke into the focused input. A change
// to the search query schedules a debounced lookup.
func (m CommunityFormModel) updateFocusedInput(msg tea.KeyMsg) (CommunityFormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch slot := m.focusedSlot(); slot.kind {
	case slotName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.draft.Name = m.nameInput.Value()
	case slotQuery:
		before := m.queryInput.Value()
		m.queryInput, cmd = m.queryInput.Update(msg)
		if m.queryInput.Value() != before {
			m.searchTag++
			return m, tea.Batch(cmd, commands.DebounceCmd(m.searchTag))
		}
	case slotAddress:
		f := m.draft.Addresses.Fields()[slot.index]
		ti := m.addressInputs[f.ID]
		ti, cmd = ti.Update(msg)
		m.addressInputs[f.ID] = ti
		addr := f.Row
		addr.Address = ti.Value()
		m.draft.Addresses.Update(f.ID, addr)
	}
	return m, cmd
}

// submit validates the draft and, when it passes, acquires the single
// submission slot and hands the draft to the app layer.
func (m CommunityFormModel) submit() (CommunityFormModel, tea.Cmd) {
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
		func() tea.Msg { return SubmitCommunityMsg{Draft: draft} },
	)
}

// View renders the community form.
func (m CommunityFormModel) View() string {
	var b strings.Builder
	slot := m.focusedSlot()

	b.WriteString(tui.TitleStyle.Render("Create a new community"))
	b.WriteString("\n\n")

	b.WriteString(tui.LabelStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	if msg := m.errs["name"]; msg != "" {
		b.WriteString(tui.ErrorStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	selector := fmt.Sprintf("‹ %s ›", m.draft.CensusType)
	b.WriteString(tui.LabelStyle.Render("Census type  "))
	if slot.kind == slotCensusType {
		b.WriteString(tui.SelectedStyle.Render(selector))
	} else {
		b.WriteString(selector)
	}
	b.WriteString("\n\n")

	switch m.draft.CensusType {
	case api.CensusTypeChannel:
		m.renderChannelSection(&b, slot)
	default:
		m.renderAddressSection(&b, slot)
	}

	if banner := m.submission.Err(); banner != "" {
		b.WriteString(tui.BannerStyle.Render(banner))
		b.WriteString("\n\n")
	}

	switch {
	case m.submission.InFlight():
		b.WriteString(m.spinner.View())
		b.WriteString(" Creating community...")
	case slot.kind == slotSubmit:
		b.WriteString(tui.SelectedStyle.Render("❯ Create"))
	default:
		b.WriteString("  Create")
	}
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Tab/↑↓ to navigate · ←→ to change · Esc to go back"))

	return tui.BoxStyle.Render(b.String())
}

// renderChannelSection renders the search input, the lookup status line,
// the result options and the selected channels. Loading, no-matches and
// errored states are visually distinct.
func (m CommunityFormModel) renderChannelSection(b *strings.Builder, slot slotRef) {
	b.WriteString(tui.LabelStyle.Render("Farcaster channels"))
	b.WriteString("\n")
	b.WriteString(m.queryInput.View())
	b.WriteString("\n")

	switch {
	case m.searching:
		b.WriteString(m.spinner.View())
		b.WriteString(tui.DimStyle.Render(" Searching..."))
		b.WriteString("\n")
	case m.draft.Search.Err() != "":
		b.WriteString(tui.ErrorStyle.Render(m.draft.Search.Err()))
		b.WriteString("\n")
	case m.draft.Search.NoMatches():
		b.WriteString(tui.DimStyle.Render("No channels found"))
		b.WriteString("\n")
	}

	for i, opt := range m.draft.Search.Options() {
		line := fmt.Sprintf("/%s — %s", opt.Value, opt.Label)
		if slot.kind == slotResults && i == m.resultsIndex {
			b.WriteString(tui.SelectedStyle.Render("❯ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if selected := m.draft.Search.Selected(); len(selected) > 0 {
		b.WriteString("\n")
		b.WriteString(tui.LabelStyle.Render("Selected"))
		b.WriteString("\n")
		chips := make([]string, len(selected))
		for i, opt := range selected {
			chip := "/" + opt.Value
			if slot.kind == slotSelected && i == m.selIndex {
				chip = tui.SelectedStyle.Render(chip + " ✕")
			}
			chips[i] = chip
		}
		b.WriteString(strings.Join(chips, "  "))
		b.WriteString("\n")
	}
	if msg := m.errs["channels"]; msg != "" {
		b.WriteString(tui.ErrorStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// renderAddressSection renders the token census address rows.
func (m CommunityFormModel) renderAddressSection(b *strings.Builder, slot slotRef) {
	b.WriteString(tui.LabelStyle.Render("Token addresses"))
	b.WriteString("\n")
	for i, f := range m.draft.Addresses.Fields() {
		label := tui.DimStyle.Render(fmt.Sprintf("[%s]", f.Row.Blockchain))
		b.WriteString(fmt.Sprintf("%s %s", m.addressInputs[f.ID].View(), label))
		b.WriteString("\n")
		if msg := m.errs[fmt.Sprintf("addresses[%d]", i)]; msg != "" {
			b.WriteString(tui.ErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	hints := []string{}
	if m.draft.Addresses.CanAppend() {
		hints = append(hints, "Ctrl+A to add")
	}
	if slot.kind == slotAddress && m.draft.Addresses.CanRemove() {
		hints = append(hints, "Ctrl+D to remove")
	}
	hints = append(hints, "Ctrl+B to switch chain")
	b.WriteString(tui.DimStyle.Render(strings.Join(hints, " · ")))
	b.WriteString("\n\n")
}
