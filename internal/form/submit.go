package form

// SubmitState enumerates the submission lifecycle.
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	SubmitInFlight
	SubmitSucceeded
	SubmitFailed
)

// Submission tracks one form's submit lifecycle: Idle -> InFlight ->
// Succeeded | Failed. Failed re-enables submission with the failure message
// kept for display until the next attempt. Succeeded is terminal: the form
// is replaced by a read-only confirmation and there is no path back to
// editing the same draft.
type Submission struct {
	state  SubmitState
	pollID string
	errMsg string
}

// NewSubmission creates an idle Submission.
func NewSubmission() *Submission {
	return &Submission{}
}

// Begin transitions to InFlight. It reports false when a submission is
// already in flight or has succeeded, in which case the trigger must be
// ignored so exactly one network call happens per user-initiated attempt.
// Beginning from Failed clears the previous failure banner.
func (s *Submission) Begin() bool {
	if s.state == SubmitInFlight || s.state == SubmitSucceeded {
		return false
	}
	s.state = SubmitInFlight
	s.errMsg = ""
	return true
}

// Succeed records the poll id returned by the backend and locks the
// submission in its terminal state.
func (s *Submission) Succeed(pollID string) {
	if s.state != SubmitInFlight {
		return
	}
	s.state = SubmitSucceeded
	s.pollID = pollID
}

// Fail records the failure message and returns the form to an editable
// state; field values are untouched by design of the caller.
func (s *Submission) Fail(message string) {
	if s.state != SubmitInFlight {
		return
	}
	s.state = SubmitFailed
	s.errMsg = message
}

// State returns the current submission state.
func (s *Submission) State() SubmitState {
	return s.state
}

// InFlight reports whether a request is currently outstanding.
func (s *Submission) InFlight() bool {
	return s.state == SubmitInFlight
}

// Done reports whether the submission reached its terminal success state.
func (s *Submission) Done() bool {
	return s.state == SubmitSucceeded
}

// PollID returns the identifier carried by a successful submission.
func (s *Submission) PollID() string {
	return s.pollID
}

// Err returns the failure banner message, or "" when there is none.
func (s *Submission) Err() string {
	return s.errMsg
}
