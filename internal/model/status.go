package model

// SubmissionStatus represents the state of a single upload submission
type SubmissionStatus string

const (
	// SubmissionStatusIdle means the submission was created but not started
	SubmissionStatusIdle SubmissionStatus = "Idle"

	// SubmissionStatusValidating means the display was reset and input is being checked
	SubmissionStatusValidating SubmissionStatus = "Validating"

	// SubmissionStatusSending means the request is outstanding
	SubmissionStatusSending SubmissionStatus = "Sending"

	// SubmissionStatusParsing means the response arrived and is being interpreted
	SubmissionStatusParsing SubmissionStatus = "Parsing"

	// SubmissionStatusRendered means the prediction was displayed
	SubmissionStatusRendered SubmissionStatus = "Rendered"

	// SubmissionStatusError means the submission failed and the error was displayed
	SubmissionStatusError SubmissionStatus = "Error"
)

// String returns the string representation of SubmissionStatus
func (s SubmissionStatus) String() string {
	return string(s)
}

// IsActive returns true while the submission is between validation and a terminal state
func (s SubmissionStatus) IsActive() bool {
	return s == SubmissionStatusValidating || s == SubmissionStatusSending || s == SubmissionStatusParsing
}

// IsFinished returns true if the submission reached a terminal state (rendered or error)
func (s SubmissionStatus) IsFinished() bool {
	return s == SubmissionStatusRendered || s == SubmissionStatusError
}

// CanTransition reports whether moving from s to next is a legal step of the
// Idle → Validating → Sending → Parsing → Rendered machine. Any non-terminal
// state may fail into Error except Idle.
func (s SubmissionStatus) CanTransition(next SubmissionStatus) bool {
	if next == SubmissionStatusError {
		return s.IsActive()
	}
	switch s {
	case SubmissionStatusIdle:
		return next == SubmissionStatusValidating
	case SubmissionStatusValidating:
		return next == SubmissionStatusSending
	case SubmissionStatusSending:
		return next == SubmissionStatusParsing
	case SubmissionStatusParsing:
		return next == SubmissionStatusRendered
	default:
		return false
	}
}
