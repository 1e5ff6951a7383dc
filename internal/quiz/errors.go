package quiz

import "errors"

// Sentinel errors for the recoverable failure modes of a drill session.
// Callers match them with errors.Is and keep the session alive.
var (
	// ErrEmptySelection is returned when a session is started without any
	// selected kana group.
	ErrEmptySelection = errors.New("at least one kana group must be selected")

	// ErrNoQuestion is returned for submissions outside a running stage,
	// either before Start or after completion.
	ErrNoQuestion = errors.New("no active question")

	// ErrWrongAnswerKind is returned when a choice submission arrives for a
	// typing question or vice versa.
	ErrWrongAnswerKind = errors.New("submission does not match the question kind")

	// ErrPoolTooSmall is returned when the selected groups cannot supply a
	// question for the current stage.
	ErrPoolTooSmall = errors.New("not enough kana selected for this stage")

	// ErrAlreadyAnswered is returned for repeated submissions while the
	// correct answer is being revealed.
	ErrAlreadyAnswered = errors.New("answer already submitted for this question")
)
