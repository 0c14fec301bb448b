package session

import "errors"

var (
	// ErrRunComplete is returned when an operation is attempted on a run
	// that has already reached its terminal state.
	ErrRunComplete = errors.New("run already complete")

	// ErrNoCurrentItem is returned when the queue has no head to act on.
	ErrNoCurrentItem = errors.New("no current item")

	// ErrNotQuestion is returned when Submit is called on a snippet.
	ErrNotQuestion = errors.New("current item is not a question")

	// ErrNotSnippet is returned when AcknowledgeSnippet is called on a
	// question item.
	ErrNotSnippet = errors.New("current item is not a snippet")

	// ErrAlreadySubmitted is returned when a verdict has already been
	// recorded for the current item and Advance has not yet run.
	ErrAlreadySubmitted = errors.New("answer already submitted for current item")

	// ErrNotSubmitted is returned when Advance is called on a question item
	// before any verdict has been recorded.
	ErrNotSubmitted = errors.New("no answer submitted for current item")
)
