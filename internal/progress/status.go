// Package progress maintains per-user lesson and stage progress on top of
// the event store, with periodic snapshots so startup doesn't replay the
// whole event log.
package progress

import "github.com/abhisek/promptascent/internal/session"

// StageStatus is the persisted outcome of a stage for a user.
type StageStatus string

const (
	// StatusDefault means the stage has not been finished yet.
	StatusDefault StageStatus = "default"

	// StatusCompletedPerfect means every item was correct on its first
	// attempt.
	StatusCompletedPerfect StageStatus = "completed-perfect"

	// StatusCompletedGood means the stage finished with at least one retry
	// or failed item.
	StatusCompletedGood StageStatus = "completed-good"

	// StatusFailedStage means an all-or-nothing challenge stage was failed.
	StatusFailedStage StageStatus = "failed-stage"
)

// Completed reports whether the status counts toward lesson completion.
func (s StageStatus) Completed() bool {
	return s == StatusCompletedPerfect || s == StatusCompletedGood
}

// DisplayName returns a human-readable label for the status.
func (s StageStatus) DisplayName() string {
	switch s {
	case StatusDefault:
		return "Not started"
	case StatusCompletedPerfect:
		return "Perfect"
	case StatusCompletedGood:
		return "Completed"
	case StatusFailedStage:
		return "Failed"
	default:
		return string(s)
	}
}

// ClassifyStage derives the persisted status from a finished run's summary.
// Challenge runs fail the stage outright when not passed; ordinary runs
// always complete, rated perfect only when every item was first-try correct.
func ClassifyStage(sum session.Summary, challenge bool) StageStatus {
	if challenge && !sum.Passed {
		return StatusFailedStage
	}
	if sum.Perfect {
		return StatusCompletedPerfect
	}
	return StatusCompletedGood
}
