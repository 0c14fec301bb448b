package session

import "time"

// Summary captures the final outcome of a completed run for display and
// persistence.
type Summary struct {
	LessonID     string
	StageID      string // empty for whole-lesson runs
	ItemsTotal   int
	ItemsCorrect int
	Points       int
	Perfect      bool // every item correct on its first attempt
	Passed       bool // challenge runs only; true for ordinary runs
	Duration     time.Duration
	Items        []ItemStatus
}

// Summarize builds the summary for a finished lesson run. Calling it before
// the run completes reflects the state so far.
func (r *LessonRun) Summarize() Summary {
	return Summary{
		LessonID:     r.lessonID,
		ItemsTotal:   r.tracker.Len(),
		ItemsCorrect: r.tracker.CorrectCount(),
		Points:       r.points,
		Perfect:      r.tracker.AllFirstTry(),
		Passed:       true,
		Duration:     time.Since(r.started),
		Items:        r.tracker.Statuses(),
	}
}

// Summarize builds the summary for a finished challenge run.
func (r *ChallengeRun) Summarize() Summary {
	return Summary{
		LessonID:     r.lessonID,
		StageID:      r.stageID,
		ItemsTotal:   r.tracker.Len(),
		ItemsCorrect: r.tracker.CorrectCount(),
		Points:       r.points,
		Perfect:      r.tracker.AllFirstTry(),
		Passed:       r.Passed(),
		Duration:     time.Since(r.started),
		Items:        r.tracker.Statuses(),
	}
}
