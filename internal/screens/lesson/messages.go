package lesson

import (
	"github.com/abhisek/promptascent/internal/points"
	"github.com/abhisek/promptascent/internal/progress"
	"github.com/abhisek/promptascent/internal/session"
)

// verdictMsg carries an oracle judgment back to the screen. Token is the
// run that issued the request; results from a discarded run are dropped.
type verdictMsg struct {
	Token     string
	ItemKey   string
	Verdict   bool
	Feedback  string
	Score     int // prompting tasks only
	OracleErr bool
}

// stageFinishedMsg is sent when a stage's persistence work completes.
type stageFinishedMsg struct {
	Result StageResult
	Awards []points.BadgeAward
	Err    error
}

// StageResult is the recorded outcome of one finished stage.
type StageResult struct {
	StageID    string
	StageTitle string
	Challenge  bool
	Status     progress.StageStatus
	Summary    session.Summary
}
