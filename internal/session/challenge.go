package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/promptascent/internal/content"
)

// ChallengeRun is the all-or-nothing variant used for a lesson's challenge
// stage. Every item is presented exactly once with no retries; the stage
// passes only if every single-attempt verdict was correct. Snippets are not
// part of challenge stages and are rejected at construction.
type ChallengeRun struct {
	token    string
	lessonID string
	stageID  string
	started  time.Time

	queue   []QueuedItem
	tracker *Tracker
	points  int
	phase   Phase

	submitted   bool
	lastVerdict bool
	lastFromErr bool
	allCorrect  bool
}

// NewChallengeRun builds a challenge run over the stage's items. Items must
// all be question types; a snippet in a challenge stage is a content error.
func NewChallengeRun(lessonID, stageID string, items []content.Item) (*ChallengeRun, error) {
	for _, item := range items {
		if !item.Kind().IsQuestion() {
			return nil, &content.ValidationError{
				LessonID: lessonID,
				ItemID:   item.Core().ID,
				Message:  "challenge stages may only contain question items",
			}
		}
	}
	r := &ChallengeRun{
		token:      uuid.NewString(),
		lessonID:   lessonID,
		stageID:    stageID,
		started:    time.Now(),
		queue:      BuildQueue(items),
		tracker:    NewTracker(items),
		allCorrect: true,
	}
	if len(r.queue) == 0 {
		r.phase = PhaseComplete
	}
	return r, nil
}

// Token identifies this run instance for stale-event filtering.
func (r *ChallengeRun) Token() string { return r.token }

// Matches reports whether an event token belongs to this run.
func (r *ChallengeRun) Matches(token string) bool { return r.token == token }

// LessonID returns the lesson this run belongs to.
func (r *ChallengeRun) LessonID() string { return r.lessonID }

// StageID returns the challenge stage's id.
func (r *ChallengeRun) StageID() string { return r.stageID }

// Phase returns the run's current coarse state.
func (r *ChallengeRun) Phase() Phase { return r.phase }

// Points returns the accumulated point total.
func (r *ChallengeRun) Points() int { return r.points }

// Started returns when the run was constructed.
func (r *ChallengeRun) Started() time.Time { return r.started }

// Tracker exposes per-item completion state.
func (r *ChallengeRun) Tracker() *Tracker { return r.tracker }

// Current returns the queue head, or nil when the run is complete.
func (r *ChallengeRun) Current() *QueuedItem {
	if len(r.queue) == 0 {
		return nil
	}
	return &r.queue[0]
}

// Remaining returns how many items are still pending.
func (r *ChallengeRun) Remaining() int { return len(r.queue) }

// Submitted reports whether the current item already has a recorded verdict.
func (r *ChallengeRun) Submitted() bool { return r.submitted }

// LastVerdict returns the verdict recorded for the current item.
func (r *ChallengeRun) LastVerdict() bool { return r.lastVerdict }

// LastVerdictFromError reports whether the recorded verdict came from an
// oracle failure.
func (r *ChallengeRun) LastVerdictFromError() bool { return r.lastFromErr }

// Submit records the oracle's verdict for the current item. Points are
// awarded at full base value on a correct answer; there is no decay because
// there are no retries.
func (r *ChallengeRun) Submit(verdict bool) (int, error) {
	if r.phase == PhaseComplete {
		return 0, ErrRunComplete
	}
	cur := r.Current()
	if cur == nil {
		return 0, ErrNoCurrentItem
	}
	if r.submitted {
		return 0, ErrAlreadySubmitted
	}

	r.submitted = true
	r.lastVerdict = verdict
	r.lastFromErr = false
	if !verdict {
		r.allCorrect = false
	}

	awarded := EvaluateAttempt(*cur, verdict)
	r.points += awarded
	return awarded, nil
}

// SubmitOracleError records an oracle failure as an incorrect verdict,
// failing the challenge.
func (r *ChallengeRun) SubmitOracleError() error {
	_, err := r.Submit(false)
	if err != nil {
		return err
	}
	r.lastFromErr = true
	return nil
}

// Advance moves past the current item. Failed items are never requeued:
// the verdict is recorded as terminal regardless of outcome.
func (r *ChallengeRun) Advance() error {
	if r.phase == PhaseComplete {
		return ErrRunComplete
	}
	cur := r.Current()
	if cur == nil {
		return ErrNoCurrentItem
	}
	if !r.submitted {
		return ErrNotSubmitted
	}

	head := r.queue[0]
	r.queue = r.queue[1:]

	// Mark terminal in one call whatever the verdict was. An incorrect
	// answer in a challenge consumes the item entirely.
	st := r.tracker.Status(head.OriginalItemID)
	if st != nil {
		st.Attempts++
		st.Completed = true
		st.WasCorrect = r.lastVerdict
	}

	r.submitted = false
	r.lastVerdict = false
	r.lastFromErr = false

	if len(r.queue) == 0 {
		r.phase = PhaseComplete
	}
	return nil
}

// Passed reports whether every item was answered correctly on its single
// attempt. Only meaningful once the run is complete.
func (r *ChallengeRun) Passed() bool {
	return r.phase == PhaseComplete && r.allCorrect
}

// IsComplete reports whether every item has been processed.
func (r *ChallengeRun) IsComplete() bool {
	return len(r.queue) == 0 && r.tracker.AllCompleted()
}
