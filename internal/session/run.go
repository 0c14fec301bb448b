package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/promptascent/internal/content"
)

// Phase is the coarse state of a lesson run.
type Phase int

const (
	// PhaseReady means the queue has a current item awaiting interaction.
	PhaseReady Phase = iota

	// PhaseComplete means the queue drained and every item reached a
	// terminal state. The run exposes its final point total.
	PhaseComplete
)

// LessonRun drives one pass through a lesson's items: FIFO presentation,
// per-question retry with decaying rewards, and point accumulation. It is
// owned exclusively by the active lesson session; navigating to a different
// lesson discards it and builds a fresh one. All methods are called from a
// single goroutine.
type LessonRun struct {
	token    string
	lessonID string
	started  time.Time

	queue   []QueuedItem
	tracker *Tracker
	points  int
	phase   Phase

	// Per-item submission sub-state, reset by Advance.
	submitted   bool
	lastVerdict bool
	lastFromErr bool
}

// NewLessonRun builds a run over the given items. An empty item list is a
// valid degenerate lesson: the run starts already complete with zero points
// achievable.
func NewLessonRun(lessonID string, items []content.Item) *LessonRun {
	r := &LessonRun{
		token:    uuid.NewString(),
		lessonID: lessonID,
		started:  time.Now(),
		queue:    BuildQueue(items),
		tracker:  NewTracker(items),
	}
	if len(r.queue) == 0 {
		r.phase = PhaseComplete
	}
	return r
}

// Token identifies this run instance. Asynchronous verdict results carry the
// token of the run that issued them; results from a discarded run are
// dropped instead of mutating the new one.
func (r *LessonRun) Token() string { return r.token }

// Matches reports whether an event token belongs to this run.
func (r *LessonRun) Matches(token string) bool { return r.token == token }

// LessonID returns the lesson this run was built from.
func (r *LessonRun) LessonID() string { return r.lessonID }

// Phase returns the run's current coarse state.
func (r *LessonRun) Phase() Phase { return r.phase }

// Points returns the accumulated point total, which only ever increases
// within a run.
func (r *LessonRun) Points() int { return r.points }

// Started returns when the run was constructed.
func (r *LessonRun) Started() time.Time { return r.started }

// Tracker exposes per-item completion state, read-only by convention.
func (r *LessonRun) Tracker() *Tracker { return r.tracker }

// Current returns the queue head, or nil when the run is complete.
func (r *LessonRun) Current() *QueuedItem {
	if len(r.queue) == 0 {
		return nil
	}
	return &r.queue[0]
}

// Remaining returns how many queue entries are still pending, counting the
// current item.
func (r *LessonRun) Remaining() int { return len(r.queue) }

// Submitted reports whether the current item already has a recorded verdict.
func (r *LessonRun) Submitted() bool { return r.submitted }

// LastVerdict returns the verdict recorded for the current item. Only
// meaningful while Submitted is true.
func (r *LessonRun) LastVerdict() bool { return r.lastVerdict }

// LastVerdictFromError reports whether the recorded verdict came from an
// oracle failure rather than a real judgment.
func (r *LessonRun) LastVerdictFromError() bool { return r.lastFromErr }

// Submit records the oracle's verdict for the current question item and
// awards points for a correct answer at the current attempt's decayed value.
// Returns the points awarded. Re-submission before Advance is rejected.
func (r *LessonRun) Submit(verdict bool) (int, error) {
	if r.phase == PhaseComplete {
		return 0, ErrRunComplete
	}
	cur := r.Current()
	if cur == nil {
		return 0, ErrNoCurrentItem
	}
	if !cur.Item.Kind().IsQuestion() {
		return 0, ErrNotQuestion
	}
	if r.submitted {
		return 0, ErrAlreadySubmitted
	}

	r.submitted = true
	r.lastVerdict = verdict
	r.lastFromErr = false

	awarded := EvaluateAttempt(*cur, verdict)
	r.points += awarded
	return awarded, nil
}

// SubmitOracleError records an oracle failure as an incorrect verdict. The
// attempt still counts against the budget so a persistently failing oracle
// cannot trap the user in an infinite retry loop.
func (r *LessonRun) SubmitOracleError() error {
	_, err := r.Submit(false)
	if err != nil {
		return err
	}
	r.lastFromErr = true
	return nil
}

// AcknowledgeSnippet awards the current snippet's points and immediately
// advances past it. Points are awarded at most once per logical snippet: a
// second acknowledgement of an already-completed snippet is a no-op award.
// Returns the points awarded.
func (r *LessonRun) AcknowledgeSnippet() (int, error) {
	if r.phase == PhaseComplete {
		return 0, ErrRunComplete
	}
	cur := r.Current()
	if cur == nil {
		return 0, ErrNoCurrentItem
	}
	if cur.Item.Kind() != content.KindSnippet {
		return 0, ErrNotSnippet
	}

	awarded := 0
	if st := r.tracker.Status(cur.OriginalItemID); st == nil || !st.Completed {
		awarded = cur.PointsToAward
		r.points += awarded
	}

	r.submitted = true
	r.lastVerdict = true
	r.lastFromErr = false
	if err := r.Advance(); err != nil {
		return awarded, err
	}
	return awarded, nil
}

// Advance moves the run past the current item: pops the queue head, records
// the outcome, requeues failed questions at the tail while attempts remain,
// and resets the submission sub-state. When the queue drains and every item
// is complete, the run enters PhaseComplete.
func (r *LessonRun) Advance() error {
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
	r.tracker.RecordOutcome(head.OriginalItemID, head.Item.Kind(), r.lastVerdict)

	// Failed questions go to the back of the line while the budget allows,
	// so the user never sees the same item twice in a row unless it is the
	// only one left.
	if !r.lastVerdict && head.Item.Kind().IsQuestion() {
		if st := r.tracker.Status(head.OriginalItemID); st != nil && !st.Completed {
			r.queue = append(r.queue, requeue(head))
		}
	}

	r.submitted = false
	r.lastVerdict = false
	r.lastFromErr = false

	if len(r.queue) == 0 && r.tracker.AllCompleted() {
		r.phase = PhaseComplete
	}
	return nil
}

// IsComplete reports whether every item reached a terminal state and the
// queue is empty. Both conditions are checked; holds after every Advance.
func (r *LessonRun) IsComplete() bool {
	return len(r.queue) == 0 && r.tracker.AllCompleted()
}
