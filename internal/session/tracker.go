package session

import (
	"github.com/abhisek/promptascent/internal/content"
)

// MaxAttempts is the per-question attempt budget. After three incorrect
// attempts an item is marked permanently failed and never requeued.
const MaxAttempts = 3

// ItemStatus is the terminal-state record for one logical lesson item.
type ItemStatus struct {
	// ID matches the source item's id.
	ID string

	// Completed is true once the item will never be shown again: answered
	// correctly, acknowledged (snippets), or out of attempts.
	Completed bool

	// WasCorrect reports whether the terminal outcome was a correct answer.
	WasCorrect bool

	// Attempts is the total attempts made, monotonically increasing and
	// capped at MaxAttempts for question items.
	Attempts int
}

// Tracker maintains per-item completion state across a lesson run. One entry
// exists per distinct item; the set is fixed at construction and never grows.
type Tracker struct {
	order    []string
	statuses map[string]*ItemStatus
}

// NewTracker initializes completion state for the given items: all
// incomplete, zero attempts.
func NewTracker(items []content.Item) *Tracker {
	t := &Tracker{
		order:    make([]string, 0, len(items)),
		statuses: make(map[string]*ItemStatus, len(items)),
	}
	for _, item := range items {
		id := item.Core().ID
		t.order = append(t.order, id)
		t.statuses[id] = &ItemStatus{ID: id}
	}
	return t
}

// RecordOutcome mutates the status entry for itemID after a processed
// attempt. Snippets complete on their single acknowledgement. Question items
// complete on a correct verdict or on exhausting the attempt budget.
// Unknown ids are ignored; the item set is validated before a run starts.
func (t *Tracker) RecordOutcome(itemID string, kind content.ItemKind, verdict bool) {
	st, ok := t.statuses[itemID]
	if !ok {
		return
	}

	if kind == content.KindSnippet {
		st.Completed = true
		st.WasCorrect = true
		st.Attempts = 1
		return
	}

	st.Attempts++
	switch {
	case verdict:
		st.Completed = true
		st.WasCorrect = true
	case st.Attempts >= MaxAttempts:
		st.Completed = true
		st.WasCorrect = false
	}
}

// Status returns the entry for itemID, or nil if the item is unknown.
func (t *Tracker) Status(itemID string) *ItemStatus {
	return t.statuses[itemID]
}

// Statuses returns all entries in lesson order.
func (t *Tracker) Statuses() []ItemStatus {
	out := make([]ItemStatus, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.statuses[id])
	}
	return out
}

// AllCompleted reports whether every item has reached a terminal state.
func (t *Tracker) AllCompleted() bool {
	for _, st := range t.statuses {
		if !st.Completed {
			return false
		}
	}
	return true
}

// CompletedCount returns how many items have reached a terminal state.
func (t *Tracker) CompletedCount() int {
	n := 0
	for _, st := range t.statuses {
		if st.Completed {
			n++
		}
	}
	return n
}

// CorrectCount returns how many items terminated with a correct answer.
func (t *Tracker) CorrectCount() int {
	n := 0
	for _, st := range t.statuses {
		if st.Completed && st.WasCorrect {
			n++
		}
	}
	return n
}

// Len returns the number of tracked items.
func (t *Tracker) Len() int {
	return len(t.order)
}

// AllFirstTry reports whether every item was answered correctly on its
// first attempt. Used for perfect-stage classification.
func (t *Tracker) AllFirstTry() bool {
	for _, st := range t.statuses {
		if !st.Completed || !st.WasCorrect || st.Attempts != 1 {
			return false
		}
	}
	return true
}
