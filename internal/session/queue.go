package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/promptascent/internal/content"
)

// QueuedItem is a lesson item scheduled for presentation, annotated with
// attempt metadata. The same logical item appears as a fresh QueuedItem on
// each retry; Key distinguishes the enqueues while OriginalItemID ties them
// back to the source item.
type QueuedItem struct {
	// Key is unique per enqueue, so a retried item is distinguishable from
	// its earlier showings.
	Key string

	// Item is the source lesson item. Retries always copy from the original,
	// never from a previously decayed queue entry.
	Item content.Item

	// OriginalItemID is the source item's stable id.
	OriginalItemID string

	// OriginalPoints is the item's unmodified base point value. Decay is
	// always recomputed from this, not compounded.
	OriginalPoints int

	// AttemptNumber is 1-based and increments on each requeue.
	AttemptNumber int

	// PointsToAward is what a correct answer on this specific attempt earns.
	PointsToAward int
}

// decayedPoints computes the reward for the given attempt number: the base
// value minus one point per prior attempt, floored at zero. Snippets never
// decay; they are only ever enqueued once.
func decayedPoints(original, attemptNumber int) int {
	p := original - (attemptNumber - 1)
	if p < 0 {
		return 0
	}
	return p
}

// BuildQueue transforms an ordered item list into the initial work queue:
// one entry per item, attempt number 1, full base points. An empty item list
// yields an empty queue; the caller treats that lesson as having no
// completable content.
func BuildQueue(items []content.Item) []QueuedItem {
	queue := make([]QueuedItem, 0, len(items))
	for _, item := range items {
		core := item.Core()
		queue = append(queue, QueuedItem{
			Key:            uuid.NewString(),
			Item:           item,
			OriginalItemID: core.ID,
			OriginalPoints: core.Points,
			AttemptNumber:  1,
			PointsToAward:  core.Points,
		})
	}
	return queue
}

// requeue builds the next attempt's entry for a failed item, copying from
// the original item and recomputing the decayed reward from the base value.
func requeue(prev QueuedItem) QueuedItem {
	next := prev.AttemptNumber + 1
	return QueuedItem{
		Key:            uuid.NewString(),
		Item:           prev.Item,
		OriginalItemID: prev.OriginalItemID,
		OriginalPoints: prev.OriginalPoints,
		AttemptNumber:  next,
		PointsToAward:  decayedPoints(prev.OriginalPoints, next),
	}
}
