package session

// EvaluateAttempt computes the point award for one attempt given the
// oracle's verdict. A correct answer earns the entry's current decayed
// value; an incorrect answer earns nothing. The declared per-item
// PointsForIncorrect deduction is never applied: points only move toward
// zero through decay on retry, never as a negative adjustment to the
// running total.
func EvaluateAttempt(item QueuedItem, verdict bool) int {
	if !verdict {
		return 0
	}
	return item.PointsToAward
}
