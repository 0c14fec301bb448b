package points

import "time"

// Streak milestones that award a badge.
var streakMilestones = []int{3, 7, 14, 30}

// IsStreakMilestone reports whether a daily streak length awards a badge.
func IsStreakMilestone(length int) bool {
	for _, m := range streakMilestones {
		if length == m {
			return true
		}
	}
	// Beyond 30, every 30 days.
	return length > 30 && length%30 == 0
}

// NextStreak computes the updated daily streak given the previous streak and
// the time of the last completed run. Playing on consecutive calendar days
// extends the streak; a gap resets it to 1. A second run on the same day
// leaves the streak unchanged.
func NextStreak(prev int, lastRun, now time.Time) int {
	if lastRun.IsZero() {
		return 1
	}
	lastDay := startOfDay(lastRun.Local())
	today := startOfDay(now.Local())
	switch days := int(today.Sub(lastDay).Hours() / 24); {
	case days == 0:
		if prev < 1 {
			return 1
		}
		return prev
	case days == 1:
		return prev + 1
	default:
		return 1
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
