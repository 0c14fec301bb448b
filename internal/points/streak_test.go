package points

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2026, 8, n, 15, 0, 0, 0, time.Local)
	}

	tests := []struct {
		name    string
		prev    int
		lastRun time.Time
		now     time.Time
		want    int
	}{
		{"first ever run", 0, time.Time{}, day(10), 1},
		{"same day keeps streak", 4, day(10), day(10), 4},
		{"next day extends", 4, day(10), day(11), 5},
		{"gap resets", 9, day(10), day(13), 1},
		{"same day with corrupt zero streak", 0, day(10), day(10), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.prev, tt.lastRun, tt.now); got != tt.want {
				t.Errorf("NextStreak(%d) = %d, want %d", tt.prev, got, tt.want)
			}
		})
	}
}

func TestNextStreakCrossesMidnight(t *testing.T) {
	lastRun := time.Date(2026, 8, 10, 23, 50, 0, 0, time.Local)
	now := time.Date(2026, 8, 11, 0, 10, 0, 0, time.Local)
	if got := NextStreak(2, lastRun, now); got != 3 {
		t.Errorf("streak across midnight = %d, want 3", got)
	}
}

func TestIsStreakMilestone(t *testing.T) {
	tests := []struct {
		length int
		want   bool
	}{
		{1, false},
		{3, true},
		{5, false},
		{7, true},
		{14, true},
		{20, false},
		{30, true},
		{45, false},
		{60, true},
		{90, true},
	}
	for _, tt := range tests {
		if got := IsStreakMilestone(tt.length); got != tt.want {
			t.Errorf("IsStreakMilestone(%d) = %v, want %v", tt.length, got, tt.want)
		}
	}
}
