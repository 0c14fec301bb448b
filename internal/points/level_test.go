package points

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{-5, 1},
		{0, 1},
		{49, 1},
		{50, 2},  // first step: 50
		{124, 2}, // second step: 75, next threshold 125
		{125, 3}, // third step: 100, next threshold 225
		{224, 3},
		{225, 4},
	}
	for _, tt := range tests {
		if got := Level(tt.total); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestNextLevelAt(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 50},
		{49, 50},
		{50, 125},
		{125, 225},
	}
	for _, tt := range tests {
		if got := NextLevelAt(tt.total); got != tt.want {
			t.Errorf("NextLevelAt(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	if got := LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %f, want 0", got)
	}
	if got := LevelProgress(25); got != 0.5 {
		t.Errorf("LevelProgress(25) = %f, want 0.5", got)
	}
	// Just past a level boundary: progress restarts.
	if got := LevelProgress(50); got != 0 {
		t.Errorf("LevelProgress(50) = %f, want 0", got)
	}
	for _, total := range []int{0, 10, 49, 50, 100, 500, 10000} {
		p := LevelProgress(total)
		if p < 0 || p >= 1 {
			t.Errorf("LevelProgress(%d) = %f, want [0, 1)", total, p)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for total := 0; total <= 2000; total += 7 {
		l := Level(total)
		if l < prev {
			t.Fatalf("level decreased at total=%d: %d -> %d", total, prev, l)
		}
		prev = l
	}
}
