package session

import (
	"testing"

	"github.com/abhisek/promptascent/internal/content"
)

func TestBuildQueue(t *testing.T) {
	items := []content.Item{
		snippetItem("s1", 2),
		mcItem("q1", 10),
		frItem("q2", 5),
		ptItem("p1", 8),
	}

	queue := BuildQueue(items)
	if len(queue) != len(items) {
		t.Fatalf("queue length = %d, want %d", len(queue), len(items))
	}

	seen := map[string]bool{}
	for i, entry := range queue {
		core := items[i].Core()
		if entry.OriginalItemID != core.ID {
			t.Errorf("entry %d id = %s, want %s", i, entry.OriginalItemID, core.ID)
		}
		if entry.AttemptNumber != 1 {
			t.Errorf("entry %d attempt = %d, want 1", i, entry.AttemptNumber)
		}
		if entry.PointsToAward != core.Points {
			t.Errorf("entry %d points = %d, want %d", i, entry.PointsToAward, core.Points)
		}
		if entry.OriginalPoints != core.Points {
			t.Errorf("entry %d original points = %d, want %d", i, entry.OriginalPoints, core.Points)
		}
		if entry.Key == "" {
			t.Errorf("entry %d has empty key", i)
		}
		if seen[entry.Key] {
			t.Errorf("entry %d reuses key %s", i, entry.Key)
		}
		seen[entry.Key] = true
	}
}

func TestBuildQueueEmpty(t *testing.T) {
	queue := BuildQueue(nil)
	if len(queue) != 0 {
		t.Errorf("queue length = %d, want 0", len(queue))
	}
}

func TestDecayedPoints(t *testing.T) {
	tests := []struct {
		original int
		attempt  int
		want     int
	}{
		{10, 1, 10},
		{10, 2, 9},
		{10, 3, 8},
		{2, 3, 0},
		{1, 2, 0},
		{1, 3, 0},
		{0, 1, 0},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := decayedPoints(tt.original, tt.attempt); got != tt.want {
			t.Errorf("decayedPoints(%d, %d) = %d, want %d",
				tt.original, tt.attempt, got, tt.want)
		}
	}
}

func TestRequeueCopiesFromOriginal(t *testing.T) {
	queue := BuildQueue([]content.Item{mcItem("q1", 10)})
	first := queue[0]

	second := requeue(first)
	if second.AttemptNumber != 2 {
		t.Errorf("attempt = %d, want 2", second.AttemptNumber)
	}
	if second.PointsToAward != 9 {
		t.Errorf("points = %d, want 9", second.PointsToAward)
	}
	if second.Key == first.Key {
		t.Error("requeued entry reuses the previous key")
	}

	// Decay is recomputed from the base value, not compounded from the
	// prior entry's decayed value.
	third := requeue(second)
	if third.PointsToAward != 8 {
		t.Errorf("third attempt points = %d, want 8", third.PointsToAward)
	}
	if third.OriginalPoints != 10 {
		t.Errorf("original points = %d, want 10", third.OriginalPoints)
	}
}
