package session

import (
	"testing"

	"github.com/abhisek/promptascent/internal/content"
)

func TestTrackerInitialization(t *testing.T) {
	items := []content.Item{snippetItem("s1", 2), mcItem("q1", 10)}
	tr := NewTracker(items)

	if tr.Len() != 2 {
		t.Fatalf("len = %d, want 2", tr.Len())
	}
	for _, st := range tr.Statuses() {
		if st.Completed || st.WasCorrect || st.Attempts != 0 {
			t.Errorf("initial status = %+v, want all zero", st)
		}
	}
	if tr.AllCompleted() {
		t.Error("fresh tracker reports all completed")
	}
}

func TestTrackerSnippetTerminalInOneCall(t *testing.T) {
	tr := NewTracker([]content.Item{snippetItem("s1", 2)})

	tr.RecordOutcome("s1", content.KindSnippet, true)
	st := tr.Status("s1")
	if !st.Completed || !st.WasCorrect || st.Attempts != 1 {
		t.Errorf("status = %+v, want completed/correct/1 attempt", st)
	}

	// Repeat calls are idempotent.
	tr.RecordOutcome("s1", content.KindSnippet, true)
	if st.Attempts != 1 {
		t.Errorf("attempts after repeat = %d, want 1", st.Attempts)
	}
}

func TestTrackerQuestionPolicy(t *testing.T) {
	tests := []struct {
		name          string
		verdicts      []bool
		wantAttempts  int
		wantCompleted bool
		wantCorrect   bool
	}{
		{"correct first try", []bool{true}, 1, true, true},
		{"correct second try", []bool{false, true}, 2, true, true},
		{"correct third try", []bool{false, false, true}, 3, true, true},
		{"one incorrect", []bool{false}, 1, false, false},
		{"two incorrect", []bool{false, false}, 2, false, false},
		{"budget exhausted", []bool{false, false, false}, 3, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker([]content.Item{mcItem("q1", 10)})
			for _, v := range tt.verdicts {
				tr.RecordOutcome("q1", content.KindMultipleChoice, v)
			}
			st := tr.Status("q1")
			if st.Attempts != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", st.Attempts, tt.wantAttempts)
			}
			if st.Completed != tt.wantCompleted {
				t.Errorf("completed = %v, want %v", st.Completed, tt.wantCompleted)
			}
			if st.WasCorrect != tt.wantCorrect {
				t.Errorf("wasCorrect = %v, want %v", st.WasCorrect, tt.wantCorrect)
			}
		})
	}
}

func TestTrackerUnknownItemIgnored(t *testing.T) {
	tr := NewTracker([]content.Item{mcItem("q1", 10)})

	tr.RecordOutcome("ghost", content.KindMultipleChoice, true)
	if tr.Status("ghost") != nil {
		t.Error("unknown item gained a status entry")
	}
	if tr.Len() != 1 {
		t.Errorf("len = %d, want 1 (set fixed at construction)", tr.Len())
	}
}

func TestTrackerCounts(t *testing.T) {
	items := []content.Item{mcItem("q1", 5), mcItem("q2", 5), mcItem("q3", 5)}
	tr := NewTracker(items)

	tr.RecordOutcome("q1", content.KindMultipleChoice, true)
	tr.RecordOutcome("q2", content.KindMultipleChoice, false)
	tr.RecordOutcome("q2", content.KindMultipleChoice, false)
	tr.RecordOutcome("q2", content.KindMultipleChoice, false)

	if got := tr.CompletedCount(); got != 2 {
		t.Errorf("completed = %d, want 2", got)
	}
	if got := tr.CorrectCount(); got != 1 {
		t.Errorf("correct = %d, want 1", got)
	}
	if tr.AllCompleted() {
		t.Error("q3 pending but tracker reports all completed")
	}
}

func TestTrackerAllFirstTry(t *testing.T) {
	tr := NewTracker([]content.Item{mcItem("q1", 5), mcItem("q2", 5)})

	tr.RecordOutcome("q1", content.KindMultipleChoice, true)
	tr.RecordOutcome("q2", content.KindMultipleChoice, false)
	tr.RecordOutcome("q2", content.KindMultipleChoice, true)

	if tr.AllFirstTry() {
		t.Error("second-try correct counted as first-try perfect")
	}

	tr2 := NewTracker([]content.Item{mcItem("q1", 5), snippetItem("s1", 1)})
	tr2.RecordOutcome("q1", content.KindMultipleChoice, true)
	tr2.RecordOutcome("s1", content.KindSnippet, true)
	if !tr2.AllFirstTry() {
		t.Error("all-first-try tracker not reported perfect")
	}
}

func TestTrackerStatusesPreserveOrder(t *testing.T) {
	items := []content.Item{mcItem("b", 1), mcItem("a", 1), mcItem("c", 1)}
	tr := NewTracker(items)

	got := tr.Statuses()
	wantOrder := []string{"b", "a", "c"}
	for i, st := range got {
		if st.ID != wantOrder[i] {
			t.Errorf("statuses[%d] = %s, want %s", i, st.ID, wantOrder[i])
		}
	}
}
