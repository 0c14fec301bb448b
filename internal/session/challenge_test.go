package session

import (
	"errors"
	"testing"

	"github.com/abhisek/promptascent/internal/content"
)

func challengeItems() []content.Item {
	return []content.Item{mcItem("c1", 10), frItem("c2", 10), ptItem("c3", 10)}
}

func TestChallengeAllCorrectPasses(t *testing.T) {
	r, err := NewChallengeRun("l1", "s6", challengeItems())
	if err != nil {
		t.Fatalf("new challenge: %v", err)
	}

	for r.Phase() != PhaseComplete {
		if _, err := r.Submit(true); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if err := r.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if !r.Passed() {
		t.Error("all-correct challenge did not pass")
	}
	if r.Points() != 30 {
		t.Errorf("points = %d, want 30", r.Points())
	}
}

func TestChallengeSingleMissFails(t *testing.T) {
	r, err := NewChallengeRun("l1", "s6", challengeItems())
	if err != nil {
		t.Fatalf("new challenge: %v", err)
	}

	verdicts := []bool{true, false, true}
	for i := 0; r.Phase() != PhaseComplete; i++ {
		if _, err := r.Submit(verdicts[i]); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if err := r.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if r.Passed() {
		t.Error("challenge with a miss passed")
	}
	// Correct items still earn their points.
	if r.Points() != 20 {
		t.Errorf("points = %d, want 20", r.Points())
	}
}

func TestChallengeNoRetries(t *testing.T) {
	r, err := NewChallengeRun("l1", "s6", challengeItems())
	if err != nil {
		t.Fatalf("new challenge: %v", err)
	}

	if _, err := r.Submit(false); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := r.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	// The failed item is terminal after one attempt and never requeued.
	st := r.Tracker().Status("c1")
	if !st.Completed || st.WasCorrect || st.Attempts != 1 {
		t.Errorf("status = %+v, want completed/incorrect/1 attempt", st)
	}
	if r.Remaining() != 2 {
		t.Errorf("remaining = %d, want 2", r.Remaining())
	}
	for _, entry := range r.queue {
		if entry.OriginalItemID == "c1" {
			t.Error("failed challenge item was requeued")
		}
	}
}

func TestChallengeOracleErrorFails(t *testing.T) {
	r, err := NewChallengeRun("l1", "s6", []content.Item{mcItem("c1", 10)})
	if err != nil {
		t.Fatalf("new challenge: %v", err)
	}

	if err := r.SubmitOracleError(); err != nil {
		t.Fatalf("submit oracle error: %v", err)
	}
	if !r.LastVerdictFromError() {
		t.Error("expected verdict marked as oracle failure")
	}
	if err := r.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if r.Passed() {
		t.Error("oracle failure should fail the challenge")
	}
}

func TestChallengeRejectsSnippets(t *testing.T) {
	_, err := NewChallengeRun("l1", "s6", []content.Item{snippetItem("s1", 2)})
	var verr *content.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.ItemID != "s1" {
		t.Errorf("item id = %q, want s1", verr.ItemID)
	}
}

func TestChallengeResubmissionRejected(t *testing.T) {
	r, err := NewChallengeRun("l1", "s6", []content.Item{mcItem("c1", 10)})
	if err != nil {
		t.Fatalf("new challenge: %v", err)
	}

	if _, err := r.Submit(true); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := r.Submit(true); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("re-submit = %v, want ErrAlreadySubmitted", err)
	}
}

func TestChallengeSummary(t *testing.T) {
	r, err := NewChallengeRun("climb", "cc-s6", challengeItems())
	if err != nil {
		t.Fatalf("new challenge: %v", err)
	}

	verdicts := []bool{true, true, false}
	for i := 0; r.Phase() != PhaseComplete; i++ {
		if _, err := r.Submit(verdicts[i]); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if err := r.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	sum := r.Summarize()
	if sum.StageID != "cc-s6" {
		t.Errorf("stage id = %q", sum.StageID)
	}
	if sum.Passed {
		t.Error("failed challenge summarized as passed")
	}
	if sum.ItemsCorrect != 2 {
		t.Errorf("items correct = %d, want 2", sum.ItemsCorrect)
	}
}
