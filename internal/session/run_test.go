package session

import (
	"errors"
	"testing"

	"github.com/abhisek/promptascent/internal/content"
)

func mcItem(id string, points int) content.Item {
	return &content.MultipleChoice{
		ItemCore:      content.ItemCore{ID: id, Title: id, Points: points},
		Question:      "pick one",
		Options:       []string{"a", "b", "c"},
		CorrectOption: 0,
	}
}

func frItem(id string, points int) content.Item {
	return &content.FreeResponse{
		ItemCore:       content.ItemCore{ID: id, Title: id, Points: points},
		Question:       "explain",
		ExpectedAnswer: "because",
	}
}

func ptItem(id string, points int) content.Item {
	return &content.PromptingTask{
		ItemCore:           content.ItemCore{ID: id, Title: id, Points: points},
		TaskDescription:    "write a prompt",
		EvaluationGuidance: "clear and specific",
	}
}

func snippetItem(id string, points int) content.Item {
	return &content.Snippet{
		ItemCore: content.ItemCore{ID: id, Title: id, Points: points},
		Content:  "read this",
	}
}

// submitAndAdvance records a verdict for the current question and advances.
func submitAndAdvance(t *testing.T, r *LessonRun, verdict bool) int {
	t.Helper()
	awarded, err := r.Submit(verdict)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := r.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	return awarded
}

func TestPointDecaySequence(t *testing.T) {
	tests := []struct {
		name string
		base int
		want []int // reward offered on attempts 1, 2, 3
	}{
		{"ten points", 10, []int{10, 9, 8}},
		{"two points floors at zero", 2, []int{2, 1, 0}},
		{"one point", 1, []int{1, 0, 0}},
		{"zero points", 0, []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLessonRun("l1", []content.Item{mcItem("q1", tt.base)})

			for attempt := 1; attempt <= 3; attempt++ {
				cur := r.Current()
				if cur == nil {
					t.Fatalf("attempt %d: no current item", attempt)
				}
				if cur.AttemptNumber != attempt {
					t.Errorf("attempt number = %d, want %d", cur.AttemptNumber, attempt)
				}
				if cur.PointsToAward != tt.want[attempt-1] {
					t.Errorf("attempt %d offers %d points, want %d",
						attempt, cur.PointsToAward, tt.want[attempt-1])
				}
				// Offered rewards never increase.
				if attempt > 1 && cur.PointsToAward > tt.want[attempt-2] {
					t.Errorf("reward increased between attempts %d and %d", attempt-1, attempt)
				}
				submitAndAdvance(t, r, false)
			}
		})
	}
}

func TestAttemptBudget(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})

	for i := 0; i < 3; i++ {
		submitAndAdvance(t, r, false)
	}

	st := r.Tracker().Status("q1")
	if st.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", st.Attempts)
	}
	if !st.Completed {
		t.Error("expected item completed after 3 incorrect attempts")
	}
	if st.WasCorrect {
		t.Error("expected wasCorrect=false after exhausting budget")
	}
	// Never requeued a 4th time.
	if r.Current() != nil {
		t.Errorf("expected empty queue, current = %+v", r.Current())
	}
	if r.Phase() != PhaseComplete {
		t.Errorf("phase = %v, want PhaseComplete", r.Phase())
	}
}

func TestCompletedEarlyStopsBudget(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})

	submitAndAdvance(t, r, false)
	submitAndAdvance(t, r, true)

	st := r.Tracker().Status("q1")
	if !st.Completed || !st.WasCorrect {
		t.Errorf("status = %+v, want completed and correct", st)
	}
	if st.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", st.Attempts)
	}
}

func TestSnippetIdempotence(t *testing.T) {
	// Two snippets so the queue survives the first acknowledgement.
	r := NewLessonRun("l1", []content.Item{snippetItem("s1", 4), snippetItem("s2", 1)})

	awarded, err := r.AcknowledgeSnippet()
	if err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	if awarded != 4 {
		t.Errorf("first acknowledgement awarded %d, want 4", awarded)
	}

	// Force the same logical snippet back as current to simulate
	// acknowledgement logic running twice.
	r.queue = append([]QueuedItem{{
		Key:            "dup",
		Item:           snippetItem("s1", 4),
		OriginalItemID: "s1",
		OriginalPoints: 4,
		AttemptNumber:  1,
		PointsToAward:  4,
	}}, r.queue...)

	awarded, err = r.AcknowledgeSnippet()
	if err != nil {
		t.Fatalf("second acknowledge: %v", err)
	}
	if awarded != 0 {
		t.Errorf("second acknowledgement awarded %d, want 0", awarded)
	}
	if r.Points() != 4 {
		t.Errorf("points = %d, want 4", r.Points())
	}
}

func TestCompletionIffQueueEmpty(t *testing.T) {
	items := []content.Item{mcItem("q1", 5), snippetItem("s1", 2), frItem("q2", 3)}
	r := NewLessonRun("l1", items)

	verdicts := []bool{false, true, false, true, true}
	vi := 0
	for r.Phase() != PhaseComplete {
		cur := r.Current()
		if cur == nil {
			t.Fatal("nil current item before completion")
		}
		if cur.Item.Kind() == content.KindSnippet {
			if _, err := r.AcknowledgeSnippet(); err != nil {
				t.Fatalf("acknowledge: %v", err)
			}
		} else {
			if vi >= len(verdicts) {
				t.Fatal("ran out of scripted verdicts")
			}
			submitAndAdvance(t, r, verdicts[vi])
			vi++
		}

		// The invariant holds after every advance.
		gotComplete := r.IsComplete()
		wantComplete := r.Remaining() == 0 && r.Tracker().AllCompleted()
		if gotComplete != wantComplete {
			t.Fatalf("IsComplete = %v but queue=%d allCompleted=%v",
				gotComplete, r.Remaining(), r.Tracker().AllCompleted())
		}
	}

	if !r.IsComplete() {
		t.Error("expected complete run")
	}
	if !r.Tracker().AllCompleted() {
		t.Error("expected all items completed")
	}
}

func TestFailedItemNeverShownTwiceInARow(t *testing.T) {
	items := []content.Item{mcItem("q1", 5), mcItem("q2", 5), mcItem("q3", 5)}
	r := NewLessonRun("l1", items)

	prevID := ""
	for r.Phase() != PhaseComplete {
		cur := r.Current()
		if cur.OriginalItemID == prevID && r.Remaining() > 1 {
			t.Fatalf("item %s shown twice in a row with %d items remaining",
				cur.OriginalItemID, r.Remaining())
		}
		prevID = cur.OriginalItemID
		// Fail everything until budgets exhaust.
		submitAndAdvance(t, r, false)
	}
}

func TestSoleRemainingItemMayRepeat(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{mcItem("q1", 5)})

	submitAndAdvance(t, r, false)

	cur := r.Current()
	if cur == nil {
		t.Fatal("expected requeued sole item")
	}
	if cur.OriginalItemID != "q1" {
		t.Errorf("current = %s, want q1", cur.OriginalItemID)
	}
	if cur.AttemptNumber != 2 {
		t.Errorf("attempt = %d, want 2", cur.AttemptNumber)
	}
}

func TestScenarioCorrectFirstTry(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})

	awarded := submitAndAdvance(t, r, true)
	if awarded != 10 {
		t.Errorf("awarded = %d, want 10", awarded)
	}
	if r.Points() != 10 {
		t.Errorf("final points = %d, want 10", r.Points())
	}
	if st := r.Tracker().Status("q1"); st.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", st.Attempts)
	}
	if r.Phase() != PhaseComplete {
		t.Error("expected complete run")
	}
}

func TestScenarioThirdTryCorrect(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})

	submitAndAdvance(t, r, false)
	submitAndAdvance(t, r, false)
	awarded := submitAndAdvance(t, r, true)

	if awarded != 8 {
		t.Errorf("third attempt awarded = %d, want 8", awarded)
	}
	if r.Points() != 8 {
		t.Errorf("final points = %d, want 8", r.Points())
	}
	st := r.Tracker().Status("q1")
	if st.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", st.Attempts)
	}
	if !st.WasCorrect {
		t.Error("expected wasCorrect=true")
	}
}

func TestScenarioAllIncorrect(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})

	for i := 0; i < 3; i++ {
		awarded := submitAndAdvance(t, r, false)
		if awarded != 0 {
			t.Errorf("incorrect attempt %d awarded %d points", i+1, awarded)
		}
	}

	if r.Points() != 0 {
		t.Errorf("final points = %d, want 0", r.Points())
	}
	st := r.Tracker().Status("q1")
	if !st.Completed || st.WasCorrect {
		t.Errorf("status = %+v, want completed and incorrect", st)
	}
	if r.Current() != nil {
		t.Error("item requeued past the attempt budget")
	}
}

func TestScenarioSnippetThenFreeResponse(t *testing.T) {
	items := []content.Item{snippetItem("s1", 2), frItem("q1", 5)}
	r := NewLessonRun("l1", items)

	// Acknowledge performs its own advance.
	if _, err := r.AcknowledgeSnippet(); err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	submitAndAdvance(t, r, true)

	if r.Points() != 7 {
		t.Errorf("total = %d, want 7", r.Points())
	}
	if r.Phase() != PhaseComplete {
		t.Error("expected complete run after two advances")
	}
}

func TestScenarioOracleFailure(t *testing.T) {
	items := []content.Item{ptItem("p1", 6), mcItem("q1", 4)}
	r := NewLessonRun("l1", items)

	if err := r.SubmitOracleError(); err != nil {
		t.Fatalf("submit oracle error: %v", err)
	}
	if !r.LastVerdictFromError() {
		t.Error("expected verdict marked as oracle failure")
	}
	if r.Points() != 0 {
		t.Errorf("points = %d, want 0 after oracle failure", r.Points())
	}
	if err := r.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	st := r.Tracker().Status("p1")
	if st.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", st.Attempts)
	}
	if st.Completed {
		t.Error("item should not be terminal after one failed attempt")
	}

	// Requeued behind the other pending item.
	if cur := r.Current(); cur.OriginalItemID != "q1" {
		t.Errorf("next item = %s, want q1", cur.OriginalItemID)
	}
	last := r.queue[len(r.queue)-1]
	if last.OriginalItemID != "p1" || last.AttemptNumber != 2 {
		t.Errorf("tail = %s attempt %d, want p1 attempt 2", last.OriginalItemID, last.AttemptNumber)
	}
}

func TestEmptyLessonIsImmediatelyComplete(t *testing.T) {
	r := NewLessonRun("l1", nil)

	if r.Phase() != PhaseComplete {
		t.Error("empty lesson should start complete")
	}
	if r.Points() != 0 {
		t.Errorf("points = %d, want 0", r.Points())
	}
	if _, err := r.Submit(true); !errors.Is(err, ErrRunComplete) {
		t.Errorf("submit on empty lesson = %v, want ErrRunComplete", err)
	}
}

func TestResubmissionRejected(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})

	if _, err := r.Submit(true); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := r.Submit(true); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("re-submit = %v, want ErrAlreadySubmitted", err)
	}
	// Double-submission never double-awards.
	if r.Points() != 10 {
		t.Errorf("points = %d, want 10", r.Points())
	}
}

func TestAdvanceRequiresSubmission(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})

	if err := r.Advance(); !errors.Is(err, ErrNotSubmitted) {
		t.Errorf("advance before submit = %v, want ErrNotSubmitted", err)
	}
}

func TestSubmitOnSnippetRejected(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{snippetItem("s1", 2)})

	if _, err := r.Submit(true); !errors.Is(err, ErrNotQuestion) {
		t.Errorf("submit on snippet = %v, want ErrNotQuestion", err)
	}
	if _, err := r.AcknowledgeSnippet(); err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
}

func TestAcknowledgeOnQuestionRejected(t *testing.T) {
	r := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})

	if _, err := r.AcknowledgeSnippet(); !errors.Is(err, ErrNotSnippet) {
		t.Errorf("acknowledge on question = %v, want ErrNotSnippet", err)
	}
}

func TestPointsMonotonicallyNonDecreasing(t *testing.T) {
	items := []content.Item{mcItem("q1", 3), frItem("q2", 5), snippetItem("s1", 1)}
	r := NewLessonRun("l1", items)

	prev := r.Points()
	verdicts := []bool{false, true, false, false, true}
	vi := 0
	for r.Phase() != PhaseComplete {
		if r.Current().Item.Kind() == content.KindSnippet {
			if _, err := r.AcknowledgeSnippet(); err != nil {
				t.Fatalf("acknowledge: %v", err)
			}
		} else {
			submitAndAdvance(t, r, verdicts[vi%len(verdicts)])
			vi++
		}
		if r.Points() < prev {
			t.Fatalf("points decreased from %d to %d", prev, r.Points())
		}
		prev = r.Points()
	}
}

func TestRunTokenDistinguishesRuns(t *testing.T) {
	r1 := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})
	r2 := NewLessonRun("l1", []content.Item{mcItem("q1", 10)})

	if r1.Token() == r2.Token() {
		t.Error("two runs share a token")
	}
	if !r1.Matches(r1.Token()) {
		t.Error("run rejects its own token")
	}
	if r1.Matches(r2.Token()) {
		t.Error("run accepts a foreign token")
	}
}

func TestSummarize(t *testing.T) {
	items := []content.Item{snippetItem("s1", 2), mcItem("q1", 10), frItem("q2", 5)}
	r := NewLessonRun("climb", items)

	if _, err := r.AcknowledgeSnippet(); err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	submitAndAdvance(t, r, true) // q1 first try
	submitAndAdvance(t, r, false)
	submitAndAdvance(t, r, false)
	submitAndAdvance(t, r, false) // q2 exhausted

	sum := r.Summarize()
	if sum.LessonID != "climb" {
		t.Errorf("lesson id = %q", sum.LessonID)
	}
	if sum.ItemsTotal != 3 {
		t.Errorf("items total = %d, want 3", sum.ItemsTotal)
	}
	if sum.ItemsCorrect != 2 {
		t.Errorf("items correct = %d, want 2", sum.ItemsCorrect)
	}
	if sum.Points != 12 {
		t.Errorf("points = %d, want 12", sum.Points)
	}
	if sum.Perfect {
		t.Error("run with a failed item reported as perfect")
	}
	if !sum.Passed {
		t.Error("ordinary runs always pass")
	}
	if len(sum.Items) != 3 {
		t.Errorf("item statuses = %d, want 3", len(sum.Items))
	}
}

func TestSummarizePerfect(t *testing.T) {
	items := []content.Item{snippetItem("s1", 2), mcItem("q1", 10)}
	r := NewLessonRun("l1", items)

	if _, err := r.AcknowledgeSnippet(); err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	submitAndAdvance(t, r, true)

	if sum := r.Summarize(); !sum.Perfect {
		t.Error("all-first-try run not reported perfect")
	}
}
