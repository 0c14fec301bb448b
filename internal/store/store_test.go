package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAttemptAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{RunID: "run-1", UserID: "u1", LessonID: "l1", ItemID: "q1", ItemKind: "multiple_choice", AttemptNumber: 1, Answer: "B", Verdict: false, PointsAwarded: 0},
		{RunID: "run-1", UserID: "u1", LessonID: "l1", ItemID: "q1", ItemKind: "multiple_choice", AttemptNumber: 2, Answer: "A", Verdict: true, PointsAwarded: 9, Feedback: "nice"},
		{RunID: "run-2", UserID: "u2", LessonID: "l1", ItemID: "q2", ItemKind: "free_response", AttemptNumber: 1, Answer: "x", Verdict: true, PointsAwarded: 5},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	got, err := repo.Attempts(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("attempts for u1 = %d, want 2", len(got))
	}
	if got[0].AttemptNumber != 1 || got[1].AttemptNumber != 2 {
		t.Errorf("attempts out of order: %d then %d", got[0].AttemptNumber, got[1].AttemptNumber)
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d", got[0].Sequence, got[1].Sequence)
	}
	if !got[1].Verdict || got[1].PointsAwarded != 9 {
		t.Errorf("second attempt = verdict %v points %d, want true/9", got[1].Verdict, got[1].PointsAwarded)
	}

	runAttempts, err := repo.AttemptsForRun(ctx, "run-2")
	if err != nil {
		t.Fatalf("query run attempts: %v", err)
	}
	if len(runAttempts) != 1 || runAttempts[0].ItemID != "q2" {
		t.Errorf("run-2 attempts = %+v, want single q2 attempt", runAttempts)
	}
}

func TestAttemptQueryOpts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			RunID: "run-1", UserID: "u1", LessonID: "l1",
			ItemID: "q1", ItemKind: "snippet", AttemptNumber: i + 1,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.Attempts(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("all = %d, want 4", len(all))
	}

	after, err := repo.Attempts(ctx, "u1", QueryOpts{After: all[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("after = %d, want 2", len(after))
	}

	limited, err := repo.Attempts(ctx, "u1", QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 3 {
		t.Errorf("limited = %d, want 3", len(limited))
	}
}

func TestRunEventsAndLastRunEnd(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No runs yet.
	last, err := repo.LastRunEnd(ctx, "u1")
	if err != nil {
		t.Fatalf("last run end (empty): %v", err)
	}
	if !last.IsZero() {
		t.Errorf("expected zero time, got %v", last)
	}

	events := []RunEventData{
		{RunID: "run-1", UserID: "u1", LessonID: "l1", Action: RunActionStart, ItemsTotal: 4},
		{RunID: "run-1", UserID: "u1", LessonID: "l1", Action: RunActionEnd, ItemsTotal: 4, ItemsCorrect: 3, PointsEarned: 17, DurationSecs: 120},
	}
	for i, e := range events {
		if err := repo.AppendRun(ctx, e); err != nil {
			t.Fatalf("append run %d: %v", i, err)
		}
	}

	runs, err := repo.Runs(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if runs[1].Action != RunActionEnd || runs[1].PointsEarned != 17 {
		t.Errorf("end event = %+v", runs[1])
	}

	last, err = repo.LastRunEnd(ctx, "u1")
	if err != nil {
		t.Fatalf("last run end: %v", err)
	}
	if last.IsZero() {
		t.Error("expected non-zero last run end")
	}
}

func TestStageEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []StageEventData{
		{UserID: "u1", LessonID: "l1", StageID: "s1", Status: "completed-perfect", PointsEarned: 20, RunID: "run-1"},
		{UserID: "u1", LessonID: "l1", StageID: "s2", Status: "failed-stage", RunID: "run-2"},
		{UserID: "u1", LessonID: "l2", StageID: "s1", Status: "completed-good", PointsEarned: 12, RunID: "run-3"},
	}
	for i, e := range events {
		if err := repo.AppendStage(ctx, e); err != nil {
			t.Fatalf("append stage %d: %v", i, err)
		}
	}

	stages, err := repo.Stages(ctx, "u1", "l1")
	if err != nil {
		t.Fatalf("query stages: %v", err)
	}
	if len(stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(stages))
	}
	if stages[0].Status != "completed-perfect" || stages[1].Status != "failed-stage" {
		t.Errorf("statuses = %q, %q", stages[0].Status, stages[1].Status)
	}
}

func TestPointsTotal(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No points yet.
	total, err := repo.TotalPoints(ctx, "u1")
	if err != nil {
		t.Fatalf("total (empty): %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}

	awards := []PointsEventData{
		{UserID: "u1", Delta: 10, Reason: "item", RunID: "run-1"},
		{UserID: "u1", Delta: 8, Reason: "item", RunID: "run-1"},
		{UserID: "u2", Delta: 99, Reason: "item", RunID: "run-2"},
	}
	for i, a := range awards {
		if err := repo.AppendPoints(ctx, a); err != nil {
			t.Fatalf("append points %d: %v", i, err)
		}
	}

	total, err = repo.TotalPoints(ctx, "u1")
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 18 {
		t.Errorf("total = %d, want 18", total)
	}
}

func TestBadgeEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendBadge(ctx, BadgeEventData{
		UserID: "u1", BadgeType: "lesson", Rarity: "common",
		LessonID: "l1", RunID: "run-1", Reason: "completed prompt-basics",
	})
	if err != nil {
		t.Fatalf("append badge: %v", err)
	}

	badges, err := repo.Badges(ctx, "u1")
	if err != nil {
		t.Fatalf("query badges: %v", err)
	}
	if len(badges) != 1 {
		t.Fatalf("badges = %d, want 1", len(badges))
	}
	if badges[0].BadgeType != "lesson" || badges[0].Rarity != "common" {
		t.Errorf("badge = %+v", badges[0])
	}
}

func TestLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku", Purpose: "answer-validation",
		InputTokens: 120, OutputTokens: 40, LatencyMs: 800, Success: true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku", Purpose: "answer-validation",
		InputTokens: 80, OutputTokens: 30, LatencyMs: 400, Success: true,
	})
	if err != nil {
		t.Fatalf("append llm request 2: %v", err)
	}

	reqs, err := repo.LLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm requests: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("llm requests = %d, want 2", len(reqs))
	}
	if reqs[0].Model != "claude-haiku" || reqs[0].InputTokens != 120 {
		t.Errorf("first request = %+v", reqs[0])
	}
	if reqs[1].Sequence <= reqs[0].Sequence {
		t.Errorf("sequences not ascending: %d then %d", reqs[0].Sequence, reqs[1].Sequence)
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("llm usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("usage rows = %d, want 1", len(usage))
	}
	u := usage[0]
	if u.Purpose != "answer-validation" || u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 70 {
		t.Errorf("usage = %+v", u)
	}
	if u.AvgLatencyMs != 600 {
		t.Errorf("avg latency = %v, want 600", u.AvgLatencyMs)
	}
}

func TestGlobalOrderingAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAttempt(ctx, AttemptEventData{RunID: "r", UserID: "u1", LessonID: "l1", ItemID: "q1", ItemKind: "snippet", AttemptNumber: 1}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendPoints(ctx, PointsEventData{UserID: "u1", Delta: 2, Reason: "item"}); err != nil {
		t.Fatalf("append points: %v", err)
	}
	if err := repo.AppendAttempt(ctx, AttemptEventData{RunID: "r", UserID: "u1", LessonID: "l1", ItemID: "q2", ItemKind: "snippet", AttemptNumber: 1}); err != nil {
		t.Fatalf("append attempt 2: %v", err)
	}

	attempts, err := repo.Attempts(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(attempts))
	}
	// The points event sits between the two attempts in the global order.
	if attempts[1].Sequence-attempts[0].Sequence != 2 {
		t.Errorf("sequence gap = %d, want 2 (points event interleaved)",
			attempts[1].Sequence-attempts[0].Sequence)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Users: map[string]*UserProgressData{
				"u1": {
					TotalPoints:      31,
					CompletedLessons: []string{"prompt-basics"},
					StageStatus:      map[string]string{"context-climb/cc-s1": "completed-perfect"},
					Streak:           3,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	u1 := snap.Data.Users["u1"]
	if u1 == nil {
		t.Fatal("expected user u1 in snapshot")
	}
	if u1.TotalPoints != 31 || u1.Streak != 3 {
		t.Errorf("u1 = %+v", u1)
	}
	if got := u1.StageStatus["context-climb/cc-s1"]; got != "completed-perfect" {
		t.Errorf("stage status = %q, want completed-perfect", got)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
