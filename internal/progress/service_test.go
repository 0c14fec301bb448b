package progress

import (
	"context"
	"testing"

	"github.com/abhisek/promptascent/internal/session"
	"github.com/abhisek/promptascent/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.EventRepo(), s.SnapshotRepo()), s
}

func TestUserProgressEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.UserProgress(context.Background(), "u1")
	if err != nil {
		t.Fatalf("user progress: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil progress for unknown user")
	}
	if p.TotalPoints != 0 || len(p.CompletedLessons) != 0 || len(p.StageStatus) != 0 {
		t.Errorf("progress = %+v, want empty", p)
	}
}

func TestCompleteStage(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	p, err := svc.CompleteStage(ctx, "u1", "context-climb", "cc-s1", StatusCompletedPerfect, 20, "run-1", 6)
	if err != nil {
		t.Fatalf("complete stage: %v", err)
	}

	key := StageKey("context-climb", "cc-s1")
	if got := p.StageStatus[key]; got != StatusCompletedPerfect {
		t.Errorf("stage status = %q, want completed-perfect", got)
	}
	// One of six stages complete: lesson not finished.
	if len(p.CompletedLessons) != 0 {
		t.Errorf("completed lessons = %v, want none", p.CompletedLessons)
	}

	// The stage event was persisted too.
	stages, err := s.EventRepo().Stages(ctx, "u1", "context-climb")
	if err != nil {
		t.Fatalf("stages: %v", err)
	}
	if len(stages) != 1 || stages[0].Status != "completed-perfect" {
		t.Errorf("stage events = %+v", stages)
	}
}

func TestLessonCompletesWhenAllStagesDo(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	stageIDs := []string{"s1", "s2", "s3", "s4", "s5", "s6"}
	var p *UserProgress
	var err error
	for _, id := range stageIDs {
		p, err = svc.CompleteStage(ctx, "u1", "climb", id, StatusCompletedGood, 10, "run-"+id, len(stageIDs))
		if err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}

	if len(p.CompletedLessons) != 1 || p.CompletedLessons[0] != "climb" {
		t.Errorf("completed lessons = %v, want [climb]", p.CompletedLessons)
	}

	// Completing a stage again doesn't duplicate the lesson entry.
	p, err = svc.CompleteStage(ctx, "u1", "climb", "s1", StatusCompletedPerfect, 5, "run-x", len(stageIDs))
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if len(p.CompletedLessons) != 1 {
		t.Errorf("completed lessons = %v, want single entry", p.CompletedLessons)
	}
}

func TestFailedStageDoesNotCompleteLesson(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.CompleteStage(ctx, "u1", "climb", "s1", StatusFailedStage, 0, "run-1", 1)
	if err != nil {
		t.Fatalf("complete stage: %v", err)
	}
	if len(p.CompletedLessons) != 0 {
		t.Errorf("failed stage completed the lesson: %v", p.CompletedLessons)
	}
	if got := p.StageStatus[StageKey("climb", "s1")]; got != StatusFailedStage {
		t.Errorf("status = %q, want failed-stage", got)
	}
}

func TestUpdateTotalPoints(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	repo := s.EventRepo()
	awards := []store.PointsEventData{
		{UserID: "u1", Delta: 10, Reason: "item", RunID: "run-1"},
		{UserID: "u1", Delta: 7, Reason: "item", RunID: "run-1"},
	}
	for _, a := range awards {
		if err := repo.AppendPoints(ctx, a); err != nil {
			t.Fatalf("append points: %v", err)
		}
	}

	p, err := svc.UpdateTotalPoints(ctx, "u1")
	if err != nil {
		t.Fatalf("update total: %v", err)
	}
	if p.TotalPoints != 17 {
		t.Errorf("total = %d, want 17", p.TotalPoints)
	}
	if p.LastActive.IsZero() {
		t.Error("expected last active stamped")
	}

	// The materialized total survives a fresh read.
	p, err = svc.UserProgress(ctx, "u1")
	if err != nil {
		t.Fatalf("user progress: %v", err)
	}
	if p.TotalPoints != 17 {
		t.Errorf("reloaded total = %d, want 17", p.TotalPoints)
	}
}

func TestStreakAndBadgesPersist(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.UpdateStreak(ctx, "u1", 4); err != nil {
		t.Fatalf("update streak: %v", err)
	}
	if err := svc.RecordBadge(ctx, "u1", "lesson:prompt-basics"); err != nil {
		t.Fatalf("record badge: %v", err)
	}

	p, err := svc.UserProgress(ctx, "u1")
	if err != nil {
		t.Fatalf("user progress: %v", err)
	}
	if p.Streak != 4 {
		t.Errorf("streak = %d, want 4", p.Streak)
	}
	if len(p.Badges) != 1 || p.Badges[0] != "lesson:prompt-basics" {
		t.Errorf("badges = %v", p.Badges)
	}
}

func TestLeaderboard(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	repo := s.EventRepo()
	totals := map[string]int{"alice": 120, "bob": 300, "cara": 120}
	for user, total := range totals {
		if err := repo.AppendPoints(ctx, store.PointsEventData{UserID: user, Delta: total, Reason: "seed"}); err != nil {
			t.Fatalf("seed %s: %v", user, err)
		}
		if _, err := svc.UpdateTotalPoints(ctx, user); err != nil {
			t.Fatalf("update %s: %v", user, err)
		}
	}

	board, err := svc.Leaderboard(ctx, 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("entries = %d, want 3", len(board))
	}
	if board[0].UserID != "bob" || board[0].Rank != 1 {
		t.Errorf("first = %+v, want bob rank 1", board[0])
	}
	// Equal points rank by user id for stable output.
	if board[1].UserID != "alice" || board[2].UserID != "cara" {
		t.Errorf("tie order = %s, %s, want alice then cara", board[1].UserID, board[2].UserID)
	}

	top2, err := svc.Leaderboard(ctx, 2)
	if err != nil {
		t.Fatalf("leaderboard limit: %v", err)
	}
	if len(top2) != 2 {
		t.Errorf("limited entries = %d, want 2", len(top2))
	}
}

func TestClassifyStage(t *testing.T) {
	tests := []struct {
		name      string
		summary   session.Summary
		challenge bool
		want      StageStatus
	}{
		{"perfect ordinary", session.Summary{Perfect: true, Passed: true}, false, StatusCompletedPerfect},
		{"good ordinary", session.Summary{Perfect: false, Passed: true}, false, StatusCompletedGood},
		{"challenge passed perfect", session.Summary{Perfect: true, Passed: true}, true, StatusCompletedPerfect},
		{"challenge failed", session.Summary{Perfect: false, Passed: false}, true, StatusFailedStage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStage(tt.summary, tt.challenge); got != tt.want {
				t.Errorf("ClassifyStage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStageStatusCompleted(t *testing.T) {
	tests := []struct {
		status StageStatus
		want   bool
	}{
		{StatusDefault, false},
		{StatusCompletedPerfect, true},
		{StatusCompletedGood, true},
		{StatusFailedStage, false},
	}
	for _, tt := range tests {
		if got := tt.status.Completed(); got != tt.want {
			t.Errorf("%q.Completed() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
