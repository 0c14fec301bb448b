package points

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/promptascent/internal/store"
)

// mockEventRepo implements store.EventRepo for points tests.
type mockEventRepo struct {
	pointsEvents []store.PointsEventData
	badgeEvents  []store.BadgeEventData
	total        int
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, _ store.AttemptEventData) error {
	return nil
}
func (m *mockEventRepo) Attempts(_ context.Context, _ string, _ store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AttemptsForRun(_ context.Context, _ string) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendRun(_ context.Context, _ store.RunEventData) error {
	return nil
}
func (m *mockEventRepo) Runs(_ context.Context, _ string, _ store.QueryOpts) ([]store.RunRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendStage(_ context.Context, _ store.StageEventData) error {
	return nil
}
func (m *mockEventRepo) Stages(_ context.Context, _, _ string) ([]store.StageRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendPoints(_ context.Context, data store.PointsEventData) error {
	m.pointsEvents = append(m.pointsEvents, data)
	m.total += data.Delta
	return nil
}
func (m *mockEventRepo) TotalPoints(_ context.Context, _ string) (int, error) {
	return m.total, nil
}
func (m *mockEventRepo) AppendBadge(_ context.Context, data store.BadgeEventData) error {
	m.badgeEvents = append(m.badgeEvents, data)
	return nil
}
func (m *mockEventRepo) Badges(_ context.Context, _ string) ([]store.BadgeRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) LLMRequests(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsage(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LastRunEnd(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}

func newTestService() (*Service, *mockEventRepo) {
	repo := &mockEventRepo{}
	return NewService(repo), repo
}

func TestRecordPoints(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if err := svc.RecordPoints(ctx, "u1", 8, "item q1", "run-1"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(repo.pointsEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.pointsEvents))
	}
	ev := repo.pointsEvents[0]
	if ev.UserID != "u1" || ev.Delta != 8 || ev.RunID != "run-1" {
		t.Errorf("event = %+v", ev)
	}

	total, err := svc.TotalPoints(ctx, "u1")
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 8 {
		t.Errorf("total = %d, want 8", total)
	}
}

func TestRecordPointsSkipsZeroDelta(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.RecordPoints(context.Background(), "u1", 0, "incorrect", "run-1"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(repo.pointsEvents) != 0 {
		t.Errorf("persisted %d events for zero delta, want 0", len(repo.pointsEvents))
	}
}

func TestAwardLesson(t *testing.T) {
	svc, repo := newTestService()

	award := svc.AwardLesson(context.Background(), "u1", "prompt-basics", "Prompt Basics", "run-1", 1.0)

	if award.Type != BadgeLesson {
		t.Errorf("type = %q, want %q", award.Type, BadgeLesson)
	}
	if award.Rarity != RarityLegendary {
		t.Errorf("rarity = %q, want legendary for perfect accuracy", award.Rarity)
	}
	if len(repo.badgeEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.badgeEvents))
	}
	if repo.badgeEvents[0].LessonID != "prompt-basics" {
		t.Errorf("persisted lesson id = %q", repo.badgeEvents[0].LessonID)
	}
	if len(svc.RunBadges) != 1 {
		t.Errorf("run badges = %d, want 1", len(svc.RunBadges))
	}
}

func TestAwardChallengeIsLegendary(t *testing.T) {
	svc, repo := newTestService()

	award := svc.AwardChallenge(context.Background(), "u1", "context-climb", "The Summit", "run-1")

	if award.Rarity != RarityLegendary {
		t.Errorf("rarity = %q, want legendary", award.Rarity)
	}
	if repo.badgeEvents[0].BadgeType != "challenge" {
		t.Errorf("persisted type = %q", repo.badgeEvents[0].BadgeType)
	}
}

func TestAwardStreakRarityScalesWithLength(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		length int
		want   Rarity
	}{
		{3, RarityCommon},
		{7, RarityRare},
		{14, RarityEpic},
		{30, RarityLegendary},
	}
	for _, tt := range tests {
		award := svc.AwardStreak(ctx, "u1", tt.length, "run-1")
		if award.Rarity != tt.want {
			t.Errorf("streak %d rarity = %q, want %q", tt.length, award.Rarity, tt.want)
		}
	}
}

func TestResetRun(t *testing.T) {
	svc, _ := newTestService()

	svc.AwardLesson(context.Background(), "u1", "l1", "L1", "run-1", 0.5)
	svc.ResetRun()
	if len(svc.RunBadges) != 0 {
		t.Errorf("run badges after reset = %d, want 0", len(svc.RunBadges))
	}
}

func TestNilRepoStillAccumulates(t *testing.T) {
	svc := NewService(nil)

	award := svc.AwardPerfectStage(context.Background(), "u1", "l1", "Stage One", "run-1")
	if award == nil {
		t.Fatal("expected award")
	}
	if len(svc.RunBadges) != 1 {
		t.Errorf("run badges = %d, want 1", len(svc.RunBadges))
	}
}
