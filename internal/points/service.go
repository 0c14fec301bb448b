package points

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/promptascent/internal/store"
)

// Service persists point awards and badges and tracks what the current run
// earned so the summary screen can show it.
type Service struct {
	eventRepo store.EventRepo

	// RunBadges accumulates badges awarded during the current run.
	RunBadges []BadgeAward
}

// NewService creates a points service on top of the event repo.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo}
}

// ResetRun clears the run badge accumulator. Called at run start.
func (s *Service) ResetRun() {
	s.RunBadges = nil
}

// RecordPoints persists a point delta for the user. Zero deltas are skipped
// so incorrect attempts don't produce empty events.
func (s *Service) RecordPoints(ctx context.Context, userID string, delta int, reason, runID string) error {
	if delta <= 0 {
		return nil
	}
	return s.eventRepo.AppendPoints(ctx, store.PointsEventData{
		UserID: userID,
		Delta:  delta,
		Reason: reason,
		RunID:  runID,
	})
}

// TotalPoints returns the user's lifetime point total.
func (s *Service) TotalPoints(ctx context.Context, userID string) (int, error) {
	return s.eventRepo.TotalPoints(ctx, userID)
}

// AwardLesson awards a lesson-completion badge rated by item accuracy.
func (s *Service) AwardLesson(ctx context.Context, userID, lessonID, lessonTitle, runID string, accuracy float64) *BadgeAward {
	award := &BadgeAward{
		Type:      BadgeLesson,
		Rarity:    LessonRarity(accuracy),
		LessonID:  lessonID,
		RunID:     runID,
		Reason:    fmt.Sprintf("Completed %s", lessonTitle),
		AwardedAt: time.Now(),
	}
	s.persist(ctx, userID, award)
	return award
}

// AwardPerfectStage awards an epic badge for a stage finished with every
// item correct on its first attempt.
func (s *Service) AwardPerfectStage(ctx context.Context, userID, lessonID, stageTitle, runID string) *BadgeAward {
	award := &BadgeAward{
		Type:      BadgePerfectStage,
		Rarity:    RarityEpic,
		LessonID:  lessonID,
		RunID:     runID,
		Reason:    fmt.Sprintf("Perfect run of %s", stageTitle),
		AwardedAt: time.Now(),
	}
	s.persist(ctx, userID, award)
	return award
}

// AwardChallenge awards a legendary badge for passing an all-or-nothing
// challenge stage.
func (s *Service) AwardChallenge(ctx context.Context, userID, lessonID, stageTitle, runID string) *BadgeAward {
	award := &BadgeAward{
		Type:      BadgeChallenge,
		Rarity:    RarityLegendary,
		LessonID:  lessonID,
		RunID:     runID,
		Reason:    fmt.Sprintf("Conquered %s", stageTitle),
		AwardedAt: time.Now(),
	}
	s.persist(ctx, userID, award)
	return award
}

// AwardStreak awards a streak badge at daily streak milestones.
func (s *Service) AwardStreak(ctx context.Context, userID string, length int, runID string) *BadgeAward {
	award := &BadgeAward{
		Type:      BadgeStreak,
		Rarity:    StreakRarity(length),
		RunID:     runID,
		Reason:    fmt.Sprintf("%d days in a row!", length),
		AwardedAt: time.Now(),
	}
	s.persist(ctx, userID, award)
	return award
}

func (s *Service) persist(ctx context.Context, userID string, award *BadgeAward) {
	s.RunBadges = append(s.RunBadges, *award)
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendBadge(ctx, store.BadgeEventData{
		UserID:    userID,
		BadgeType: string(award.Type),
		Rarity:    string(award.Rarity),
		LessonID:  award.LessonID,
		RunID:     award.RunID,
		Reason:    award.Reason,
	})
}
