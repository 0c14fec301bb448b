package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/promptascent/internal/store"
)

// snapshotKeep is how many snapshots survive a prune.
const snapshotKeep = 10

// UserProgress is the materialized view of one user's standing.
type UserProgress struct {
	UserID           string
	TotalPoints      int
	CompletedLessons []string
	StageStatus      map[string]StageStatus // "<lessonID>/<stageID>"
	Badges           []string
	Streak           int
	LastActive       time.Time
}

// StageKey builds the map key for a lesson's stage.
func StageKey(lessonID, stageID string) string {
	return lessonID + "/" + stageID
}

// Service reads and mutates user progress. State lives in the latest
// snapshot; every mutation writes events and a fresh snapshot so the two
// stay consistent.
type Service struct {
	events    store.EventRepo
	snapshots store.SnapshotRepo
}

// NewService creates a progress service over the store repositories.
func NewService(events store.EventRepo, snapshots store.SnapshotRepo) *Service {
	return &Service{events: events, snapshots: snapshots}
}

// UserProgress returns the user's current standing, empty (not nil) when the
// user has no history.
func (s *Service) UserProgress(ctx context.Context, userID string) (*UserProgress, error) {
	data, err := s.loadData(ctx)
	if err != nil {
		return nil, err
	}
	return fromSnapshotUser(userID, data.Users[userID]), nil
}

// CompleteStage records a finished stage: persists the stage event, updates
// the user's stage status, marks the lesson complete when the last stage
// completes, and advances the daily streak.
func (s *Service) CompleteStage(ctx context.Context, userID, lessonID, stageID string, status StageStatus, pointsEarned int, runID string, totalStages int) (*UserProgress, error) {
	err := s.events.AppendStage(ctx, store.StageEventData{
		UserID:       userID,
		LessonID:     lessonID,
		StageID:      stageID,
		Status:       string(status),
		PointsEarned: pointsEarned,
		RunID:        runID,
	})
	if err != nil {
		return nil, fmt.Errorf("append stage event: %w", err)
	}

	data, err := s.loadData(ctx)
	if err != nil {
		return nil, err
	}
	u := ensureUser(data, userID)

	u.StageStatus[StageKey(lessonID, stageID)] = string(status)
	if status.Completed() && s.lessonComplete(data, userID, lessonID, totalStages) {
		u.CompletedLessons = appendUnique(u.CompletedLessons, lessonID)
	}

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}
	return fromSnapshotUser(userID, u), nil
}

// UpdateTotalPoints refreshes the user's snapshot total from the event log
// and stamps activity time. Called after a run persists its point events.
func (s *Service) UpdateTotalPoints(ctx context.Context, userID string) (*UserProgress, error) {
	total, err := s.events.TotalPoints(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("total points: %w", err)
	}

	data, err := s.loadData(ctx)
	if err != nil {
		return nil, err
	}
	u := ensureUser(data, userID)
	u.TotalPoints = total
	u.LastActive = time.Now()

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}
	return fromSnapshotUser(userID, u), nil
}

// UpdateStreak sets the user's daily streak.
func (s *Service) UpdateStreak(ctx context.Context, userID string, streak int) error {
	data, err := s.loadData(ctx)
	if err != nil {
		return err
	}
	u := ensureUser(data, userID)
	u.Streak = streak
	return s.saveData(ctx, data)
}

// RecordBadge adds a badge label to the user's snapshot.
func (s *Service) RecordBadge(ctx context.Context, userID, label string) error {
	data, err := s.loadData(ctx)
	if err != nil {
		return err
	}
	u := ensureUser(data, userID)
	u.Badges = append(u.Badges, label)
	return s.saveData(ctx, data)
}

// LeaderboardEntry is one ranked row of the local leaderboard.
type LeaderboardEntry struct {
	Rank        int
	UserID      string
	TotalPoints int
	Lessons     int
	Streak      int
}

// Leaderboard ranks all local profiles by total points, descending, ties
// broken by user id for stable output. Returns at most limit entries;
// limit <= 0 means all.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	data, err := s.loadData(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(data.Users))
	for id, u := range data.Users {
		entries = append(entries, LeaderboardEntry{
			UserID:      id,
			TotalPoints: u.TotalPoints,
			Lessons:     len(u.CompletedLessons),
			Streak:      u.Streak,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].UserID < entries[j].UserID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// lessonComplete reports whether every one of the lesson's stages is now in
// a completed status for the user. Flat lessons pass totalStages = 1 with
// the lesson id doubling as the stage id.
func (s *Service) lessonComplete(data *store.SnapshotData, userID, lessonID string, totalStages int) bool {
	u := data.Users[userID]
	if u == nil || totalStages <= 0 {
		return false
	}
	completed := 0
	prefix := lessonID + "/"
	for key, st := range u.StageStatus {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix && StageStatus(st).Completed() {
			completed++
		}
	}
	return completed >= totalStages
}

func (s *Service) loadData(ctx context.Context) (*store.SnapshotData, error) {
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return &store.SnapshotData{Version: 1, Users: map[string]*store.UserProgressData{}}, nil
	}
	data := snap.Data
	if data.Users == nil {
		data.Users = map[string]*store.UserProgressData{}
	}
	return &data, nil
}

func (s *Service) saveData(ctx context.Context, data *store.SnapshotData) error {
	err := s.snapshots.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      *data,
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	// Best effort; old snapshots are only a disk-usage concern.
	_ = s.snapshots.Prune(ctx, snapshotKeep)
	return nil
}

func ensureUser(data *store.SnapshotData, userID string) *store.UserProgressData {
	u := data.Users[userID]
	if u == nil {
		u = &store.UserProgressData{StageStatus: map[string]string{}}
		data.Users[userID] = u
	}
	if u.StageStatus == nil {
		u.StageStatus = map[string]string{}
	}
	return u
}

func fromSnapshotUser(userID string, u *store.UserProgressData) *UserProgress {
	out := &UserProgress{
		UserID:      userID,
		StageStatus: map[string]StageStatus{},
	}
	if u == nil {
		return out
	}
	out.TotalPoints = u.TotalPoints
	out.CompletedLessons = append([]string(nil), u.CompletedLessons...)
	out.Badges = append([]string(nil), u.Badges...)
	out.Streak = u.Streak
	out.LastActive = u.LastActive
	for key, st := range u.StageStatus {
		out.StageStatus[key] = StageStatus(st)
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
