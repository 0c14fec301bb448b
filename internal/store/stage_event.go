package store

import (
	"context"
	"fmt"

	"github.com/abhisek/promptascent/ent"
	"github.com/abhisek/promptascent/ent/stageevent"
)

func (r *eventRepo) AppendStage(ctx context.Context, data StageEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StageEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetLessonID(data.LessonID).
		SetStageID(data.StageID).
		SetStatus(data.Status).
		SetPointsEarned(data.PointsEarned).
		SetRunID(data.RunID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save stage event: %w", err)
	}
	return nil
}

func (r *eventRepo) Stages(ctx context.Context, userID, lessonID string) ([]StageRecord, error) {
	events, err := r.client.StageEvent.Query().
		Where(
			stageevent.UserID(userID),
			stageevent.LessonID(lessonID),
		).
		Order(ent.Asc(stageevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stages: %w", err)
	}

	records := make([]StageRecord, 0, len(events))
	for _, e := range events {
		records = append(records, StageRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			UserID:       e.UserID,
			LessonID:     e.LessonID,
			StageID:      e.StageID,
			Status:       e.Status,
			PointsEarned: e.PointsEarned,
			RunID:        e.RunID,
		})
	}
	return records, nil
}
