package store

import (
	"context"
	"fmt"

	"github.com/abhisek/promptascent/ent"
	"github.com/abhisek/promptascent/ent/badgeevent"
)

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetBadgeType(data.BadgeType).
		SetRarity(data.Rarity).
		SetRunID(data.RunID).
		SetReason(data.Reason)

	if data.LessonID != "" {
		builder = builder.SetLessonID(data.LessonID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) Badges(ctx context.Context, userID string) ([]BadgeRecord, error) {
	events, err := r.client.BadgeEvent.Query().
		Where(badgeevent.UserID(userID)).
		Order(ent.Asc(badgeevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badges: %w", err)
	}

	records := make([]BadgeRecord, 0, len(events))
	for _, e := range events {
		records = append(records, BadgeRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			UserID:    e.UserID,
			BadgeType: e.BadgeType,
			Rarity:    e.Rarity,
			LessonID:  e.LessonID,
			RunID:     e.RunID,
			Reason:    e.Reason,
		})
	}
	return records, nil
}
