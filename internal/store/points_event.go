package store

import (
	"context"
	"fmt"

	"github.com/abhisek/promptascent/ent"
	"github.com/abhisek/promptascent/ent/pointsevent"
)

func (r *eventRepo) AppendPoints(ctx context.Context, data PointsEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.PointsEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetDelta(data.Delta).
		SetReason(data.Reason)

	if data.RunID != "" {
		builder = builder.SetRunID(data.RunID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save points event: %w", err)
	}
	return nil
}

func (r *eventRepo) TotalPoints(ctx context.Context, userID string) (int, error) {
	// SUM over zero rows yields NULL, which Int reports as an error, so
	// check for emptiness first.
	count, err := r.client.PointsEvent.Query().
		Where(pointsevent.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count points events: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	total, err := r.client.PointsEvent.Query().
		Where(pointsevent.UserID(userID)).
		Aggregate(ent.Sum(pointsevent.FieldDelta)).
		Int(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum points: %w", err)
	}
	return total, nil
}
