package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/promptascent/ent"
	"github.com/abhisek/promptascent/ent/runevent"
)

// Run event actions.
const (
	RunActionStart = "start"
	RunActionEnd   = "end"
)

func (r *eventRepo) AppendRun(ctx context.Context, data RunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RunEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetUserID(data.UserID).
		SetLessonID(data.LessonID).
		SetAction(data.Action).
		SetItemsTotal(data.ItemsTotal).
		SetItemsCorrect(data.ItemsCorrect).
		SetPointsEarned(data.PointsEarned).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save run event: %w", err)
	}
	return nil
}

func (r *eventRepo) Runs(ctx context.Context, userID string, opts QueryOpts) ([]RunRecord, error) {
	q := r.client.RunEvent.Query().
		Where(runevent.UserID(userID))
	if opts.After > 0 {
		q = q.Where(runevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(runevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(runevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.Order(ent.Asc(runevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	records := make([]RunRecord, 0, len(events))
	for _, e := range events {
		records = append(records, RunRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			RunID:        e.RunID,
			UserID:       e.UserID,
			LessonID:     e.LessonID,
			Action:       e.Action,
			ItemsTotal:   e.ItemsTotal,
			ItemsCorrect: e.ItemsCorrect,
			PointsEarned: e.PointsEarned,
			DurationSecs: e.DurationSecs,
		})
	}
	return records, nil
}

func (r *eventRepo) LastRunEnd(ctx context.Context, userID string) (time.Time, error) {
	e, err := r.client.RunEvent.Query().
		Where(
			runevent.UserID(userID),
			runevent.Action(RunActionEnd),
		).
		Order(ent.Desc(runevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query last run end: %w", err)
	}
	return e.Timestamp, nil
}
