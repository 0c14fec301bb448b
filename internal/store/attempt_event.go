package store

import (
	"context"
	"fmt"

	"github.com/abhisek/promptascent/ent"
	"github.com/abhisek/promptascent/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetUserID(data.UserID).
		SetLessonID(data.LessonID).
		SetItemID(data.ItemID).
		SetItemKind(data.ItemKind).
		SetAttemptNumber(data.AttemptNumber).
		SetAnswer(data.Answer).
		SetVerdict(data.Verdict).
		SetOracleError(data.OracleError).
		SetPointsAwarded(data.PointsAwarded)

	if data.Feedback != "" {
		builder = builder.SetFeedback(data.Feedback)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) Attempts(ctx context.Context, userID string, opts QueryOpts) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID))
	q = applyAttemptOpts(q, opts)

	events, err := q.Order(ent.Asc(attemptevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return attemptRecords(events), nil
}

func (r *eventRepo) AttemptsForRun(ctx context.Context, runID string) ([]AttemptRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.RunID(runID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query run attempts: %w", err)
	}
	return attemptRecords(events), nil
}

func applyAttemptOpts(q *ent.AttemptEventQuery, opts QueryOpts) *ent.AttemptEventQuery {
	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	return q
}

func attemptRecords(events []*ent.AttemptEvent) []AttemptRecord {
	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
			RunID:         e.RunID,
			UserID:        e.UserID,
			LessonID:      e.LessonID,
			ItemID:        e.ItemID,
			ItemKind:      e.ItemKind,
			AttemptNumber: e.AttemptNumber,
			Verdict:       e.Verdict,
			OracleError:   e.OracleError,
			PointsAwarded: e.PointsAwarded,
		})
	}
	return records
}
