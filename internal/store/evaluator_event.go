package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/ent"
	"github.com/abhisek/skillforge/ent/evaluatorrequestevent"
)

func (r *eventRepo) AppendEvaluatorRequest(ctx context.Context, data EvaluatorRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.EvaluatorRequestEvent.Create().
		SetSequence(seqNum).
		SetMode(data.Mode).
		SetOperation(data.Operation).
		SetTarget(data.Target).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save evaluator request event: %w", err)
	}
	return nil
}

func (r *eventRepo) EvaluatorRequests(ctx context.Context, opts QueryOpts) ([]EvaluatorRequestRecord, error) {
	q := r.client.EvaluatorRequestEvent.Query().
		Order(ent.Desc(evaluatorrequestevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(evaluatorrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(evaluatorrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(evaluatorrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(evaluatorrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evaluator requests: %w", err)
	}

	out := make([]EvaluatorRequestRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, EvaluatorRequestRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			EvaluatorRequestEventData: EvaluatorRequestEventData{
				Mode:         row.Mode,
				Operation:    row.Operation,
				Target:       row.Target,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return out, nil
}
