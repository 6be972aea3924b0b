package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/ent"
	"github.com/abhisek/skillforge/ent/exerciseevaluationevent"
)

func (r *eventRepo) AppendExerciseEvaluation(ctx context.Context, data ExerciseEvaluationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExerciseEvaluationEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetExerciseID(data.ExerciseID).
		SetPathID(data.PathID).
		SetScore(data.Score).
		SetPassed(data.Passed).
		SetHintsUsed(data.HintsUsed).
		SetSolutionChars(data.SolutionChars).
		SetTimeSpentSeconds(data.TimeSpentSeconds).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exercise evaluation event: %w", err)
	}
	return nil
}

func (r *eventRepo) ExerciseEvaluations(ctx context.Context, opts QueryOpts) ([]ExerciseEvaluationRecord, error) {
	q := r.client.ExerciseEvaluationEvent.Query().
		Order(ent.Desc(exerciseevaluationevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(exerciseevaluationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(exerciseevaluationevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(exerciseevaluationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(exerciseevaluationevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exercise evaluations: %w", err)
	}

	out := make([]ExerciseEvaluationRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ExerciseEvaluationRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			ExerciseEvaluationEventData: ExerciseEvaluationEventData{
				AttemptID:        row.AttemptID,
				ExerciseID:       row.ExerciseID,
				PathID:           row.PathID,
				Score:            row.Score,
				Passed:           row.Passed,
				HintsUsed:        row.HintsUsed,
				SolutionChars:    row.SolutionChars,
				TimeSpentSeconds: row.TimeSpentSeconds,
			},
		})
	}
	return out, nil
}
