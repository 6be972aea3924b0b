package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/ent/hintrequestevent"
)

func (r *eventRepo) AppendHintRequest(ctx context.Context, data HintRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintRequestEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetExerciseID(data.ExerciseID).
		SetLevel(data.Level).
		SetHintText(data.HintText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint request event: %w", err)
	}
	return nil
}

func (r *eventRepo) HintCount(ctx context.Context, exerciseID string) (int, error) {
	q := r.client.HintRequestEvent.Query()
	if exerciseID != "" {
		q = q.Where(hintrequestevent.ExerciseID(exerciseID))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count hint requests: %w", err)
	}
	return n, nil
}
