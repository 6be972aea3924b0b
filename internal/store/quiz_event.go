package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/ent"
	"github.com/abhisek/skillforge/ent/quizsubmissionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendQuizSubmission(ctx context.Context, data QuizSubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizSubmissionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuizID(data.QuizID).
		SetPathID(data.PathID).
		SetScore(data.Score).
		SetPassed(data.Passed).
		SetCorrectCount(data.CorrectCount).
		SetTotalQuestions(data.TotalQuestions).
		SetPointsEarned(data.PointsEarned).
		SetTimeSpentSeconds(data.TimeSpentSeconds).
		SetAutoSubmitted(data.AutoSubmitted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizSubmissions(ctx context.Context, opts QueryOpts) ([]QuizSubmissionRecord, error) {
	q := r.client.QuizSubmissionEvent.Query().
		Order(ent.Desc(quizsubmissionevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(quizsubmissionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(quizsubmissionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(quizsubmissionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(quizsubmissionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz submissions: %w", err)
	}

	out := make([]QuizSubmissionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, QuizSubmissionRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			QuizSubmissionEventData: QuizSubmissionEventData{
				SessionID:        row.SessionID,
				QuizID:           row.QuizID,
				PathID:           row.PathID,
				Score:            row.Score,
				Passed:           row.Passed,
				CorrectCount:     row.CorrectCount,
				TotalQuestions:   row.TotalQuestions,
				PointsEarned:     row.PointsEarned,
				TimeSpentSeconds: row.TimeSpentSeconds,
				AutoSubmitted:    row.AutoSubmitted,
			},
		})
	}
	return out, nil
}
