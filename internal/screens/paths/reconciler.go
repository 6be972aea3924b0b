package paths

import (
	"context"

	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/quiz"
)

// evalReconciler adapts the evaluator client to the quiz session's
// reconciliation port, flattening the typed answers into the wire shape
// the backend expects.
type evalReconciler struct {
	client evaluator.Client
}

func (r evalReconciler) SubmitQuiz(ctx context.Context, sub quiz.Submission) (*quiz.Reconciliation, error) {
	answers := make(map[string]any, len(sub.Answers))
	for id, a := range sub.Answers {
		switch a.Kind {
		case quiz.KindMultipleChoice:
			answers[id] = a.Option
		case quiz.KindMultipleSelect:
			answers[id] = a.Options
		case quiz.KindTrueFalse:
			answers[id] = a.Bool
		}
	}

	res, err := r.client.SubmitQuiz(ctx, evaluator.QuizAnswers{
		QuizID:           sub.QuizID,
		Answers:          answers,
		TimeSpentSeconds: sub.TimeSpentSeconds,
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return &quiz.Reconciliation{
		Score:    res.Score,
		Passed:   res.Passed,
		Feedback: res.Feedback,
	}, nil
}
