package evaluator

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/skillforge/internal/store"
)

// LoggingClient is a decorator that records every evaluator call as an
// event.
type LoggingClient struct {
	inner     Client
	mode      string
	target    string
	eventRepo store.EventRepo
}

// WithLogging wraps a Client with event logging. Mode names the backend
// kind (remote, local, mock) and target its address or model.
func WithLogging(c Client, mode, target string, repo store.EventRepo) Client {
	return &LoggingClient{inner: c, mode: mode, target: target, eventRepo: repo}
}

func (l *LoggingClient) Evaluate(ctx context.Context, sub Submission) (*Evaluation, error) {
	start := time.Now()
	out, err := l.inner.Evaluate(ctx, sub)
	l.log(ctx, "evaluate", start, err)
	return out, err
}

func (l *LoggingClient) Hint(ctx context.Context, req HintRequest) (string, error) {
	start := time.Now()
	out, err := l.inner.Hint(ctx, req)
	l.log(ctx, "hint", start, err)
	return out, err
}

func (l *LoggingClient) RunTests(ctx context.Context, exerciseID, code string) (*TestRun, error) {
	start := time.Now()
	out, err := l.inner.RunTests(ctx, exerciseID, code)
	l.log(ctx, "run_tests", start, err)
	return out, err
}

func (l *LoggingClient) SubmitQuiz(ctx context.Context, sub QuizAnswers) (*QuizResult, error) {
	start := time.Now()
	out, err := l.inner.SubmitQuiz(ctx, sub)
	l.log(ctx, "submit_quiz", start, err)
	return out, err
}

func (l *LoggingClient) log(ctx context.Context, op string, start time.Time, err error) {
	data := store.EvaluatorRequestEventData{
		Mode:      l.mode,
		Operation: op,
		Target:    l.target,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendEvaluatorRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log evaluator request event: %v\n", logErr)
	}
}
