package exercise

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/progress"
)

func sampleExercise() *Exercise {
	return &Exercise{
		ID:          "ex-1",
		Title:       "Reverse a string",
		Difficulty:  "beginner",
		StarterCode: "def solve(s):\n    pass\n",
		Language:    "python",
		Points:      100,
		Instructions: []string{
			"Implement solve so it returns the reversed input",
		},
		TestCases: []TestCase{{Input: "abc", ExpectedOutput: "cba"}},
	}
}

func TestHintLadderEscalatesAndCaps(t *testing.T) {
	mock := evaluator.NewMockClient()
	a := NewAttempt(sampleExercise(), Config{Evaluator: mock})
	ctx := context.Background()

	var got []string
	for i := 0; i < 5; i++ {
		hint, err := a.RequestHint(ctx)
		if err != nil {
			t.Fatalf("hint %d: %v", i+1, err)
		}
		got = append(got, hint)
	}

	if a.HintLevel() != MaxHintLevel {
		t.Errorf("level = %d, want %d", a.HintLevel(), MaxHintLevel)
	}
	if shown := a.HintsShown(); len(shown) != 3 {
		t.Errorf("hints shown = %d, want 3", len(shown))
	}
	// Only three fetches; the two calls past the cap replay the last
	// hint without touching the evaluator.
	if len(mock.HintCalls) != 3 {
		t.Errorf("evaluator hint calls = %d, want 3", len(mock.HintCalls))
	}
	if got[3] != got[2] || got[4] != got[2] {
		t.Errorf("calls past the cap must replay the last hint: %v", got)
	}
	for i, call := range mock.HintCalls {
		if call.Level != i+1 {
			t.Errorf("fetch %d asked level %d, want %d", i, call.Level, i+1)
		}
	}
}

func TestHintFailureDoesNotEscalate(t *testing.T) {
	mock := evaluator.NewMockClient()
	mock.HintErr = &evaluator.ErrUnavailable{}
	a := NewAttempt(sampleExercise(), Config{Evaluator: mock})
	ctx := context.Background()

	_, err := a.RequestHint(ctx)
	if !errors.Is(err, ErrEvaluationUnavailable) {
		t.Fatalf("err = %v, want ErrEvaluationUnavailable", err)
	}
	if a.HintLevel() != 0 {
		t.Errorf("level after failed fetch = %d, want 0", a.HintLevel())
	}

	// Recovery retries the same level.
	mock.HintErr = nil
	hint, err := a.RequestHint(ctx)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if hint == "" || a.HintLevel() != 1 {
		t.Errorf("after retry: hint %q, level %d", hint, a.HintLevel())
	}
	if last := mock.HintCalls[len(mock.HintCalls)-1]; last.Level != 1 {
		t.Errorf("retry asked level %d, want 1", last.Level)
	}
}

func TestSubmitEmptySolutionFailsLocally(t *testing.T) {
	mock := evaluator.NewMockClient()
	a := NewAttempt(sampleExercise(), Config{Evaluator: mock})

	if err := a.SetCode("   \n\t  "); err != nil {
		t.Fatalf("setCode: %v", err)
	}
	_, err := a.Submit(context.Background())
	if !errors.Is(err, ErrEmptySubmission) {
		t.Fatalf("err = %v, want ErrEmptySubmission", err)
	}
	if a.Status() != StatusDraft {
		t.Errorf("status = %s, want draft", a.Status())
	}
	if mock.EvaluateCount() != 0 {
		t.Error("blank submission must not reach the evaluator")
	}
}

func TestSubmitPassWritesLedgerOnce(t *testing.T) {
	mock := evaluator.NewMockClient()
	mock.Evaluation.Score = 95
	ledger := progress.NewStore(progress.NewMemoryKV())
	a := NewAttempt(sampleExercise(), Config{
		PathID:    "path-1",
		NodeID:    "node-ex",
		Evaluator: mock,
		Ledger:    ledger,
	})
	a.SetCode("def solve(s):\n    return s[::-1]\n")

	result, err := a.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Passed {
		t.Fatal("expected pass")
	}
	if a.Status() != StatusEvaluated {
		t.Errorf("status = %s, want evaluated", a.Status())
	}

	rec, _ := ledger.Get(context.Background(), "path-1")
	if !rec.IsCompleted("node-ex") {
		t.Error("expected node completed")
	}
	if rec.TotalPointsEarned != 100 {
		t.Errorf("points = %d, want exercise points 100", rec.TotalPointsEarned)
	}
	// 95 with zero hints marks a self-starter.
	if !rec.HasBadge(progress.BadgeSelfStarter) {
		t.Error("expected self-starter badge")
	}

	// Repeat submit returns the stored result without re-grading.
	again, err := a.Submit(context.Background())
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if again != result {
		t.Error("repeat submit must return the same result")
	}
	if mock.EvaluateCount() != 1 {
		t.Errorf("evaluator calls = %d, want 1", mock.EvaluateCount())
	}
}

func TestSubmitWithHintsSkipsSelfStarter(t *testing.T) {
	mock := evaluator.NewMockClient()
	mock.Evaluation.Score = 95
	ledger := progress.NewStore(progress.NewMemoryKV())
	a := NewAttempt(sampleExercise(), Config{
		PathID:    "path-1",
		NodeID:    "node-ex",
		Evaluator: mock,
		Ledger:    ledger,
	})
	a.SetCode("code")
	a.RequestHint(context.Background())

	if _, err := a.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rec, _ := ledger.Get(context.Background(), "path-1")
	if rec.HasBadge(progress.BadgeSelfStarter) {
		t.Error("self-starter must require zero hints")
	}
}

func TestSubmitFailingGradeWritesNoCompletion(t *testing.T) {
	mock := evaluator.NewMockClient()
	mock.Evaluation = &evaluator.Evaluation{Passed: false, Score: 40, Feedback: "2 tests failed"}
	ledger := progress.NewStore(progress.NewMemoryKV())
	a := NewAttempt(sampleExercise(), Config{
		PathID:    "path-1",
		NodeID:    "node-ex",
		Evaluator: mock,
		Ledger:    ledger,
	})
	a.SetCode("broken")

	result, err := a.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Passed {
		t.Fatal("expected failing grade")
	}

	rec, _ := ledger.Get(context.Background(), "path-1")
	if len(rec.CompletedNodes) != 0 {
		t.Errorf("completed = %v, want none", rec.CompletedNodes)
	}
	if rec.TotalPointsEarned != 0 {
		t.Errorf("points = %d, want 0", rec.TotalPointsEarned)
	}
}

func TestEvaluatorOutageReturnsToDraft(t *testing.T) {
	mock := evaluator.NewMockClient()
	mock.EvaluateErr = &evaluator.ErrUnavailable{}
	ledger := progress.NewStore(progress.NewMemoryKV())
	a := NewAttempt(sampleExercise(), Config{
		PathID:    "path-1",
		NodeID:    "node-ex",
		Evaluator: mock,
		Ledger:    ledger,
	})
	a.SetCode("my solution")

	_, err := a.Submit(context.Background())
	if !errors.Is(err, ErrEvaluationUnavailable) {
		t.Fatalf("err = %v, want ErrEvaluationUnavailable", err)
	}
	if a.Status() != StatusDraft {
		t.Errorf("status = %s, want draft", a.Status())
	}
	if a.Code() != "my solution" {
		t.Error("solution must survive an outage")
	}

	rec, _ := ledger.Get(context.Background(), "path-1")
	if len(rec.CompletedNodes) != 0 || rec.TotalPointsEarned != 0 {
		t.Error("outage must not write the ledger")
	}

	// The backend comes back; the same attempt submits cleanly.
	mock.EvaluateErr = nil
	result, err := a.Submit(context.Background())
	if err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if !result.Passed {
		t.Error("expected pass after recovery")
	}
}

func TestOperationsRejectedWhileSubmitting(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	blocking := &blockingClient{release: release, entered: entered}
	a := NewAttempt(sampleExercise(), Config{Evaluator: blocking})
	a.SetCode("code")

	done := make(chan error, 1)
	go func() {
		_, err := a.Submit(context.Background())
		done <- err
	}()
	<-entered

	if _, err := a.RequestHint(context.Background()); !errors.Is(err, ErrAttemptBusy) {
		t.Errorf("hint during submit: err = %v, want ErrAttemptBusy", err)
	}
	if _, err := a.RunTests(context.Background()); !errors.Is(err, ErrAttemptBusy) {
		t.Errorf("runTests during submit: err = %v, want ErrAttemptBusy", err)
	}
	if _, err := a.Submit(context.Background()); !errors.Is(err, ErrAttemptBusy) {
		t.Errorf("submit during submit: err = %v, want ErrAttemptBusy", err)
	}
	if err := a.SetCode("other"); !errors.Is(err, ErrAttemptBusy) {
		t.Errorf("setCode during submit: err = %v, want ErrAttemptBusy", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.Status() != StatusEvaluated {
		t.Errorf("status = %s, want evaluated", a.Status())
	}
}

func TestRunTestsReturnsToDraft(t *testing.T) {
	mock := evaluator.NewMockClient()
	a := NewAttempt(sampleExercise(), Config{Evaluator: mock})
	a.SetCode("code")

	run, err := a.RunTests(context.Background())
	if err != nil {
		t.Fatalf("runTests: %v", err)
	}
	if !run.AllPassed {
		t.Errorf("run = %+v", run)
	}
	if a.Status() != StatusDraft {
		t.Errorf("status = %s, want draft", a.Status())
	}
}

func TestReopenAllowsResubmission(t *testing.T) {
	mock := evaluator.NewMockClient()
	mock.Evaluation = &evaluator.Evaluation{Passed: false, Score: 30}
	a := NewAttempt(sampleExercise(), Config{Evaluator: mock})
	a.SetCode("first try")

	if _, err := a.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := a.SetCode("better"); err == nil {
		t.Error("evaluated attempt must reject edits")
	}

	if err := a.Reopen(); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := a.SetCode("second try"); err != nil {
		t.Fatalf("setCode after reopen: %v", err)
	}

	mock.Evaluation = &evaluator.Evaluation{Passed: true, Score: 100}
	result, err := a.Submit(context.Background())
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if !result.Passed {
		t.Error("expected pass on second submission")
	}
	if mock.EvaluateCount() != 2 {
		t.Errorf("evaluator calls = %d, want 2", mock.EvaluateCount())
	}
}

// blockingClient parks Evaluate until released, for exercising the busy
// guard.
type blockingClient struct {
	release <-chan struct{}
	entered chan<- struct{}
}

func (b *blockingClient) Evaluate(ctx context.Context, sub evaluator.Submission) (*evaluator.Evaluation, error) {
	b.entered <- struct{}{}
	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &evaluator.Evaluation{Passed: true, Score: 100}, nil
}

func (b *blockingClient) Hint(context.Context, evaluator.HintRequest) (string, error) {
	return "hint", nil
}

func (b *blockingClient) RunTests(context.Context, string, string) (*evaluator.TestRun, error) {
	return &evaluator.TestRun{AllPassed: true}, nil
}

func (b *blockingClient) SubmitQuiz(context.Context, evaluator.QuizAnswers) (*evaluator.QuizResult, error) {
	return &evaluator.QuizResult{}, nil
}
