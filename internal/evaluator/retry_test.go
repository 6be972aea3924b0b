package evaluator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

// flakyClient fails a fixed number of times before succeeding.
type flakyClient struct {
	mu       sync.Mutex
	failures int
	err      error
	calls    int
}

func (f *flakyClient) next() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return f.err
	}
	return nil
}

func (f *flakyClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *flakyClient) Evaluate(context.Context, Submission) (*Evaluation, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	return &Evaluation{Passed: true, Score: 100}, nil
}

func (f *flakyClient) Hint(context.Context, HintRequest) (string, error) {
	if err := f.next(); err != nil {
		return "", err
	}
	return "a hint", nil
}

func (f *flakyClient) RunTests(context.Context, string, string) (*TestRun, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	return &TestRun{AllPassed: true}, nil
}

func (f *flakyClient) SubmitQuiz(context.Context, QuizAnswers) (*QuizResult, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	return &QuizResult{}, nil
}

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	inner := &flakyClient{failures: 2, err: &ErrUnavailable{Err: errors.New("down")}}
	c := WithRetry(inner, fastRetry(3))

	ev, err := c.Evaluate(context.Background(), Submission{ExerciseID: "ex-1"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ev.Passed {
		t.Error("expected passing evaluation after retries")
	}
	if inner.callCount() != 3 {
		t.Errorf("calls = %d, want 3", inner.callCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flakyClient{failures: 10, err: &ErrUnavailable{Err: errors.New("down")}}
	c := WithRetry(inner, fastRetry(3))

	_, err := c.Hint(context.Background(), HintRequest{ExerciseID: "ex-1", Level: 1})

	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if inner.callCount() != 3 {
		t.Errorf("calls = %d, want 3", inner.callCount())
	}
}

func TestRetryDoesNotRetryPlainErrors(t *testing.T) {
	inner := &flakyClient{failures: 10, err: fmt.Errorf("no such exercise")}
	c := WithRetry(inner, fastRetry(3))

	if _, err := c.Evaluate(context.Background(), Submission{}); err == nil {
		t.Fatal("expected error")
	}
	if inner.callCount() != 1 {
		t.Errorf("calls = %d, want 1", inner.callCount())
	}
}

func TestRetryInvalidResponseOnce(t *testing.T) {
	inner := &flakyClient{failures: 10, err: &ErrInvalidResponse{Err: errors.New("bad json")}}
	c := WithRetry(inner, fastRetry(5))

	if _, err := c.RunTests(context.Background(), "ex-1", "code"); err == nil {
		t.Fatal("expected error")
	}
	// One original call plus exactly one retry.
	if inner.callCount() != 2 {
		t.Errorf("calls = %d, want 2", inner.callCount())
	}
}

func TestRetryZeroConfigStillCallsInner(t *testing.T) {
	inner := &flakyClient{}
	c := WithRetry(inner, RetryConfig{})

	ev, err := c.Evaluate(context.Background(), Submission{ExerciseID: "ex-1"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev == nil || !ev.Passed {
		t.Fatalf("evaluation = %+v, want a passing result", ev)
	}
	if inner.callCount() != 1 {
		t.Errorf("calls = %d, want 1", inner.callCount())
	}
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	inner := &flakyClient{failures: 10, err: &ErrUnavailable{Err: errors.New("down")}}
	c := WithRetry(inner, RetryConfig{
		MaxAttempts: 5,
		InitialWait: time.Hour, // would hang without cancellation
		MaxWait:     time.Hour,
		Multiplier:  2.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := c.Evaluate(ctx, Submission{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
