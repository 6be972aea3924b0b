package evaluator

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the standard backoff settings.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryClient is a decorator that retries transient evaluator errors
// with exponential backoff and jitter.
type RetryClient struct {
	inner  Client
	config RetryConfig
}

// WithRetry wraps a Client with retry logic. A config without a
// positive MaxAttempts falls back to the default backoff settings, so a
// zero value never short-circuits the inner client.
func WithRetry(c Client, cfg RetryConfig) Client {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig()
	}
	return &RetryClient{inner: c, config: cfg}
}

func (r *RetryClient) Evaluate(ctx context.Context, sub Submission) (*Evaluation, error) {
	var out *Evaluation
	err := r.do(ctx, func(ctx context.Context) error {
		v, err := r.inner.Evaluate(ctx, sub)
		out = v
		return err
	})
	return out, err
}

func (r *RetryClient) Hint(ctx context.Context, req HintRequest) (string, error) {
	var out string
	err := r.do(ctx, func(ctx context.Context) error {
		v, err := r.inner.Hint(ctx, req)
		out = v
		return err
	})
	return out, err
}

func (r *RetryClient) RunTests(ctx context.Context, exerciseID, code string) (*TestRun, error) {
	var out *TestRun
	err := r.do(ctx, func(ctx context.Context) error {
		v, err := r.inner.RunTests(ctx, exerciseID, code)
		out = v
		return err
	})
	return out, err
}

func (r *RetryClient) SubmitQuiz(ctx context.Context, sub QuizAnswers) (*QuizResult, error) {
	var out *QuizResult
	err := r.do(ctx, func(ctx context.Context) error {
		v, err := r.inner.SubmitQuiz(ctx, sub)
		out = v
		return err
	})
	return out, err
}

// do runs one operation through the retry loop.
func (r *RetryClient) do(ctx context.Context, op func(context.Context) error) error {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !r.shouldRetry(err, &invalidRetried) {
			return err
		}

		// Last attempt: return the error without sleeping.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return lastErr
}

// shouldRetry determines if an error is retryable.
func (r *RetryClient) shouldRetry(err error, invalidRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A malformed body gets one retry.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limits and outages are retryable.
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	// Other errors (validation, bad request) are not transient.
	return false
}

// backoff computes the wait duration for the given attempt.
func (r *RetryClient) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
