package exercise

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/progress"
	"github.com/abhisek/skillforge/internal/store"
)

// Status is the lifecycle state of an exercise attempt.
type Status string

const (
	// StatusDraft accepts edits, test runs, and hints.
	StatusDraft Status = "draft"
	// StatusRunning is the transient state while a test run is in
	// flight. It always returns to Draft.
	StatusRunning Status = "running"
	// StatusSubmitting is the transient state while the evaluator
	// grades a submission.
	StatusSubmitting Status = "submitting"
	// StatusEvaluated holds a completed evaluation. Reopen returns to
	// Draft for another try.
	StatusEvaluated Status = "evaluated"
)

// ErrEmptySubmission is returned when the solution is blank. Checked
// locally; no evaluator call is made.
var ErrEmptySubmission = errors.New("submission is empty")

// ErrAttemptBusy is returned when an operation arrives while a test run
// or submission is in flight.
var ErrAttemptBusy = errors.New("attempt is busy")

// ErrEvaluationUnavailable wraps evaluator failures. The attempt is
// back in Draft and the solution is untouched; the learner can retry.
var ErrEvaluationUnavailable = errors.New("evaluation unavailable")

// Config wires an attempt to the evaluator, ledger, and event log.
type Config struct {
	PathID     string
	NodeID     string
	TotalNodes int

	Evaluator evaluator.Client
	Ledger    *progress.Store
	Events    store.EventRepo

	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

// Attempt drives one exercise attempt: editing, test runs, the hint
// ladder, and submission. All methods are safe for concurrent use.
type Attempt struct {
	mu  sync.Mutex
	id  string
	ex  *Exercise
	cfg Config

	status    Status
	code      string
	hints     HintLadder
	result    *evaluator.Evaluation
	startedAt time.Time
}

// NewAttempt starts a fresh attempt seeded with the starter code.
func NewAttempt(ex *Exercise, cfg Config) *Attempt {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Attempt{
		id:        uuid.NewString(),
		ex:        ex,
		cfg:       cfg,
		status:    StatusDraft,
		code:      ex.StarterCode,
		startedAt: cfg.Clock(),
	}
}

// ID returns the attempt's unique id.
func (a *Attempt) ID() string { return a.id }

// Exercise returns the exercise under attempt.
func (a *Attempt) Exercise() *Exercise { return a.ex }

// Status returns the current lifecycle state.
func (a *Attempt) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Code returns the current solution text.
func (a *Attempt) Code() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.code
}

// SetCode replaces the solution text. Only a Draft accepts edits.
func (a *Attempt) SetCode(code string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch a.status {
	case StatusRunning, StatusSubmitting:
		return ErrAttemptBusy
	case StatusEvaluated:
		return fmt.Errorf("attempt already evaluated")
	}
	a.code = code
	return nil
}

// Result returns the evaluation once the attempt has been graded.
func (a *Attempt) Result() *evaluator.Evaluation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

// HintLevel returns the current hint escalation level.
func (a *Attempt) HintLevel() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hints.Level()
}

// HintsShown returns the hints shown so far, in escalation order.
func (a *Attempt) HintsShown() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hints.All()
}

// RequestHint escalates the hint ladder by one level and fetches that
// level's hint. Each level is fetched exactly once; at the cap the last
// hint is replayed with no evaluator call. A fetch failure leaves the
// level unchanged so the same level can be retried.
func (a *Attempt) RequestHint(ctx context.Context) (string, error) {
	a.mu.Lock()
	if a.status == StatusRunning || a.status == StatusSubmitting {
		a.mu.Unlock()
		return "", ErrAttemptBusy
	}
	if a.hints.AtCap() {
		last := a.hints.Last()
		a.mu.Unlock()
		return last, nil
	}
	level := a.hints.NextLevel()
	code := a.code
	a.mu.Unlock()

	hint, err := a.cfg.Evaluator.Hint(ctx, evaluator.HintRequest{
		ExerciseID:  a.ex.ID,
		CurrentCode: code,
		Level:       level,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEvaluationUnavailable, err)
	}

	a.mu.Lock()
	// Serialized callers may have advanced the ladder meanwhile; only
	// record if this fetch is still the next level.
	if a.hints.NextLevel() == level {
		a.hints.Record(hint)
	}
	a.mu.Unlock()

	if a.cfg.Events != nil {
		err := a.cfg.Events.AppendHintRequest(ctx, store.HintRequestEventData{
			AttemptID:  a.id,
			ExerciseID: a.ex.ID,
			Level:      level,
			HintText:   hint,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: append hint event: %v\n", err)
		}
	}

	return hint, nil
}

// RunTests runs the exercise's test cases against the current solution
// without submitting. The attempt is back in Draft when it returns.
func (a *Attempt) RunTests(ctx context.Context) (*evaluator.TestRun, error) {
	a.mu.Lock()
	if a.status != StatusDraft {
		a.mu.Unlock()
		return nil, ErrAttemptBusy
	}
	code := a.code
	if strings.TrimSpace(code) == "" {
		a.mu.Unlock()
		return nil, ErrEmptySubmission
	}
	a.status = StatusRunning
	a.mu.Unlock()

	run, err := a.cfg.Evaluator.RunTests(ctx, a.ex.ID, code)

	a.mu.Lock()
	a.status = StatusDraft
	a.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEvaluationUnavailable, err)
	}
	return run, nil
}

// Submit sends the solution for grading. A blank solution fails locally
// with ErrEmptySubmission before any network call. If the evaluator
// fails, the attempt returns to Draft with the solution intact. On
// success the attempt is Evaluated; a passing grade writes the ledger
// exactly once.
func (a *Attempt) Submit(ctx context.Context) (*evaluator.Evaluation, error) {
	a.mu.Lock()
	switch a.status {
	case StatusRunning, StatusSubmitting:
		a.mu.Unlock()
		return nil, ErrAttemptBusy
	case StatusEvaluated:
		r := a.result
		a.mu.Unlock()
		return r, nil
	}
	code := a.code
	if strings.TrimSpace(code) == "" {
		a.mu.Unlock()
		return nil, ErrEmptySubmission
	}
	a.status = StatusSubmitting
	timeSpent := int(a.cfg.Clock().Sub(a.startedAt).Seconds())
	hintsUsed := a.hints.Used()
	a.mu.Unlock()

	result, err := a.cfg.Evaluator.Evaluate(ctx, evaluator.Submission{
		ExerciseID:       a.ex.ID,
		Solution:         code,
		Language:         a.ex.Language,
		TimeSpentSeconds: timeSpent,
	})
	if err != nil {
		a.mu.Lock()
		a.status = StatusDraft
		a.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrEvaluationUnavailable, err)
	}

	a.mu.Lock()
	a.status = StatusEvaluated
	a.result = result
	a.mu.Unlock()

	a.recordOutcome(ctx, result, code, hintsUsed, timeSpent)
	return result, nil
}

// Reopen returns an evaluated attempt to Draft for another try. The
// solution and hint ladder carry over; the prior result is kept until
// the next submission replaces it.
func (a *Attempt) Reopen() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != StatusEvaluated {
		return fmt.Errorf("attempt not evaluated")
	}
	a.status = StatusDraft
	return nil
}

// recordOutcome performs the ledger writes and event append for a
// completed evaluation.
func (a *Attempt) recordOutcome(ctx context.Context, result *evaluator.Evaluation, code string, hintsUsed, timeSpent int) {
	if a.cfg.Ledger != nil && a.cfg.PathID != "" {
		ledger := a.cfg.Ledger
		if err := ledger.AddTimeSpent(ctx, a.cfg.PathID, float64(timeSpent)/3600); err != nil {
			fmt.Fprintf(os.Stderr, "warning: record exercise time: %v\n", err)
		}
		if result.Passed && a.cfg.NodeID != "" {
			points := result.PointsEarned
			if points == 0 {
				points = a.ex.Points
			}
			if _, err := ledger.MarkCompleted(ctx, a.cfg.PathID, a.cfg.NodeID, points); err != nil {
				fmt.Fprintf(os.Stderr, "warning: record exercise completion: %v\n", err)
			}
			for _, badge := range progress.BadgesForExercise(result.Score, hintsUsed) {
				if err := ledger.AddBadge(ctx, a.cfg.PathID, badge); err != nil {
					fmt.Fprintf(os.Stderr, "warning: award badge %s: %v\n", badge, err)
				}
			}
			if a.cfg.TotalNodes > 0 {
				if _, err := ledger.RecomputeOverallProgress(ctx, a.cfg.PathID, a.cfg.TotalNodes); err != nil {
					fmt.Fprintf(os.Stderr, "warning: recompute progress: %v\n", err)
				}
			}
		}
	}

	if a.cfg.Events != nil {
		err := a.cfg.Events.AppendExerciseEvaluation(ctx, store.ExerciseEvaluationEventData{
			AttemptID:        a.id,
			ExerciseID:       a.ex.ID,
			PathID:           a.cfg.PathID,
			Score:            result.Score,
			Passed:           result.Passed,
			HintsUsed:        hintsUsed,
			SolutionChars:    len(code),
			TimeSpentSeconds: timeSpent,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: append exercise event: %v\n", err)
		}
	}
}
