package quiz

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skillforge/internal/progress"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/timer"
)

// Status is the lifecycle state of a quiz session.
type Status string

const (
	// StatusInProgress accepts answers and navigation.
	StatusInProgress Status = "in_progress"
	// StatusSubmitting is the transient state while scoring and ledger
	// writes run. Only one caller ever enters it.
	StatusSubmitting Status = "submitting"
	// StatusCompleted holds the final result. Terminal.
	StatusCompleted Status = "completed"
	// StatusExited means the learner abandoned the quiz. Terminal, no
	// ledger write happened.
	StatusExited Status = "exited"
)

// ErrSessionExited is returned by Submit after the learner has exited.
var ErrSessionExited = fmt.Errorf("quiz session exited")

// ErrAlreadySubmitted is returned by Exit once a submission has won.
var ErrAlreadySubmitted = fmt.Errorf("quiz already submitted")

// Reconciliation is the remote evaluator's advisory view of a
// submission. The local score stays authoritative; a disagreement is
// logged, never applied.
type Reconciliation struct {
	Score    int               `json:"score"`
	Passed   bool              `json:"passed"`
	Feedback map[string]string `json:"feedback,omitempty"`
}

// Reconciler sends a completed submission to the remote evaluator.
type Reconciler interface {
	SubmitQuiz(ctx context.Context, sub Submission) (*Reconciliation, error)
}

// Config wires a session to the ledger, event log, and evaluator. Any
// field may be left zero; the session then runs standalone.
type Config struct {
	PathID     string
	NodeID     string
	TotalNodes int

	Ledger     *progress.Store
	Events     store.EventRepo
	Reconciler Reconciler

	// OnTick is called once per second with the remaining seconds.
	OnTick func(remaining int)
	// OnAutoSubmit is called after a timer-driven submission completes.
	OnAutoSubmit func(ScoreResult)

	// Clock overrides time.Now in tests.
	Clock func() time.Time
	// TickInterval overrides the one-second countdown tick in tests.
	TickInterval time.Duration
}

// Session drives one quiz attempt from first question to submission.
// All methods are safe for concurrent use; the manual-submit versus
// timer-expiry race is resolved by the status guard, so exactly one
// submission is ever scored and written.
type Session struct {
	mu   sync.Mutex
	id   string
	quiz *Quiz
	cfg  Config

	status    Status
	answers   map[string]Answer
	current   int
	remaining int
	startedAt time.Time

	countdown *timer.Timer

	submission *Submission
	result     *ScoreResult
	remote     *Reconciliation
}

// NewSession starts a session over the quiz. If the quiz carries a time
// limit the countdown starts immediately and expiry submits whatever
// answers have been recorded.
func NewSession(q *Quiz, cfg Config) *Session {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	countdown := timer.New()
	if cfg.TickInterval > 0 {
		countdown = timer.NewWithInterval(cfg.TickInterval)
	}
	s := &Session{
		id:        uuid.NewString(),
		quiz:      q,
		cfg:       cfg,
		status:    StatusInProgress,
		answers:   make(map[string]Answer),
		remaining: q.TimeLimitSeconds(),
		startedAt: cfg.Clock(),
		countdown: countdown,
	}
	if limit := q.TimeLimitSeconds(); limit > 0 {
		s.countdown.Start(limit, s.tick, s.expire)
	}
	return s
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Quiz returns the quiz under assessment.
func (s *Session) Quiz() *Quiz { return s.quiz }

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// CurrentIndex returns the index of the question being displayed.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Next advances to the next question, clamped at the last one.
func (s *Session) Next() { s.goTo(+1) }

// Prev moves back one question, clamped at the first.
func (s *Session) Prev() { s.goTo(-1) }

// Goto jumps to the question at index, clamped to the valid range.
// Like navigation, it does not require the current question answered.
func (s *Session) Goto(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress || len(s.quiz.Questions) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.quiz.Questions)-1 {
		index = len(s.quiz.Questions) - 1
	}
	s.current = index
}

func (s *Session) goTo(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress {
		return
	}
	next := s.current + delta
	if next < 0 || next >= len(s.quiz.Questions) {
		return
	}
	s.current = next
}

// RecordAnswer stores or overwrites the answer for a question. Outside
// InProgress it is a silent no-op: a keystroke racing a submission must
// not corrupt the captured answer set.
func (s *Session) RecordAnswer(questionID string, a Answer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress {
		return
	}
	if s.quiz.QuestionByID(questionID) == nil {
		return
	}
	s.answers[questionID] = a
}

// Answer returns the recorded answer for a question, if any.
func (s *Session) Answer(questionID string) (Answer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.answers[questionID]
	return a, ok
}

// AnsweredCount returns how many questions have a recorded answer.
// Answering every question does not submit; only Submit or expiry does.
func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Result returns the final score once the session has completed.
func (s *Session) Result() *ScoreResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// RemoteResult returns the evaluator's advisory reconciliation, if it
// has arrived. Nil until then.
func (s *Session) RemoteResult() *Reconciliation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remote
}

// Submit scores the recorded answers and writes the outcome to the
// ledger. Idempotent: repeat calls return the same result without
// scoring or writing again. After Exit it returns ErrSessionExited.
func (s *Session) Submit(ctx context.Context) (*ScoreResult, error) {
	return s.submit(ctx, false)
}

// Exit abandons the session without scoring. Nothing is written to the
// ledger. Exit loses to a submission that has already started.
func (s *Session) Exit() error {
	s.mu.Lock()
	switch s.status {
	case StatusExited:
		s.mu.Unlock()
		return nil
	case StatusSubmitting, StatusCompleted:
		s.mu.Unlock()
		return ErrAlreadySubmitted
	}
	s.status = StatusExited
	s.mu.Unlock()

	s.countdown.Cancel()
	return nil
}

// tick runs on the countdown goroutine once per second.
func (s *Session) tick(remaining int) {
	s.mu.Lock()
	if s.status != StatusInProgress {
		s.mu.Unlock()
		return
	}
	s.remaining = remaining
	s.mu.Unlock()

	if s.cfg.OnTick != nil {
		s.cfg.OnTick(remaining)
	}
}

// expire runs on the countdown goroutine when time runs out.
func (s *Session) expire() {
	result, err := s.submit(context.Background(), true)
	if err != nil || result == nil {
		return
	}
	if s.cfg.OnAutoSubmit != nil {
		s.cfg.OnAutoSubmit(*result)
	}
}

// submit performs the single InProgress -> Submitting -> Completed
// transition. The countdown is cancelled outside the session lock; a
// callback firing in that window hits the status guard and does nothing.
func (s *Session) submit(ctx context.Context, fromTimer bool) (*ScoreResult, error) {
	s.mu.Lock()
	switch s.status {
	case StatusCompleted:
		r := s.result
		s.mu.Unlock()
		return r, nil
	case StatusExited:
		s.mu.Unlock()
		if fromTimer {
			return nil, nil
		}
		return nil, ErrSessionExited
	case StatusSubmitting:
		// Unreachable from outside: the state is only held while this
		// lock is held. Kept for completeness.
		s.mu.Unlock()
		return nil, nil
	}

	s.status = StatusSubmitting
	s.remaining = 0

	answers := make(map[string]Answer, len(s.answers))
	for id, a := range s.answers {
		answers[id] = a
	}
	sub := &Submission{
		QuizID:           s.quiz.ID,
		Answers:          answers,
		TimeSpentSeconds: s.timeSpentLocked(fromTimer),
	}
	result := Score(s.quiz, sub.Answers)

	s.submission = sub
	s.result = &result
	s.status = StatusCompleted
	s.mu.Unlock()

	if !fromTimer {
		s.countdown.Cancel()
	}

	s.recordOutcome(ctx, sub, result, fromTimer)
	s.reconcile(sub, result)

	return &result, nil
}

func (s *Session) timeSpentLocked(expired bool) int {
	limit := s.quiz.TimeLimitSeconds()
	if expired {
		return limit
	}
	elapsed := int(s.cfg.Clock().Sub(s.startedAt).Seconds())
	if limit > 0 && elapsed > limit {
		return limit
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// recordOutcome performs the ledger writes and event append for the
// winning submission. Exactly one caller ever reaches it.
func (s *Session) recordOutcome(ctx context.Context, sub *Submission, result ScoreResult, expired bool) {
	if s.cfg.Ledger != nil && s.cfg.PathID != "" {
		ledger := s.cfg.Ledger
		if err := ledger.AddTimeSpent(ctx, s.cfg.PathID, float64(sub.TimeSpentSeconds)/3600); err != nil {
			fmt.Fprintf(os.Stderr, "warning: record quiz time: %v\n", err)
		}
		if result.Passed && s.cfg.NodeID != "" {
			if _, err := ledger.MarkCompleted(ctx, s.cfg.PathID, s.cfg.NodeID, result.PointsEarned); err != nil {
				fmt.Fprintf(os.Stderr, "warning: record quiz completion: %v\n", err)
			}
			for _, badge := range progress.BadgesForQuiz(result.Percentage) {
				if err := ledger.AddBadge(ctx, s.cfg.PathID, badge); err != nil {
					fmt.Fprintf(os.Stderr, "warning: award badge %s: %v\n", badge, err)
				}
			}
			if s.cfg.TotalNodes > 0 {
				if _, err := ledger.RecomputeOverallProgress(ctx, s.cfg.PathID, s.cfg.TotalNodes); err != nil {
					fmt.Fprintf(os.Stderr, "warning: recompute progress: %v\n", err)
				}
			}
		}
	}

	if s.cfg.Events != nil {
		err := s.cfg.Events.AppendQuizSubmission(ctx, store.QuizSubmissionEventData{
			SessionID:        s.id,
			QuizID:           s.quiz.ID,
			PathID:           s.cfg.PathID,
			Score:            result.Percentage,
			Passed:           result.Passed,
			CorrectCount:     result.CorrectCount,
			TotalQuestions:   result.TotalQuestions,
			PointsEarned:     result.PointsEarned,
			TimeSpentSeconds: sub.TimeSpentSeconds,
			AutoSubmitted:    expired,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: append quiz event: %v\n", err)
		}
	}
}

// reconcile forwards the submission to the remote evaluator in the
// background. The response is advisory: it is stored for display but
// never changes the local score.
func (s *Session) reconcile(sub *Submission, local ScoreResult) {
	if s.cfg.Reconciler == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		rc, err := s.cfg.Reconciler.SubmitQuiz(ctx, *sub)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: quiz reconciliation failed: %v\n", err)
			return
		}
		if rc == nil {
			return
		}
		if rc.Score != local.Percentage {
			fmt.Fprintf(os.Stderr, "warning: evaluator scored %d, local score %d kept\n", rc.Score, local.Percentage)
		}

		s.mu.Lock()
		s.remote = rc
		s.mu.Unlock()
	}()
}
