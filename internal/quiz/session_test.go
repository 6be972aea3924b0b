package quiz

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/skillforge/internal/progress"
	"github.com/abhisek/skillforge/internal/store"
)

// fakeEventRepo records appends in memory.
type fakeEventRepo struct {
	mu          sync.Mutex
	submissions []store.QuizSubmissionEventData
}

func (f *fakeEventRepo) AppendQuizSubmission(_ context.Context, data store.QuizSubmissionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, data)
	return nil
}

func (f *fakeEventRepo) AppendExerciseEvaluation(context.Context, store.ExerciseEvaluationEventData) error {
	return nil
}
func (f *fakeEventRepo) AppendHintRequest(context.Context, store.HintRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) AppendEvaluatorRequest(context.Context, store.EvaluatorRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) QuizSubmissions(context.Context, store.QueryOpts) ([]store.QuizSubmissionRecord, error) {
	return nil, nil
}
func (f *fakeEventRepo) ExerciseEvaluations(context.Context, store.QueryOpts) ([]store.ExerciseEvaluationRecord, error) {
	return nil, nil
}
func (f *fakeEventRepo) EvaluatorRequests(context.Context, store.QueryOpts) ([]store.EvaluatorRequestRecord, error) {
	return nil, nil
}
func (f *fakeEventRepo) HintCount(context.Context, string) (int, error) { return 0, nil }

func (f *fakeEventRepo) submissionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submissions)
}

type fakeReconciler struct {
	rc   *Reconciliation
	err  error
	done chan Submission
}

func (f *fakeReconciler) SubmitQuiz(_ context.Context, sub Submission) (*Reconciliation, error) {
	defer func() { f.done <- sub }()
	return f.rc, f.err
}

func TestSubmitPassWritesLedger(t *testing.T) {
	ledger := progress.NewStore(progress.NewMemoryKV())
	events := &fakeEventRepo{}
	s := NewSession(twoQuestionQuiz(), Config{
		PathID: "path-1",
		NodeID: "node-quiz",
		Ledger: ledger,
		Events: events,
	})

	s.RecordAnswer("q1", OptionAnswer(0))
	s.RecordAnswer("q2", BoolAnswer(true))
	if s.Status() != StatusInProgress {
		t.Fatal("answering every question must not submit")
	}

	result, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Percentage != 100 || !result.Passed {
		t.Fatalf("result = %+v, want 100%% pass", result)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("status = %s, want completed", s.Status())
	}

	rec, err := ledger.Get(context.Background(), "path-1")
	if err != nil {
		t.Fatalf("ledger get: %v", err)
	}
	if !rec.IsCompleted("node-quiz") {
		t.Error("expected node marked completed")
	}
	if rec.TotalPointsEarned != 25 {
		t.Errorf("points = %d, want 25", rec.TotalPointsEarned)
	}
	if !rec.HasBadge(progress.BadgePerfectQuiz) {
		t.Error("expected perfect-quiz badge for a 100")
	}
	if events.submissionCount() != 1 {
		t.Errorf("events = %d, want 1", events.submissionCount())
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	ledger := progress.NewStore(progress.NewMemoryKV())
	events := &fakeEventRepo{}
	s := NewSession(twoQuestionQuiz(), Config{
		PathID: "path-1",
		NodeID: "node-quiz",
		Ledger: ledger,
		Events: events,
	})
	s.RecordAnswer("q1", OptionAnswer(0))
	s.RecordAnswer("q2", BoolAnswer(true))

	first, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if first != second {
		t.Error("repeat submit must return the same result")
	}
	if events.submissionCount() != 1 {
		t.Errorf("events = %d, want 1", events.submissionCount())
	}

	rec, _ := ledger.Get(context.Background(), "path-1")
	if rec.TotalPointsEarned != 25 {
		t.Errorf("points after double submit = %d, want 25", rec.TotalPointsEarned)
	}
}

func TestFailedSubmitWritesNoCompletion(t *testing.T) {
	ledger := progress.NewStore(progress.NewMemoryKV())
	s := NewSession(twoQuestionQuiz(), Config{
		PathID: "path-1",
		NodeID: "node-quiz",
		Ledger: ledger,
	})
	s.RecordAnswer("q1", OptionAnswer(2))

	result, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Passed {
		t.Fatal("expected fail")
	}

	rec, _ := ledger.Get(context.Background(), "path-1")
	if len(rec.CompletedNodes) != 0 {
		t.Errorf("completed nodes = %v, want none on fail", rec.CompletedNodes)
	}
	if rec.TotalPointsEarned != 0 {
		t.Errorf("points = %d, want 0 on fail", rec.TotalPointsEarned)
	}
}

func TestExitWritesNothing(t *testing.T) {
	kv := progress.NewMemoryKV()
	ledger := progress.NewStore(kv)
	events := &fakeEventRepo{}
	s := NewSession(twoQuestionQuiz(), Config{
		PathID: "path-1",
		NodeID: "node-quiz",
		Ledger: ledger,
		Events: events,
	})
	s.RecordAnswer("q1", OptionAnswer(0))

	if err := s.Exit(); err != nil {
		t.Fatalf("exit: %v", err)
	}
	if s.Status() != StatusExited {
		t.Errorf("status = %s, want exited", s.Status())
	}

	// Exit is idempotent.
	if err := s.Exit(); err != nil {
		t.Errorf("second exit: %v", err)
	}

	if _, err := s.Submit(context.Background()); err != ErrSessionExited {
		t.Errorf("submit after exit: err = %v, want ErrSessionExited", err)
	}
	if events.submissionCount() != 0 {
		t.Errorf("events after exit = %d, want 0", events.submissionCount())
	}

	raw, _ := kv.Get(context.Background(), "progress:path-1")
	if raw != nil {
		t.Error("exit must not create a ledger record")
	}
}

func TestExitLosesToSubmission(t *testing.T) {
	s := NewSession(twoQuestionQuiz(), Config{})
	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.Exit(); err != ErrAlreadySubmitted {
		t.Errorf("exit after submit: err = %v, want ErrAlreadySubmitted", err)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("status = %s, want completed", s.Status())
	}
}

func TestRecordAnswerIgnoredAfterSubmit(t *testing.T) {
	s := NewSession(twoQuestionQuiz(), Config{})
	s.RecordAnswer("q1", OptionAnswer(0))
	s.Submit(context.Background())

	s.RecordAnswer("q2", BoolAnswer(true))
	if _, ok := s.Answer("q2"); ok {
		t.Error("answer recorded after submission")
	}
}

func TestNavigationClamps(t *testing.T) {
	s := NewSession(twoQuestionQuiz(), Config{})

	s.Prev()
	if s.CurrentIndex() != 0 {
		t.Errorf("index after Prev at start = %d, want 0", s.CurrentIndex())
	}
	s.Next()
	if s.CurrentIndex() != 1 {
		t.Errorf("index = %d, want 1", s.CurrentIndex())
	}
	s.Next()
	if s.CurrentIndex() != 1 {
		t.Errorf("index after Next at end = %d, want 1", s.CurrentIndex())
	}

	s.Goto(-3)
	if s.CurrentIndex() != 0 {
		t.Errorf("index after Goto(-3) = %d, want 0", s.CurrentIndex())
	}
	s.Goto(99)
	if s.CurrentIndex() != 1 {
		t.Errorf("index after Goto(99) = %d, want 1", s.CurrentIndex())
	}
}

func TestExpiryAutoSubmits(t *testing.T) {
	q := twoQuestionQuiz()
	q.TimeLimitMinutes = 1 // 60 fast ticks

	ledger := progress.NewStore(progress.NewMemoryKV())
	events := &fakeEventRepo{}
	done := make(chan ScoreResult, 1)
	s := NewSession(q, Config{
		PathID:       "path-1",
		NodeID:       "node-quiz",
		Ledger:       ledger,
		Events:       events,
		TickInterval: time.Millisecond,
		OnAutoSubmit: func(r ScoreResult) { done <- r },
	})
	s.RecordAnswer("q1", OptionAnswer(0))

	select {
	case result := <-done:
		if result.Percentage != 40 {
			t.Errorf("auto-submitted score = %d, want 40", result.Percentage)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("countdown never expired")
	}

	if s.Status() != StatusCompleted {
		t.Errorf("status = %s, want completed", s.Status())
	}
	if events.submissionCount() != 1 {
		t.Errorf("events = %d, want 1", events.submissionCount())
	}

	f := events.submissions[0]
	if !f.AutoSubmitted {
		t.Error("event not flagged auto-submitted")
	}
	if f.TimeSpentSeconds != 60 {
		t.Errorf("timeSpent = %d, want full limit 60", f.TimeSpentSeconds)
	}
}

func TestExpiryManualSubmitRace(t *testing.T) {
	// Run many short sessions with a manual submit racing the expiring
	// countdown. Exactly one submission must win each time.
	for i := 0; i < 20; i++ {
		q := twoQuestionQuiz()
		q.TimeLimitMinutes = 1

		events := &fakeEventRepo{}
		s := NewSession(q, Config{
			Events:       events,
			TickInterval: 50 * time.Microsecond,
		})
		s.RecordAnswer("q1", OptionAnswer(0))

		result, err := s.Submit(context.Background())
		if err != nil {
			t.Fatalf("round %d: submit: %v", i, err)
		}
		if result == nil {
			t.Fatalf("round %d: nil result", i)
		}

		// Let any straggling countdown goroutine run into the guard.
		time.Sleep(5 * time.Millisecond)
		if got := events.submissionCount(); got != 1 {
			t.Fatalf("round %d: events = %d, want exactly 1", i, got)
		}
		if again, _ := s.Submit(context.Background()); again != result {
			t.Fatalf("round %d: result changed after race", i)
		}
	}
}

func TestReconciliationIsAdvisory(t *testing.T) {
	rec := &fakeReconciler{
		rc:   &Reconciliation{Score: 55, Passed: false},
		done: make(chan Submission, 1),
	}
	s := NewSession(twoQuestionQuiz(), Config{Reconciler: rec})
	s.RecordAnswer("q1", OptionAnswer(0))
	s.RecordAnswer("q2", BoolAnswer(true))

	result, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	select {
	case sub := <-rec.done:
		if sub.QuizID != "quiz-1" || len(sub.Answers) != 2 {
			t.Errorf("reconciler saw %+v", sub)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("reconciler never called")
	}

	// The disagreeing remote score never replaces the local one.
	if result.Percentage != 100 || !result.Passed {
		t.Errorf("local result = %+v, want 100%% pass", result)
	}

	deadline := time.After(5 * time.Second)
	for s.RemoteResult() == nil {
		select {
		case <-deadline:
			t.Fatal("remote result never stored")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if got := s.RemoteResult(); got.Score != 55 {
		t.Errorf("remote score = %d, want 55", got.Score)
	}
}
