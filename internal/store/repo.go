package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// QuizSubmissionEventData captures the outcome of one quiz submission.
type QuizSubmissionEventData struct {
	SessionID        string
	QuizID           string
	PathID           string
	Score            int
	Passed           bool
	CorrectCount     int
	TotalQuestions   int
	PointsEarned     int
	TimeSpentSeconds int
	AutoSubmitted    bool
}

// ExerciseEvaluationEventData captures the outcome of one exercise
// submission. SolutionChars records the size of the solution, not its
// text; the solution itself never enters the event log.
type ExerciseEvaluationEventData struct {
	AttemptID        string
	ExerciseID       string
	PathID           string
	Score            int
	Passed           bool
	HintsUsed        int
	SolutionChars    int
	TimeSpentSeconds int
}

// HintRequestEventData captures one hint fetch.
type HintRequestEventData struct {
	AttemptID  string
	ExerciseID string
	Level      int
	HintText   string
}

// EvaluatorRequestEventData captures one call to the evaluator backend.
type EvaluatorRequestEventData struct {
	Mode         string
	Operation    string
	Target       string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// QuizSubmissionRecord is a logged quiz submission read back from the
// event log, with its position in the global history.
type QuizSubmissionRecord struct {
	Sequence  int64
	Timestamp time.Time
	QuizSubmissionEventData
}

// ExerciseEvaluationRecord is a logged exercise evaluation read back
// from the event log.
type ExerciseEvaluationRecord struct {
	Sequence  int64
	Timestamp time.Time
	ExerciseEvaluationEventData
}

// EvaluatorRequestRecord is a logged evaluator backend call read back
// from the event log.
type EvaluatorRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	EvaluatorRequestEventData
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendQuizSubmission records a scored quiz submission.
	AppendQuizSubmission(ctx context.Context, data QuizSubmissionEventData) error

	// AppendExerciseEvaluation records an evaluated exercise submission.
	AppendExerciseEvaluation(ctx context.Context, data ExerciseEvaluationEventData) error

	// AppendHintRequest records a hint shown to the learner.
	AppendHintRequest(ctx context.Context, data HintRequestEventData) error

	// AppendEvaluatorRequest records an evaluator backend call.
	AppendEvaluatorRequest(ctx context.Context, data EvaluatorRequestEventData) error

	// QuizSubmissions returns logged quiz submissions, newest first.
	QuizSubmissions(ctx context.Context, opts QueryOpts) ([]QuizSubmissionRecord, error)

	// ExerciseEvaluations returns logged exercise evaluations, newest first.
	ExerciseEvaluations(ctx context.Context, opts QueryOpts) ([]ExerciseEvaluationRecord, error)

	// EvaluatorRequests returns logged evaluator backend calls, newest first.
	EvaluatorRequests(ctx context.Context, opts QueryOpts) ([]EvaluatorRequestRecord, error)

	// HintCount returns the number of hints ever shown for an exercise,
	// or across all exercises when exerciseID is empty.
	HintCount(ctx context.Context, exerciseID string) (int, error)
}
