// Package evaluator talks to the evaluation backend that grades
// exercise submissions, produces hints, and reconciles quiz scores.
// Three implementations exist: a remote HTTP client for a running
// backend, a local client that evaluates through an LLM provider, and a
// mock for tests and offline demos.
package evaluator

import "context"

// Submission is one exercise solution sent for evaluation.
type Submission struct {
	ExerciseID       string `json:"exercise_id"`
	Solution         string `json:"solution"`
	Language         string `json:"language,omitempty"`
	TimeSpentSeconds int    `json:"time_spent"`
}

// TestResult is the outcome of a single test case.
type TestResult struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Input    string `json:"input,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Evaluation is the graded outcome of a submission.
type Evaluation struct {
	ExerciseID   string       `json:"exercise_id"`
	Passed       bool         `json:"passed"`
	Score        int          `json:"score"`
	Feedback     string       `json:"feedback"`
	TestResults  []TestResult `json:"test_results,omitempty"`
	PointsEarned int          `json:"points_earned"`
}

// HintRequest asks for one hint at the given escalation level.
type HintRequest struct {
	ExerciseID  string `json:"-"`
	CurrentCode string `json:"current_code"`
	Level       int    `json:"hint_level"`
}

// TestRun is the outcome of running an exercise's test cases without
// submitting.
type TestRun struct {
	Results     []TestResult `json:"test_results"`
	AllPassed   bool         `json:"all_passed"`
	PassedCount int          `json:"passed_count"`
	TotalCount  int          `json:"total_count"`
}

// QuizAnswers is a scored quiz submission forwarded for reconciliation.
type QuizAnswers struct {
	QuizID           string         `json:"quiz_id"`
	Answers          map[string]any `json:"answers"`
	TimeSpentSeconds int            `json:"time_spent"`
}

// QuizResult is the backend's view of a quiz submission. Advisory: the
// locally computed score stays authoritative.
type QuizResult struct {
	Score    int               `json:"score"`
	Passed   bool              `json:"passed"`
	Feedback map[string]string `json:"feedback,omitempty"`
}

// Client is the evaluation backend interface.
type Client interface {
	// Evaluate grades an exercise submission.
	Evaluate(ctx context.Context, sub Submission) (*Evaluation, error)

	// Hint returns one hint for the exercise at the given level.
	Hint(ctx context.Context, req HintRequest) (string, error)

	// RunTests runs the exercise's test cases against the code without
	// recording a submission.
	RunTests(ctx context.Context, exerciseID, code string) (*TestRun, error)

	// SubmitQuiz forwards a quiz submission for server-side scoring.
	SubmitQuiz(ctx context.Context, sub QuizAnswers) (*QuizResult, error)
}
