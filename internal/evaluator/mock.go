package evaluator

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a deterministic Client for tests and offline demos. It
// returns canned outcomes and records every call.
type MockClient struct {
	mu sync.Mutex

	// Canned outcomes. When an Err is set, the corresponding call
	// returns it instead.
	Evaluation  *Evaluation
	EvaluateErr error
	Hints       []string // indexed by level-1; levels past the end reuse the last
	HintErr     error
	TestRun     *TestRun
	RunTestsErr error
	QuizResult  *QuizResult
	QuizErr     error

	Evaluations []Submission
	HintCalls   []HintRequest
	TestCalls   []string
	QuizCalls   []QuizAnswers
}

// NewMockClient creates a MockClient whose evaluations pass with a
// perfect score.
func NewMockClient() *MockClient {
	return &MockClient{
		Evaluation: &Evaluation{
			Passed:   true,
			Score:    100,
			Feedback: "Excellent work! All tests passed.",
		},
		Hints: []string{
			"Read the instructions again and start small.",
			"Break the problem into steps and solve one at a time.",
			"Compare your output against the test cases one by one.",
		},
		TestRun: &TestRun{AllPassed: true, PassedCount: 1, TotalCount: 1},
	}
}

func (m *MockClient) Evaluate(_ context.Context, sub Submission) (*Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Evaluations = append(m.Evaluations, sub)
	if m.EvaluateErr != nil {
		return nil, m.EvaluateErr
	}
	out := *m.Evaluation
	out.ExerciseID = sub.ExerciseID
	return &out, nil
}

func (m *MockClient) Hint(_ context.Context, req HintRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HintCalls = append(m.HintCalls, req)
	if m.HintErr != nil {
		return "", m.HintErr
	}
	if len(m.Hints) == 0 {
		return fmt.Sprintf("hint level %d", req.Level), nil
	}
	i := req.Level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(m.Hints) {
		i = len(m.Hints) - 1
	}
	return m.Hints[i], nil
}

func (m *MockClient) RunTests(_ context.Context, exerciseID, code string) (*TestRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TestCalls = append(m.TestCalls, exerciseID)
	if m.RunTestsErr != nil {
		return nil, m.RunTestsErr
	}
	out := *m.TestRun
	return &out, nil
}

func (m *MockClient) SubmitQuiz(_ context.Context, sub QuizAnswers) (*QuizResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuizCalls = append(m.QuizCalls, sub)
	if m.QuizErr != nil {
		return nil, m.QuizErr
	}
	if m.QuizResult != nil {
		out := *m.QuizResult
		return &out, nil
	}
	return &QuizResult{}, nil
}

// EvaluateCount returns the number of Evaluate calls made.
func (m *MockClient) EvaluateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Evaluations)
}
