package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/skillforge/internal/llm"
)

func exerciseLookup(id string) (*ExerciseContext, bool) {
	if id != "ex-1" {
		return nil, false
	}
	return &ExerciseContext{
		Title:        "Reverse a string",
		Description:  "Return the input reversed",
		Instructions: []string{"Implement solve(s)"},
		Language:     "python",
		TestCases:    []TestCasePair{{Input: "abc", ExpectedOutput: "cba"}},
	}, true
}

func TestLocalEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"passed": true,
			"score": 90,
			"feedback": "Clean and correct.",
			"test_results": [{"name": "case 1", "passed": true}]
		}`),
	})
	c := NewLocalClient(mock, LocalConfig{Lookup: exerciseLookup})

	ev, err := c.Evaluate(context.Background(), Submission{
		ExerciseID: "ex-1",
		Solution:   "def solve(s): return s[::-1]",
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ev.Passed || ev.Score != 90 {
		t.Errorf("evaluation = %+v", ev)
	}
	if len(ev.TestResults) != 1 {
		t.Errorf("test results = %d, want 1", len(ev.TestResults))
	}

	// The prompt carries the exercise's requirements and the solution.
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "exercise-evaluation" {
		t.Errorf("schema = %+v", req.Schema)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"Reverse a string", "Implement solve(s)", "s[::-1]", "expected: cba"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestLocalHintCarriesLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint": "think about slicing"}`),
	})
	c := NewLocalClient(mock, LocalConfig{Lookup: exerciseLookup})

	hint, err := c.Hint(context.Background(), HintRequest{
		ExerciseID:  "ex-1",
		CurrentCode: "def solve(s): pass",
		Level:       2,
	})
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if hint != "think about slicing" {
		t.Errorf("hint = %q", hint)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Hint level requested: 2") {
		t.Errorf("prompt missing level: %s", prompt)
	}
}

func TestLocalRunTestsCounts(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"all_passed": false,
			"test_results": [
				{"name": "case 1", "passed": true},
				{"name": "case 2", "passed": false, "error": "wrong output"}
			]
		}`),
	})
	c := NewLocalClient(mock, LocalConfig{Lookup: exerciseLookup})

	run, err := c.RunTests(context.Background(), "ex-1", "code")
	if err != nil {
		t.Fatalf("runTests: %v", err)
	}
	if run.AllPassed {
		t.Error("expected failure")
	}
	if run.PassedCount != 1 || run.TotalCount != 2 {
		t.Errorf("counts = %d/%d, want 1/2", run.PassedCount, run.TotalCount)
	}
}

func TestLocalMapsProviderErrors(t *testing.T) {
	cases := []struct {
		name string
		give error
		want func(error) bool
	}{
		{
			"rate limit",
			&llm.ErrRateLimit{RetryAfter: 3 * time.Second},
			func(err error) bool {
				var rl *ErrRateLimit
				return errors.As(err, &rl) && rl.RetryAfter == 3*time.Second
			},
		},
		{
			"unavailable",
			&llm.ErrProviderUnavailable{},
			func(err error) bool {
				var u *ErrUnavailable
				return errors.As(err, &u)
			},
		},
		{
			"invalid response",
			&llm.ErrInvalidResponse{Content: json.RawMessage(`{}`)},
			func(err error) bool {
				var inv *ErrInvalidResponse
				return errors.As(err, &inv)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Err: tc.give})
			c := NewLocalClient(mock, LocalConfig{})

			_, err := c.Evaluate(context.Background(), Submission{ExerciseID: "ex-1", Solution: "x"})
			if err == nil || !tc.want(err) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestLocalSubmitQuizHasNoOpinion(t *testing.T) {
	c := NewLocalClient(llm.NewMockProvider(), LocalConfig{})
	res, err := c.SubmitQuiz(context.Background(), QuizAnswers{QuizID: "quiz-1"})
	if err != nil {
		t.Fatalf("submitQuiz: %v", err)
	}
	if res != nil {
		t.Errorf("result = %+v, want nil", res)
	}
}
