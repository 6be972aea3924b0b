package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRemoteEvaluate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exercise/ex-1/evaluate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var sub Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if sub.Solution != "print('hi')" || sub.TimeSpentSeconds != 90 {
			t.Errorf("submission = %+v", sub)
		}
		json.NewEncoder(w).Encode(Evaluation{
			Passed:       true,
			Score:        95,
			Feedback:     "solid",
			PointsEarned: 100,
		})
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second)
	ev, err := c.Evaluate(context.Background(), Submission{
		ExerciseID:       "ex-1",
		Solution:         "print('hi')",
		Language:         "python",
		TimeSpentSeconds: 90,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ev.Passed || ev.Score != 95 {
		t.Errorf("evaluation = %+v", ev)
	}
	if ev.ExerciseID != "ex-1" {
		t.Errorf("exerciseID = %q, want filled in", ev.ExerciseID)
	}
}

func TestRemoteHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exercise/ex-1/hint" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body struct {
			CurrentCode string `json:"current_code"`
			Level       int    `json:"hint_level"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Level != 2 {
			t.Errorf("hint_level = %d, want 2", body.Level)
		}
		json.NewEncoder(w).Encode(map[string]any{"hint": "try a map", "level": 2})
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second)
	hint, err := c.Hint(context.Background(), HintRequest{
		ExerciseID:  "ex-1",
		CurrentCode: "x = 1",
		Level:       2,
	})
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if hint != "try a map" {
		t.Errorf("hint = %q", hint)
	}
}

func TestRemoteSubmitQuiz(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quiz/quiz-1/submit" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(QuizResult{Score: 80, Passed: true})
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second)
	res, err := c.SubmitQuiz(context.Background(), QuizAnswers{QuizID: "quiz-1"})
	if err != nil {
		t.Fatalf("submitQuiz: %v", err)
	}
	if res.Score != 80 || !res.Passed {
		t.Errorf("result = %+v", res)
	}
}

func TestRemoteRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second)
	_, err := c.Evaluate(context.Background(), Submission{ExerciseID: "ex-1"})

	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Errorf("retryAfter = %s, want 7s", rl.RetryAfter)
	}
}

func TestRemoteServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second)
	_, err := c.Evaluate(context.Background(), Submission{ExerciseID: "ex-1"})

	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestRemoteUnreachableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewRemoteClient(srv.URL, time.Second)
	_, err := c.Hint(context.Background(), HintRequest{ExerciseID: "ex-1", Level: 1})

	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestRemoteMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second)
	_, err := c.RunTests(context.Background(), "ex-1", "code")

	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestRemoteClientErrorIsNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such exercise", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second)
	_, err := c.Evaluate(context.Background(), Submission{ExerciseID: "nope"})
	if err == nil {
		t.Fatal("expected error")
	}

	var unavail *ErrUnavailable
	var rl *ErrRateLimit
	if errors.As(err, &unavail) || errors.As(err, &rl) {
		t.Errorf("404 mapped to transient error: %v", err)
	}
}
