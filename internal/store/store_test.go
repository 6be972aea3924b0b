package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVRoundTrip(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	// Absent key reads as (nil, nil).
	v, err := kv.Get(ctx, "progress:path-1")
	if err != nil {
		t.Fatalf("get absent: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil for absent key, got %q", v)
	}

	if err := kv.Set(ctx, "progress:path-1", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err = kv.Get(ctx, "progress:path-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(v) != `{"a":1}` {
		t.Errorf("value = %q, want %q", v, `{"a":1}`)
	}

	// Set overwrites.
	if err := kv.Set(ctx, "progress:path-1", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _ = kv.Get(ctx, "progress:path-1")
	if string(v) != `{"a":2}` {
		t.Errorf("value after overwrite = %q, want %q", v, `{"a":2}`)
	}

	// Remove, then the key reads absent again.
	if err := kv.Remove(ctx, "progress:path-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	v, _ = kv.Get(ctx, "progress:path-1")
	if v != nil {
		t.Errorf("expected nil after remove, got %q", v)
	}

	// Removing again is fine.
	if err := kv.Remove(ctx, "progress:path-1"); err != nil {
		t.Errorf("remove absent: %v", err)
	}
}

func TestEventSequenceSpansTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendHintRequest(ctx, HintRequestEventData{
		AttemptID:  "attempt-1",
		ExerciseID: "ex-1",
		Level:      1,
		HintText:   "look at the loop bounds",
	})
	if err != nil {
		t.Fatalf("append hint: %v", err)
	}

	err = repo.AppendQuizSubmission(ctx, QuizSubmissionEventData{
		SessionID:      "session-1",
		QuizID:         "quiz-1",
		Score:          80,
		Passed:         true,
		TotalQuestions: 5,
	})
	if err != nil {
		t.Fatalf("append quiz: %v", err)
	}

	err = repo.AppendExerciseEvaluation(ctx, ExerciseEvaluationEventData{
		AttemptID:  "attempt-1",
		ExerciseID: "ex-1",
		Score:      90,
		Passed:     true,
		HintsUsed:  1,
	})
	if err != nil {
		t.Fatalf("append exercise: %v", err)
	}

	quizzes, err := repo.QuizSubmissions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query quizzes: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("quiz submissions = %d, want 1", len(quizzes))
	}
	exercises, err := repo.ExerciseEvaluations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query exercises: %v", err)
	}
	if len(exercises) != 1 {
		t.Fatalf("exercise evaluations = %d, want 1", len(exercises))
	}

	// The hint came first, the quiz second, the exercise third: the
	// shared counter orders them across tables.
	if quizzes[0].Sequence <= 1 {
		t.Errorf("quiz sequence = %d, want > 1", quizzes[0].Sequence)
	}
	if exercises[0].Sequence <= quizzes[0].Sequence {
		t.Errorf("exercise sequence %d not after quiz sequence %d",
			exercises[0].Sequence, quizzes[0].Sequence)
	}
}

func TestQuizSubmissionsQueryOpts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendQuizSubmission(ctx, QuizSubmissionEventData{
			SessionID: "session-1",
			QuizID:    "quiz-1",
			Score:     60 + i*10,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QuizSubmissions(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", got[0].Sequence, got[1].Sequence)
	}
	if got[0].Score != 100 {
		t.Errorf("newest score = %d, want 100", got[0].Score)
	}
}

func TestHintCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for level := 1; level <= 3; level++ {
		err := repo.AppendHintRequest(ctx, HintRequestEventData{
			AttemptID:  "attempt-1",
			ExerciseID: "ex-1",
			Level:      level,
		})
		if err != nil {
			t.Fatalf("append level %d: %v", level, err)
		}
	}
	err := repo.AppendHintRequest(ctx, HintRequestEventData{
		AttemptID:  "attempt-2",
		ExerciseID: "ex-2",
		Level:      1,
	})
	if err != nil {
		t.Fatalf("append ex-2 hint: %v", err)
	}

	n, err := repo.HintCount(ctx, "ex-1")
	if err != nil {
		t.Fatalf("count ex-1: %v", err)
	}
	if n != 3 {
		t.Errorf("ex-1 hints = %d, want 3", n)
	}

	n, err = repo.HintCount(ctx, "")
	if err != nil {
		t.Fatalf("count all: %v", err)
	}
	if n != 4 {
		t.Errorf("total hints = %d, want 4", n)
	}
}

func TestAppendEvaluatorRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	err := repo.AppendEvaluatorRequest(context.Background(), EvaluatorRequestEventData{
		Mode:      "remote",
		Operation: "evaluate",
		Target:    "http://localhost:8000",
		LatencyMs: 120,
		Success:   true,
	})
	if err != nil {
		t.Fatalf("append evaluator request: %v", err)
	}
}
