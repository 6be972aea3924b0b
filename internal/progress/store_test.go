package progress

import (
	"context"
	"testing"
)

func testStore() *Store {
	return NewStore(NewMemoryKV())
}

func TestLazyInitOnFirstAccess(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	rec, err := s.Get(ctx, "path-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.PathID != "path-1" {
		t.Errorf("PathID = %q, want %q", rec.PathID, "path-1")
	}
	if len(rec.CompletedNodes) != 0 || rec.TotalPointsEarned != 0 {
		t.Errorf("expected empty record, got %+v", rec)
	}
}

func TestMarkCompletedAddsPointsOnce(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	rec, err := s.MarkCompleted(ctx, "path-1", "node-a", 50)
	if err != nil {
		t.Fatalf("first markCompleted: %v", err)
	}
	if rec.TotalPointsEarned != 50 {
		t.Errorf("points = %d, want 50", rec.TotalPointsEarned)
	}

	// Same node again: membership and points must not change.
	rec, err = s.MarkCompleted(ctx, "path-1", "node-a", 50)
	if err != nil {
		t.Fatalf("second markCompleted: %v", err)
	}
	if rec.TotalPointsEarned != 50 {
		t.Errorf("points after duplicate = %d, want 50", rec.TotalPointsEarned)
	}
	count := 0
	for _, id := range rec.CompletedNodes {
		if id == "node-a" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("node-a appears %d times, want 1", count)
	}
}

func TestMarkCompletedAwardsFirstStepsBadge(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	rec, err := s.MarkCompleted(ctx, "path-1", "node-a", 10)
	if err != nil {
		t.Fatalf("markCompleted: %v", err)
	}
	if !rec.HasBadge(BadgeFirstSteps) {
		t.Error("expected first-steps badge on first completion")
	}

	rec, err = s.MarkCompleted(ctx, "path-1", "node-b", 10)
	if err != nil {
		t.Fatalf("markCompleted: %v", err)
	}
	badges := 0
	for _, b := range rec.BadgesEarned {
		if b == BadgeFirstSteps {
			badges++
		}
	}
	if badges != 1 {
		t.Errorf("first-steps awarded %d times, want 1", badges)
	}
}

func TestSetCurrentNodeOverwrites(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	if err := s.SetCurrentNode(ctx, "path-1", "node-a"); err != nil {
		t.Fatalf("setCurrentNode: %v", err)
	}
	if err := s.SetCurrentNode(ctx, "path-1", "node-b"); err != nil {
		t.Fatalf("setCurrentNode: %v", err)
	}

	rec, err := s.Get(ctx, "path-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.CurrentNodeID != "node-b" {
		t.Errorf("CurrentNodeID = %q, want %q", rec.CurrentNodeID, "node-b")
	}
}

func TestAddBadgeIsIdempotent(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.AddBadge(ctx, "path-1", BadgePerfectQuiz); err != nil {
			t.Fatalf("addBadge: %v", err)
		}
	}

	rec, _ := s.Get(ctx, "path-1")
	if len(rec.BadgesEarned) != 1 {
		t.Errorf("badges = %v, want exactly one", rec.BadgesEarned)
	}
}

func TestRecomputeOverallProgress(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	s.MarkCompleted(ctx, "path-1", "node-a", 0)
	s.MarkCompleted(ctx, "path-1", "node-b", 0)

	rec, err := s.RecomputeOverallProgress(ctx, "path-1", 3)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if rec.OverallProgress != 67 {
		t.Errorf("overallProgress = %d, want 67", rec.OverallProgress)
	}
}

func TestRecomputeOverallProgressZeroNodes(t *testing.T) {
	s := testStore()

	rec, err := s.RecomputeOverallProgress(context.Background(), "path-1", 0)
	if err != nil {
		t.Fatalf("recompute with zero nodes: %v", err)
	}
	if rec.OverallProgress != 0 {
		t.Errorf("overallProgress = %d, want 0", rec.OverallProgress)
	}
}

func TestRecomputeAwardsPathCompleteBadge(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	s.MarkCompleted(ctx, "path-1", "node-a", 0)
	rec, err := s.RecomputeOverallProgress(ctx, "path-1", 1)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if !rec.HasBadge(BadgePathComplete) {
		t.Error("expected path-complete badge at 100%")
	}
}

func TestResetClearsRecord(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	s.MarkCompleted(ctx, "path-1", "node-a", 25)
	if err := s.Reset(ctx, "path-1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	rec, err := s.Get(ctx, "path-1")
	if err != nil {
		t.Fatalf("get after reset: %v", err)
	}
	if len(rec.CompletedNodes) != 0 || rec.TotalPointsEarned != 0 || len(rec.BadgesEarned) != 0 {
		t.Errorf("expected empty record after reset, got %+v", rec)
	}
}

func TestCorruptRecordReinitializes(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	kv.Set(ctx, "progress:path-1", []byte("{not json"))

	s := NewStore(kv)
	rec, err := s.Get(ctx, "path-1")
	if err != nil {
		t.Fatalf("get with corrupt record: %v", err)
	}
	if rec.TotalPointsEarned != 0 || len(rec.CompletedNodes) != 0 {
		t.Errorf("expected reinitialized record, got %+v", rec)
	}

	// Writes proceed normally afterwards.
	rec, err = s.MarkCompleted(ctx, "path-1", "node-a", 10)
	if err != nil {
		t.Fatalf("markCompleted after corruption: %v", err)
	}
	if rec.TotalPointsEarned != 10 {
		t.Errorf("points = %d, want 10", rec.TotalPointsEarned)
	}
}

func TestDurableAcrossStoreInstances(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	first := NewStore(kv)
	first.MarkCompleted(ctx, "path-1", "node-a", 40)

	second := NewStore(kv)
	rec, err := second.Get(ctx, "path-1")
	if err != nil {
		t.Fatalf("get from second store: %v", err)
	}
	if rec.TotalPointsEarned != 40 {
		t.Errorf("points = %d, want 40", rec.TotalPointsEarned)
	}
	if !rec.IsCompleted("node-a") {
		t.Error("expected node-a completed in second store")
	}
}

func TestBadgeRules(t *testing.T) {
	if got := BadgesForQuiz(100); len(got) != 1 || got[0] != BadgePerfectQuiz {
		t.Errorf("BadgesForQuiz(100) = %v", got)
	}
	if got := BadgesForQuiz(85); got != nil {
		t.Errorf("BadgesForQuiz(85) = %v, want nil", got)
	}
	if got := BadgesForExercise(95, 0); len(got) != 1 || got[0] != BadgeSelfStarter {
		t.Errorf("BadgesForExercise(95, 0) = %v", got)
	}
	if got := BadgesForExercise(95, 2); got != nil {
		t.Errorf("BadgesForExercise(95, 2) = %v, want nil", got)
	}
}
