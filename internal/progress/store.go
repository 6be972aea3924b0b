package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"
	"time"
)

// KV is the persistence port the ledger writes through. Get returns
// (nil, nil) when the key is absent. A Set must be durable before it
// returns.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

func recordKey(pathID string) string {
	return "progress:" + pathID
}

// Store is the single shared, mutable destination for completion events.
// Every operation is a load-modify-save under one lock with no suspension
// point in between, so read-modify-write sequences (like the add-points-
// once check in MarkCompleted) commit atomically.
type Store struct {
	mu  sync.Mutex
	kv  KV
	now func() time.Time
}

// NewStore creates a ledger over the given persistence port.
func NewStore(kv KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Get returns the record for the path, lazily initializing an empty one.
// A malformed stored record is treated as absent: the ledger must never
// crash on corrupt data.
func (s *Store) Get(ctx context.Context, pathID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load(ctx, pathID)
	if err != nil {
		return nil, err
	}
	return rec.clone(), nil
}

// MarkCompleted adds the node to the completed set and credits its
// points. Repeat calls for an already-completed node change nothing:
// membership is a set, and points are added only on first insertion.
func (s *Store) MarkCompleted(ctx context.Context, pathID, nodeID string, points int) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load(ctx, pathID)
	if err != nil {
		return nil, err
	}

	if !rec.IsCompleted(nodeID) {
		rec.CompletedNodes = append(rec.CompletedNodes, nodeID)
		rec.TotalPointsEarned += points
		if len(rec.CompletedNodes) == 1 && !rec.HasBadge(BadgeFirstSteps) {
			rec.BadgesEarned = append(rec.BadgesEarned, BadgeFirstSteps)
		}
	}

	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	return rec.clone(), nil
}

// SetCurrentNode unconditionally overwrites the current-node pointer.
func (s *Store) SetCurrentNode(ctx context.Context, pathID, nodeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load(ctx, pathID)
	if err != nil {
		return err
	}
	rec.CurrentNodeID = nodeID
	return s.save(ctx, rec)
}

// AddBadge adds a badge by name. Idempotent.
func (s *Store) AddBadge(ctx context.Context, pathID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load(ctx, pathID)
	if err != nil {
		return err
	}
	if rec.HasBadge(name) {
		return nil
	}
	rec.BadgesEarned = append(rec.BadgesEarned, name)
	return s.save(ctx, rec)
}

// AddTimeSpent accumulates time spent on the path, in hours.
func (s *Store) AddTimeSpent(ctx context.Context, pathID string, hours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load(ctx, pathID)
	if err != nil {
		return err
	}
	rec.TimeSpentHours += hours
	return s.save(ctx, rec)
}

// RecomputeOverallProgress recalculates the completion percentage from
// the completed set. A path with zero nodes yields 0, not a division
// error. Reaching 100 earns the path-complete badge.
func (s *Store) RecomputeOverallProgress(ctx context.Context, pathID string, totalNodeCount int) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load(ctx, pathID)
	if err != nil {
		return nil, err
	}

	if totalNodeCount <= 0 {
		rec.OverallProgress = 0
	} else {
		pct := 100 * float64(len(rec.CompletedNodes)) / float64(totalNodeCount)
		rec.OverallProgress = int(math.Round(pct))
	}
	if rec.OverallProgress >= 100 && !rec.HasBadge(BadgePathComplete) {
		rec.BadgesEarned = append(rec.BadgesEarned, BadgePathComplete)
	}

	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	return rec.clone(), nil
}

// Reset clears the record to its empty initial form and removes the
// persisted copy.
func (s *Store) Reset(ctx context.Context, pathID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, recordKey(pathID)); err != nil {
		return fmt.Errorf("remove progress record: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, pathID string) (*Record, error) {
	raw, err := s.kv.Get(ctx, recordKey(pathID))
	if err != nil {
		return nil, fmt.Errorf("load progress record: %w", err)
	}
	if raw == nil {
		return newRecord(pathID), nil
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt progress record for %s, reinitializing: %v\n", pathID, err)
		return newRecord(pathID), nil
	}
	rec.PathID = pathID
	return &rec, nil
}

func (s *Store) save(ctx context.Context, rec *Record) error {
	rec.LastActivity = s.now().UTC()
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}
	if err := s.kv.Set(ctx, recordKey(rec.PathID), raw); err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}
