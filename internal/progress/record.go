// Package progress maintains the durable per-path progress ledger that
// quiz sessions and exercise attempts write into.
package progress

import "time"

// Record is the per-path ledger entry. One record exists per learning
// path; it is created empty on first access and destroyed only by Reset.
type Record struct {
	PathID            string    `json:"path_id"`
	CompletedNodes    []string  `json:"completed_nodes"`
	CurrentNodeID     string    `json:"current_node_id,omitempty"`
	OverallProgress   int       `json:"overall_progress"`
	TotalPointsEarned int       `json:"total_points_earned"`
	BadgesEarned      []string  `json:"badges_earned"`
	TimeSpentHours    float64   `json:"time_spent_hours"`
	LastActivity      time.Time `json:"last_activity"`
}

func newRecord(pathID string) *Record {
	return &Record{PathID: pathID}
}

// IsCompleted reports whether the node is in the completed set.
func (r *Record) IsCompleted(nodeID string) bool {
	for _, id := range r.CompletedNodes {
		if id == nodeID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge has already been earned.
func (r *Record) HasBadge(name string) bool {
	for _, b := range r.BadgesEarned {
		if b == name {
			return true
		}
	}
	return false
}

// clone returns a deep copy so callers can hold a snapshot without
// aliasing the store's internal state.
func (r *Record) clone() *Record {
	out := *r
	out.CompletedNodes = append([]string(nil), r.CompletedNodes...)
	out.BadgesEarned = append([]string(nil), r.BadgesEarned...)
	return &out
}
