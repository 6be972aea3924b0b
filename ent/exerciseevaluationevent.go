// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/exerciseevaluationevent"
)

// ExerciseEvaluationEvent is the model entity for the ExerciseEvaluationEvent schema.
type ExerciseEvaluationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// AttemptID holds the value of the "attempt_id" field.
	AttemptID string `json:"attempt_id,omitempty"`
	// ExerciseID holds the value of the "exercise_id" field.
	ExerciseID string `json:"exercise_id,omitempty"`
	// PathID holds the value of the "path_id" field.
	PathID string `json:"path_id,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// HintsUsed holds the value of the "hints_used" field.
	HintsUsed int `json:"hints_used,omitempty"`
	// Length of the submitted solution, not the text itself
	SolutionChars int `json:"solution_chars,omitempty"`
	// TimeSpentSeconds holds the value of the "time_spent_seconds" field.
	TimeSpentSeconds int `json:"time_spent_seconds,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExerciseEvaluationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exerciseevaluationevent.FieldPassed:
			values[i] = new(sql.NullBool)
		case exerciseevaluationevent.FieldID, exerciseevaluationevent.FieldSequence, exerciseevaluationevent.FieldScore, exerciseevaluationevent.FieldHintsUsed, exerciseevaluationevent.FieldSolutionChars, exerciseevaluationevent.FieldTimeSpentSeconds:
			values[i] = new(sql.NullInt64)
		case exerciseevaluationevent.FieldAttemptID, exerciseevaluationevent.FieldExerciseID, exerciseevaluationevent.FieldPathID:
			values[i] = new(sql.NullString)
		case exerciseevaluationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExerciseEvaluationEvent fields.
func (_m *ExerciseEvaluationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exerciseevaluationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case exerciseevaluationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case exerciseevaluationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case exerciseevaluationevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case exerciseevaluationevent.FieldExerciseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_id", values[i])
			} else if value.Valid {
				_m.ExerciseID = value.String
			}
		case exerciseevaluationevent.FieldPathID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path_id", values[i])
			} else if value.Valid {
				_m.PathID = value.String
			}
		case exerciseevaluationevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case exerciseevaluationevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case exerciseevaluationevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		case exerciseevaluationevent.FieldSolutionChars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field solution_chars", values[i])
			} else if value.Valid {
				_m.SolutionChars = int(value.Int64)
			}
		case exerciseevaluationevent.FieldTimeSpentSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_seconds", values[i])
			} else if value.Valid {
				_m.TimeSpentSeconds = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExerciseEvaluationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExerciseEvaluationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExerciseEvaluationEvent.
// Note that you need to call ExerciseEvaluationEvent.Unwrap() before calling this method if this ExerciseEvaluationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExerciseEvaluationEvent) Update() *ExerciseEvaluationEventUpdateOne {
	return NewExerciseEvaluationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExerciseEvaluationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExerciseEvaluationEvent) Unwrap() *ExerciseEvaluationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExerciseEvaluationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExerciseEvaluationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExerciseEvaluationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("exercise_id=")
	builder.WriteString(_m.ExerciseID)
	builder.WriteString(", ")
	builder.WriteString("path_id=")
	builder.WriteString(_m.PathID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("solution_chars=")
	builder.WriteString(fmt.Sprintf("%v", _m.SolutionChars))
	builder.WriteString(", ")
	builder.WriteString("time_spent_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSeconds))
	builder.WriteByte(')')
	return builder.String()
}

// ExerciseEvaluationEvents is a parsable slice of ExerciseEvaluationEvent.
type ExerciseEvaluationEvents []*ExerciseEvaluationEvent
