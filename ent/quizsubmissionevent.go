// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/quizsubmissionevent"
)

// QuizSubmissionEvent is the model entity for the QuizSubmissionEvent schema.
type QuizSubmissionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// QuizID holds the value of the "quiz_id" field.
	QuizID string `json:"quiz_id,omitempty"`
	// PathID holds the value of the "path_id" field.
	PathID string `json:"path_id,omitempty"`
	// Locally computed percentage, 0-100
	Score int `json:"score,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// PointsEarned holds the value of the "points_earned" field.
	PointsEarned int `json:"points_earned,omitempty"`
	// TimeSpentSeconds holds the value of the "time_spent_seconds" field.
	TimeSpentSeconds int `json:"time_spent_seconds,omitempty"`
	// True when the countdown expired, false for manual submit
	AutoSubmitted bool `json:"auto_submitted,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizSubmissionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizsubmissionevent.FieldPassed, quizsubmissionevent.FieldAutoSubmitted:
			values[i] = new(sql.NullBool)
		case quizsubmissionevent.FieldID, quizsubmissionevent.FieldSequence, quizsubmissionevent.FieldScore, quizsubmissionevent.FieldCorrectCount, quizsubmissionevent.FieldTotalQuestions, quizsubmissionevent.FieldPointsEarned, quizsubmissionevent.FieldTimeSpentSeconds:
			values[i] = new(sql.NullInt64)
		case quizsubmissionevent.FieldSessionID, quizsubmissionevent.FieldQuizID, quizsubmissionevent.FieldPathID:
			values[i] = new(sql.NullString)
		case quizsubmissionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizSubmissionEvent fields.
func (_m *QuizSubmissionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizsubmissionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizsubmissionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizsubmissionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizsubmissionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case quizsubmissionevent.FieldQuizID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value.Valid {
				_m.QuizID = value.String
			}
		case quizsubmissionevent.FieldPathID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path_id", values[i])
			} else if value.Valid {
				_m.PathID = value.String
			}
		case quizsubmissionevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case quizsubmissionevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case quizsubmissionevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case quizsubmissionevent.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case quizsubmissionevent.FieldPointsEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_earned", values[i])
			} else if value.Valid {
				_m.PointsEarned = int(value.Int64)
			}
		case quizsubmissionevent.FieldTimeSpentSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_seconds", values[i])
			} else if value.Valid {
				_m.TimeSpentSeconds = int(value.Int64)
			}
		case quizsubmissionevent.FieldAutoSubmitted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_submitted", values[i])
			} else if value.Valid {
				_m.AutoSubmitted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizSubmissionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizSubmissionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizSubmissionEvent.
// Note that you need to call QuizSubmissionEvent.Unwrap() before calling this method if this QuizSubmissionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizSubmissionEvent) Update() *QuizSubmissionEventUpdateOne {
	return NewQuizSubmissionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizSubmissionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizSubmissionEvent) Unwrap() *QuizSubmissionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizSubmissionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizSubmissionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizSubmissionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("quiz_id=")
	builder.WriteString(_m.QuizID)
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
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("points_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsEarned))
	builder.WriteString(", ")
	builder.WriteString("time_spent_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSeconds))
	builder.WriteString(", ")
	builder.WriteString("auto_submitted=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoSubmitted))
	builder.WriteByte(')')
	return builder.String()
}

// QuizSubmissionEvents is a parsable slice of QuizSubmissionEvent.
type QuizSubmissionEvents []*QuizSubmissionEvent
