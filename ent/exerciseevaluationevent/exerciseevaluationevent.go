// Code generated by ent, DO NOT EDIT.

package exerciseevaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the exerciseevaluationevent type in the database.
	Label = "exercise_evaluation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldExerciseID holds the string denoting the exercise_id field in the database.
	FieldExerciseID = "exercise_id"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// FieldSolutionChars holds the string denoting the solution_chars field in the database.
	FieldSolutionChars = "solution_chars"
	// FieldTimeSpentSeconds holds the string denoting the time_spent_seconds field in the database.
	FieldTimeSpentSeconds = "time_spent_seconds"
	// Table holds the table name of the exerciseevaluationevent in the database.
	Table = "exercise_evaluation_events"
)

// Columns holds all SQL columns for exerciseevaluationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldExerciseID,
	FieldPathID,
	FieldScore,
	FieldPassed,
	FieldHintsUsed,
	FieldSolutionChars,
	FieldTimeSpentSeconds,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	ExerciseIDValidator func(string) error
	// DefaultPathID holds the default value on creation for the "path_id" field.
	DefaultPathID string
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultHintsUsed holds the default value on creation for the "hints_used" field.
	DefaultHintsUsed int
	// DefaultSolutionChars holds the default value on creation for the "solution_chars" field.
	DefaultSolutionChars int
	// DefaultTimeSpentSeconds holds the default value on creation for the "time_spent_seconds" field.
	DefaultTimeSpentSeconds int
)

// OrderOption defines the ordering options for the ExerciseEvaluationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByExerciseID orders the results by the exercise_id field.
func ByExerciseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseID, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}

// BySolutionChars orders the results by the solution_chars field.
func BySolutionChars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionChars, opts...).ToFunc()
}

// ByTimeSpentSeconds orders the results by the time_spent_seconds field.
func ByTimeSpentSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSeconds, opts...).ToFunc()
}
