// Code generated by ent, DO NOT EDIT.

package exerciseevaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldAttemptID, v))
}

// ExerciseID applies equality check predicate on the "exercise_id" field. It's identical to ExerciseIDEQ.
func ExerciseID(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldExerciseID, v))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldPathID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldPassed, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// SolutionChars applies equality check predicate on the "solution_chars" field. It's identical to SolutionCharsEQ.
func SolutionChars(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldSolutionChars, v))
}

// TimeSpentSeconds applies equality check predicate on the "time_spent_seconds" field. It's identical to TimeSpentSecondsEQ.
func TimeSpentSeconds(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// ExerciseIDEQ applies the EQ predicate on the "exercise_id" field.
func ExerciseIDEQ(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldExerciseID, v))
}

// ExerciseIDNEQ applies the NEQ predicate on the "exercise_id" field.
func ExerciseIDNEQ(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldExerciseID, v))
}

// ExerciseIDIn applies the In predicate on the "exercise_id" field.
func ExerciseIDIn(vs ...string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldExerciseID, vs...))
}

// ExerciseIDNotIn applies the NotIn predicate on the "exercise_id" field.
func ExerciseIDNotIn(vs ...string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldExerciseID, vs...))
}

// ExerciseIDGT applies the GT predicate on the "exercise_id" field.
func ExerciseIDGT(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldExerciseID, v))
}

// ExerciseIDGTE applies the GTE predicate on the "exercise_id" field.
func ExerciseIDGTE(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldExerciseID, v))
}

// ExerciseIDLT applies the LT predicate on the "exercise_id" field.
func ExerciseIDLT(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldExerciseID, v))
}

// ExerciseIDLTE applies the LTE predicate on the "exercise_id" field.
func ExerciseIDLTE(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldExerciseID, v))
}

// ExerciseIDContains applies the Contains predicate on the "exercise_id" field.
func ExerciseIDContains(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldContains(FieldExerciseID, v))
}

// ExerciseIDHasPrefix applies the HasPrefix predicate on the "exercise_id" field.
func ExerciseIDHasPrefix(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldHasPrefix(FieldExerciseID, v))
}

// ExerciseIDHasSuffix applies the HasSuffix predicate on the "exercise_id" field.
func ExerciseIDHasSuffix(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldHasSuffix(FieldExerciseID, v))
}

// ExerciseIDEqualFold applies the EqualFold predicate on the "exercise_id" field.
func ExerciseIDEqualFold(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEqualFold(FieldExerciseID, v))
}

// ExerciseIDContainsFold applies the ContainsFold predicate on the "exercise_id" field.
func ExerciseIDContainsFold(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldContainsFold(FieldExerciseID, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldContainsFold(FieldPathID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldPassed, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldHintsUsed, v))
}

// SolutionCharsEQ applies the EQ predicate on the "solution_chars" field.
func SolutionCharsEQ(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldSolutionChars, v))
}

// SolutionCharsNEQ applies the NEQ predicate on the "solution_chars" field.
func SolutionCharsNEQ(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldSolutionChars, v))
}

// SolutionCharsIn applies the In predicate on the "solution_chars" field.
func SolutionCharsIn(vs ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldSolutionChars, vs...))
}

// SolutionCharsNotIn applies the NotIn predicate on the "solution_chars" field.
func SolutionCharsNotIn(vs ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldSolutionChars, vs...))
}

// SolutionCharsGT applies the GT predicate on the "solution_chars" field.
func SolutionCharsGT(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldSolutionChars, v))
}

// SolutionCharsGTE applies the GTE predicate on the "solution_chars" field.
func SolutionCharsGTE(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldSolutionChars, v))
}

// SolutionCharsLT applies the LT predicate on the "solution_chars" field.
func SolutionCharsLT(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldSolutionChars, v))
}

// SolutionCharsLTE applies the LTE predicate on the "solution_chars" field.
func SolutionCharsLTE(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldSolutionChars, v))
}

// TimeSpentSecondsEQ applies the EQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsEQ(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsNEQ applies the NEQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNEQ(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsIn applies the In predicate on the "time_spent_seconds" field.
func TimeSpentSecondsIn(vs ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsNotIn applies the NotIn predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNotIn(vs ...int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldNotIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsGT applies the GT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGT(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsGTE applies the GTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGTE(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldGTE(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLT applies the LT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLT(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLTE applies the LTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLTE(v int) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.FieldLTE(FieldTimeSpentSeconds, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExerciseEvaluationEvent) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExerciseEvaluationEvent) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExerciseEvaluationEvent) predicate.ExerciseEvaluationEvent {
	return predicate.ExerciseEvaluationEvent(sql.NotPredicates(p))
}
