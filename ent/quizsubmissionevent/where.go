// Code generated by ent, DO NOT EDIT.

package quizsubmissionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldSessionID, v))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldQuizID, v))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldPathID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldPassed, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldTotalQuestions, v))
}

// PointsEarned applies equality check predicate on the "points_earned" field. It's identical to PointsEarnedEQ.
func PointsEarned(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldPointsEarned, v))
}

// TimeSpentSeconds applies equality check predicate on the "time_spent_seconds" field. It's identical to TimeSpentSecondsEQ.
func TimeSpentSeconds(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// AutoSubmitted applies equality check predicate on the "auto_submitted" field. It's identical to AutoSubmittedEQ.
func AutoSubmitted(v bool) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldAutoSubmitted, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldQuizID, vs...))
}

// QuizIDGT applies the GT predicate on the "quiz_id" field.
func QuizIDGT(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldQuizID, v))
}

// QuizIDGTE applies the GTE predicate on the "quiz_id" field.
func QuizIDGTE(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldQuizID, v))
}

// QuizIDLT applies the LT predicate on the "quiz_id" field.
func QuizIDLT(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldQuizID, v))
}

// QuizIDLTE applies the LTE predicate on the "quiz_id" field.
func QuizIDLTE(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldQuizID, v))
}

// QuizIDContains applies the Contains predicate on the "quiz_id" field.
func QuizIDContains(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldContains(FieldQuizID, v))
}

// QuizIDHasPrefix applies the HasPrefix predicate on the "quiz_id" field.
func QuizIDHasPrefix(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldHasPrefix(FieldQuizID, v))
}

// QuizIDHasSuffix applies the HasSuffix predicate on the "quiz_id" field.
func QuizIDHasSuffix(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldHasSuffix(FieldQuizID, v))
}

// QuizIDEqualFold applies the EqualFold predicate on the "quiz_id" field.
func QuizIDEqualFold(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEqualFold(FieldQuizID, v))
}

// QuizIDContainsFold applies the ContainsFold predicate on the "quiz_id" field.
func QuizIDContainsFold(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldContainsFold(FieldQuizID, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldContainsFold(FieldPathID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldPassed, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldTotalQuestions, v))
}

// PointsEarnedEQ applies the EQ predicate on the "points_earned" field.
func PointsEarnedEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldPointsEarned, v))
}

// PointsEarnedNEQ applies the NEQ predicate on the "points_earned" field.
func PointsEarnedNEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldPointsEarned, v))
}

// PointsEarnedIn applies the In predicate on the "points_earned" field.
func PointsEarnedIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldPointsEarned, vs...))
}

// PointsEarnedNotIn applies the NotIn predicate on the "points_earned" field.
func PointsEarnedNotIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldPointsEarned, vs...))
}

// PointsEarnedGT applies the GT predicate on the "points_earned" field.
func PointsEarnedGT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldPointsEarned, v))
}

// PointsEarnedGTE applies the GTE predicate on the "points_earned" field.
func PointsEarnedGTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldPointsEarned, v))
}

// PointsEarnedLT applies the LT predicate on the "points_earned" field.
func PointsEarnedLT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldPointsEarned, v))
}

// PointsEarnedLTE applies the LTE predicate on the "points_earned" field.
func PointsEarnedLTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldPointsEarned, v))
}

// TimeSpentSecondsEQ applies the EQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsNEQ applies the NEQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNEQ(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsIn applies the In predicate on the "time_spent_seconds" field.
func TimeSpentSecondsIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsNotIn applies the NotIn predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNotIn(vs ...int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNotIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsGT applies the GT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsGTE applies the GTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldGTE(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLT applies the LT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLT(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLTE applies the LTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLTE(v int) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldLTE(FieldTimeSpentSeconds, v))
}

// AutoSubmittedEQ applies the EQ predicate on the "auto_submitted" field.
func AutoSubmittedEQ(v bool) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldEQ(FieldAutoSubmitted, v))
}

// AutoSubmittedNEQ applies the NEQ predicate on the "auto_submitted" field.
func AutoSubmittedNEQ(v bool) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.FieldNEQ(FieldAutoSubmitted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizSubmissionEvent) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizSubmissionEvent) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizSubmissionEvent) predicate.QuizSubmissionEvent {
	return predicate.QuizSubmissionEvent(sql.NotPredicates(p))
}
