// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skillforge/ent/evaluatorrequestevent"
	"github.com/abhisek/skillforge/ent/exerciseevaluationevent"
	"github.com/abhisek/skillforge/ent/hintrequestevent"
	"github.com/abhisek/skillforge/ent/progressblob"
	"github.com/abhisek/skillforge/ent/quizsubmissionevent"
	"github.com/abhisek/skillforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	evaluatorrequesteventMixin := schema.EvaluatorRequestEvent{}.Mixin()
	evaluatorrequesteventMixinFields0 := evaluatorrequesteventMixin[0].Fields()
	_ = evaluatorrequesteventMixinFields0
	evaluatorrequesteventFields := schema.EvaluatorRequestEvent{}.Fields()
	_ = evaluatorrequesteventFields
	// evaluatorrequesteventDescTimestamp is the schema descriptor for timestamp field.
	evaluatorrequesteventDescTimestamp := evaluatorrequesteventMixinFields0[1].Descriptor()
	// evaluatorrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluatorrequestevent.DefaultTimestamp = evaluatorrequesteventDescTimestamp.Default.(func() time.Time)
	// evaluatorrequesteventDescTarget is the schema descriptor for target field.
	evaluatorrequesteventDescTarget := evaluatorrequesteventFields[2].Descriptor()
	// evaluatorrequestevent.DefaultTarget holds the default value on creation for the target field.
	evaluatorrequestevent.DefaultTarget = evaluatorrequesteventDescTarget.Default.(string)
	// evaluatorrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	evaluatorrequesteventDescLatencyMs := evaluatorrequesteventFields[3].Descriptor()
	// evaluatorrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	evaluatorrequestevent.DefaultLatencyMs = evaluatorrequesteventDescLatencyMs.Default.(int64)
	// evaluatorrequesteventDescErrorMessage is the schema descriptor for error_message field.
	evaluatorrequesteventDescErrorMessage := evaluatorrequesteventFields[5].Descriptor()
	// evaluatorrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	evaluatorrequestevent.DefaultErrorMessage = evaluatorrequesteventDescErrorMessage.Default.(string)
	exerciseevaluationeventMixin := schema.ExerciseEvaluationEvent{}.Mixin()
	exerciseevaluationeventMixinFields0 := exerciseevaluationeventMixin[0].Fields()
	_ = exerciseevaluationeventMixinFields0
	exerciseevaluationeventFields := schema.ExerciseEvaluationEvent{}.Fields()
	_ = exerciseevaluationeventFields
	// exerciseevaluationeventDescTimestamp is the schema descriptor for timestamp field.
	exerciseevaluationeventDescTimestamp := exerciseevaluationeventMixinFields0[1].Descriptor()
	// exerciseevaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	exerciseevaluationevent.DefaultTimestamp = exerciseevaluationeventDescTimestamp.Default.(func() time.Time)
	// exerciseevaluationeventDescAttemptID is the schema descriptor for attempt_id field.
	exerciseevaluationeventDescAttemptID := exerciseevaluationeventFields[0].Descriptor()
	// exerciseevaluationevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	exerciseevaluationevent.AttemptIDValidator = exerciseevaluationeventDescAttemptID.Validators[0].(func(string) error)
	// exerciseevaluationeventDescExerciseID is the schema descriptor for exercise_id field.
	exerciseevaluationeventDescExerciseID := exerciseevaluationeventFields[1].Descriptor()
	// exerciseevaluationevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	exerciseevaluationevent.ExerciseIDValidator = exerciseevaluationeventDescExerciseID.Validators[0].(func(string) error)
	// exerciseevaluationeventDescPathID is the schema descriptor for path_id field.
	exerciseevaluationeventDescPathID := exerciseevaluationeventFields[2].Descriptor()
	// exerciseevaluationevent.DefaultPathID holds the default value on creation for the path_id field.
	exerciseevaluationevent.DefaultPathID = exerciseevaluationeventDescPathID.Default.(string)
	// exerciseevaluationeventDescScore is the schema descriptor for score field.
	exerciseevaluationeventDescScore := exerciseevaluationeventFields[3].Descriptor()
	// exerciseevaluationevent.DefaultScore holds the default value on creation for the score field.
	exerciseevaluationevent.DefaultScore = exerciseevaluationeventDescScore.Default.(int)
	// exerciseevaluationeventDescHintsUsed is the schema descriptor for hints_used field.
	exerciseevaluationeventDescHintsUsed := exerciseevaluationeventFields[5].Descriptor()
	// exerciseevaluationevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	exerciseevaluationevent.DefaultHintsUsed = exerciseevaluationeventDescHintsUsed.Default.(int)
	// exerciseevaluationeventDescSolutionChars is the schema descriptor for solution_chars field.
	exerciseevaluationeventDescSolutionChars := exerciseevaluationeventFields[6].Descriptor()
	// exerciseevaluationevent.DefaultSolutionChars holds the default value on creation for the solution_chars field.
	exerciseevaluationevent.DefaultSolutionChars = exerciseevaluationeventDescSolutionChars.Default.(int)
	// exerciseevaluationeventDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	exerciseevaluationeventDescTimeSpentSeconds := exerciseevaluationeventFields[7].Descriptor()
	// exerciseevaluationevent.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	exerciseevaluationevent.DefaultTimeSpentSeconds = exerciseevaluationeventDescTimeSpentSeconds.Default.(int)
	hintrequesteventMixin := schema.HintRequestEvent{}.Mixin()
	hintrequesteventMixinFields0 := hintrequesteventMixin[0].Fields()
	_ = hintrequesteventMixinFields0
	hintrequesteventFields := schema.HintRequestEvent{}.Fields()
	_ = hintrequesteventFields
	// hintrequesteventDescTimestamp is the schema descriptor for timestamp field.
	hintrequesteventDescTimestamp := hintrequesteventMixinFields0[1].Descriptor()
	// hintrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintrequestevent.DefaultTimestamp = hintrequesteventDescTimestamp.Default.(func() time.Time)
	// hintrequesteventDescAttemptID is the schema descriptor for attempt_id field.
	hintrequesteventDescAttemptID := hintrequesteventFields[0].Descriptor()
	// hintrequestevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	hintrequestevent.AttemptIDValidator = hintrequesteventDescAttemptID.Validators[0].(func(string) error)
	// hintrequesteventDescExerciseID is the schema descriptor for exercise_id field.
	hintrequesteventDescExerciseID := hintrequesteventFields[1].Descriptor()
	// hintrequestevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	hintrequestevent.ExerciseIDValidator = hintrequesteventDescExerciseID.Validators[0].(func(string) error)
	// hintrequesteventDescHintText is the schema descriptor for hint_text field.
	hintrequesteventDescHintText := hintrequesteventFields[3].Descriptor()
	// hintrequestevent.DefaultHintText holds the default value on creation for the hint_text field.
	hintrequestevent.DefaultHintText = hintrequesteventDescHintText.Default.(string)
	progressblobFields := schema.ProgressBlob{}.Fields()
	_ = progressblobFields
	// progressblobDescKey is the schema descriptor for key field.
	progressblobDescKey := progressblobFields[0].Descriptor()
	// progressblob.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	progressblob.KeyValidator = progressblobDescKey.Validators[0].(func(string) error)
	// progressblobDescUpdatedAt is the schema descriptor for updated_at field.
	progressblobDescUpdatedAt := progressblobFields[2].Descriptor()
	// progressblob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressblob.DefaultUpdatedAt = progressblobDescUpdatedAt.Default.(func() time.Time)
	// progressblob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressblob.UpdateDefaultUpdatedAt = progressblobDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizsubmissioneventMixin := schema.QuizSubmissionEvent{}.Mixin()
	quizsubmissioneventMixinFields0 := quizsubmissioneventMixin[0].Fields()
	_ = quizsubmissioneventMixinFields0
	quizsubmissioneventFields := schema.QuizSubmissionEvent{}.Fields()
	_ = quizsubmissioneventFields
	// quizsubmissioneventDescTimestamp is the schema descriptor for timestamp field.
	quizsubmissioneventDescTimestamp := quizsubmissioneventMixinFields0[1].Descriptor()
	// quizsubmissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizsubmissionevent.DefaultTimestamp = quizsubmissioneventDescTimestamp.Default.(func() time.Time)
	// quizsubmissioneventDescSessionID is the schema descriptor for session_id field.
	quizsubmissioneventDescSessionID := quizsubmissioneventFields[0].Descriptor()
	// quizsubmissionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizsubmissionevent.SessionIDValidator = quizsubmissioneventDescSessionID.Validators[0].(func(string) error)
	// quizsubmissioneventDescQuizID is the schema descriptor for quiz_id field.
	quizsubmissioneventDescQuizID := quizsubmissioneventFields[1].Descriptor()
	// quizsubmissionevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizsubmissionevent.QuizIDValidator = quizsubmissioneventDescQuizID.Validators[0].(func(string) error)
	// quizsubmissioneventDescPathID is the schema descriptor for path_id field.
	quizsubmissioneventDescPathID := quizsubmissioneventFields[2].Descriptor()
	// quizsubmissionevent.DefaultPathID holds the default value on creation for the path_id field.
	quizsubmissionevent.DefaultPathID = quizsubmissioneventDescPathID.Default.(string)
	// quizsubmissioneventDescCorrectCount is the schema descriptor for correct_count field.
	quizsubmissioneventDescCorrectCount := quizsubmissioneventFields[5].Descriptor()
	// quizsubmissionevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	quizsubmissionevent.DefaultCorrectCount = quizsubmissioneventDescCorrectCount.Default.(int)
	// quizsubmissioneventDescTotalQuestions is the schema descriptor for total_questions field.
	quizsubmissioneventDescTotalQuestions := quizsubmissioneventFields[6].Descriptor()
	// quizsubmissionevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	quizsubmissionevent.DefaultTotalQuestions = quizsubmissioneventDescTotalQuestions.Default.(int)
	// quizsubmissioneventDescPointsEarned is the schema descriptor for points_earned field.
	quizsubmissioneventDescPointsEarned := quizsubmissioneventFields[7].Descriptor()
	// quizsubmissionevent.DefaultPointsEarned holds the default value on creation for the points_earned field.
	quizsubmissionevent.DefaultPointsEarned = quizsubmissioneventDescPointsEarned.Default.(int)
	// quizsubmissioneventDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	quizsubmissioneventDescTimeSpentSeconds := quizsubmissioneventFields[8].Descriptor()
	// quizsubmissionevent.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	quizsubmissionevent.DefaultTimeSpentSeconds = quizsubmissioneventDescTimeSpentSeconds.Default.(int)
	// quizsubmissioneventDescAutoSubmitted is the schema descriptor for auto_submitted field.
	quizsubmissioneventDescAutoSubmitted := quizsubmissioneventFields[9].Descriptor()
	// quizsubmissionevent.DefaultAutoSubmitted holds the default value on creation for the auto_submitted field.
	quizsubmissionevent.DefaultAutoSubmitted = quizsubmissioneventDescAutoSubmitted.Default.(bool)
}
