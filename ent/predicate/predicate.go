// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EvaluatorRequestEvent is the predicate function for evaluatorrequestevent builders.
type EvaluatorRequestEvent func(*sql.Selector)

// ExerciseEvaluationEvent is the predicate function for exerciseevaluationevent builders.
type ExerciseEvaluationEvent func(*sql.Selector)

// HintRequestEvent is the predicate function for hintrequestevent builders.
type HintRequestEvent func(*sql.Selector)

// ProgressBlob is the predicate function for progressblob builders.
type ProgressBlob func(*sql.Selector)

// QuizSubmissionEvent is the predicate function for quizsubmissionevent builders.
type QuizSubmissionEvent func(*sql.Selector)
