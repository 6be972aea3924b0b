// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EvaluatorRequestEventsColumns holds the columns for the "evaluator_request_events" table.
	EvaluatorRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "mode", Type: field.TypeString},
		{Name: "operation", Type: field.TypeString},
		{Name: "target", Type: field.TypeString, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// EvaluatorRequestEventsTable holds the schema information for the "evaluator_request_events" table.
	EvaluatorRequestEventsTable = &schema.Table{
		Name:       "evaluator_request_events",
		Columns:    EvaluatorRequestEventsColumns,
		PrimaryKey: []*schema.Column{EvaluatorRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluatorrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvaluatorRequestEventsColumns[1]},
			},
			{
				Name:    "evaluatorrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvaluatorRequestEventsColumns[2]},
			},
			{
				Name:    "evaluatorrequestevent_operation",
				Unique:  false,
				Columns: []*schema.Column{EvaluatorRequestEventsColumns[4]},
			},
			{
				Name:    "evaluatorrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{EvaluatorRequestEventsColumns[7]},
			},
		},
	}
	// ExerciseEvaluationEventsColumns holds the columns for the "exercise_evaluation_events" table.
	ExerciseEvaluationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "path_id", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "passed", Type: field.TypeBool},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "solution_chars", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_seconds", Type: field.TypeInt, Default: 0},
	}
	// ExerciseEvaluationEventsTable holds the schema information for the "exercise_evaluation_events" table.
	ExerciseEvaluationEventsTable = &schema.Table{
		Name:       "exercise_evaluation_events",
		Columns:    ExerciseEvaluationEventsColumns,
		PrimaryKey: []*schema.Column{ExerciseEvaluationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exerciseevaluationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEvaluationEventsColumns[1]},
			},
			{
				Name:    "exerciseevaluationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEvaluationEventsColumns[2]},
			},
			{
				Name:    "exerciseevaluationevent_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEvaluationEventsColumns[4]},
			},
			{
				Name:    "exerciseevaluationevent_path_id",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEvaluationEventsColumns[5]},
			},
			{
				Name:    "exerciseevaluationevent_passed",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEvaluationEventsColumns[7]},
			},
		},
	}
	// HintRequestEventsColumns holds the columns for the "hint_request_events" table.
	HintRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "hint_text", Type: field.TypeString, Default: ""},
	}
	// HintRequestEventsTable holds the schema information for the "hint_request_events" table.
	HintRequestEventsTable = &schema.Table{
		Name:       "hint_request_events",
		Columns:    HintRequestEventsColumns,
		PrimaryKey: []*schema.Column{HintRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintRequestEventsColumns[1]},
			},
			{
				Name:    "hintrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintRequestEventsColumns[2]},
			},
			{
				Name:    "hintrequestevent_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{HintRequestEventsColumns[4]},
			},
		},
	}
	// ProgressBlobsColumns holds the columns for the "progress_blobs" table.
	ProgressBlobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressBlobsTable holds the schema information for the "progress_blobs" table.
	ProgressBlobsTable = &schema.Table{
		Name:       "progress_blobs",
		Columns:    ProgressBlobsColumns,
		PrimaryKey: []*schema.Column{ProgressBlobsColumns[0]},
	}
	// QuizSubmissionEventsColumns holds the columns for the "quiz_submission_events" table.
	QuizSubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "path_id", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "points_earned", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_seconds", Type: field.TypeInt, Default: 0},
		{Name: "auto_submitted", Type: field.TypeBool, Default: false},
	}
	// QuizSubmissionEventsTable holds the schema information for the "quiz_submission_events" table.
	QuizSubmissionEventsTable = &schema.Table{
		Name:       "quiz_submission_events",
		Columns:    QuizSubmissionEventsColumns,
		PrimaryKey: []*schema.Column{QuizSubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsubmissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizSubmissionEventsColumns[1]},
			},
			{
				Name:    "quizsubmissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizSubmissionEventsColumns[2]},
			},
			{
				Name:    "quizsubmissionevent_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{QuizSubmissionEventsColumns[4]},
			},
			{
				Name:    "quizsubmissionevent_path_id",
				Unique:  false,
				Columns: []*schema.Column{QuizSubmissionEventsColumns[5]},
			},
			{
				Name:    "quizsubmissionevent_passed",
				Unique:  false,
				Columns: []*schema.Column{QuizSubmissionEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EvaluatorRequestEventsTable,
		ExerciseEvaluationEventsTable,
		HintRequestEventsTable,
		ProgressBlobsTable,
		QuizSubmissionEventsTable,
	}
)

func init() {
}
