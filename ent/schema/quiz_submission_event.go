package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizSubmissionEvent records the outcome of one quiz submission.
type QuizSubmissionEvent struct {
	ent.Schema
}

func (QuizSubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizSubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("quiz_id").NotEmpty(),
		field.String("path_id").Default(""),
		field.Int("score").
			Comment("Locally computed percentage, 0-100"),
		field.Bool("passed"),
		field.Int("correct_count").Default(0),
		field.Int("total_questions").Default(0),
		field.Int("points_earned").Default(0),
		field.Int("time_spent_seconds").Default(0),
		field.Bool("auto_submitted").
			Default(false).
			Comment("True when the countdown expired, false for manual submit"),
	}
}

func (QuizSubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("path_id"),
		index.Fields("passed"),
	}
}
