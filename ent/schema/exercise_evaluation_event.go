package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExerciseEvaluationEvent records the outcome of one exercise submission.
type ExerciseEvaluationEvent struct {
	ent.Schema
}

func (ExerciseEvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExerciseEvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").NotEmpty(),
		field.String("exercise_id").NotEmpty(),
		field.String("path_id").Default(""),
		field.Int("score").Default(0),
		field.Bool("passed"),
		field.Int("hints_used").Default(0),
		field.Int("solution_chars").
			Default(0).
			Comment("Length of the submitted solution, not the text itself"),
		field.Int("time_spent_seconds").Default(0),
	}
}

func (ExerciseEvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise_id"),
		index.Fields("path_id"),
		index.Fields("passed"),
	}
}
