package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluatorRequestEvent records every call to the evaluator backend,
// remote or local, for debugging and latency tracking.
type EvaluatorRequestEvent struct {
	ent.Schema
}

func (EvaluatorRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvaluatorRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("mode").
			Comment("Evaluator mode: remote, local, mock"),
		field.String("operation").
			Comment("evaluate, hint, run_tests, submit_quiz"),
		field.String("target").
			Default("").
			Comment("Base URL for remote mode, model ID for local mode"),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.String("error_message").Default(""),
	}
}

func (EvaluatorRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation"),
		index.Fields("success"),
	}
}
