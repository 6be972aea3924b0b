package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintRequestEvent records that a hint was fetched and shown.
type HintRequestEvent struct {
	ent.Schema
}

func (HintRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HintRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").NotEmpty(),
		field.String("exercise_id").NotEmpty(),
		field.Int("level").
			Comment("Escalation level of the hint, 1-3"),
		field.String("hint_text").Default(""),
	}
}

func (HintRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise_id"),
	}
}
