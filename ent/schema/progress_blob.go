package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProgressBlob is a durable key/value row. The progress ledger persists
// one JSON record per learning path through this table.
type ProgressBlob struct {
	ent.Schema
}

func (ProgressBlob) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty(),
		field.Bytes("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
