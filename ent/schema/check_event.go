package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckEvent records one press of Check with an answer in the slot.
type CheckEvent struct {
	ent.Schema
}

func (CheckEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CheckEvent) Fields() []ent.Field {
	return append(sessionFields(),
		field.Bool("correct").
			Comment("Whether the answer matched the expected option"),
	)
}

func (CheckEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("exercise_id"),
	}
}
