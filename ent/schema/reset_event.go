package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/index"
)

// ResetEvent records a Try again that sent the answer back to the pool.
// answer_id is the option that was evicted.
type ResetEvent struct {
	ent.Schema
}

func (ResetEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResetEvent) Fields() []ent.Field {
	return sessionFields()
}

func (ResetEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise_id"),
	}
}
