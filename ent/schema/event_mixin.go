package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin provides the base fields shared by all journal events: a
// global sequence number and a timestamp, both set once on insert.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing sequence shared by all event tables"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the event"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}

// sessionFields are the fields every exercise event carries.
func sessionFields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("App run that produced the event"),
		field.String("exercise_id").
			NotEmpty().
			Comment("Exercise the learner was working on"),
		field.String("answer_id").
			NotEmpty().
			Comment("Option in the answer slot"),
	}
}
