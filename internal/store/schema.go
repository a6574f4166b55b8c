package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	checkEventsTable = "check_events"
	resetEventsTable = "reset_events"
)

var (
	// CheckEventsColumns holds the columns for the "check_events" table.
	CheckEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "answer_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
	}
	// CheckEventsTable holds the schema information for the "check_events" table.
	CheckEventsTable = &schema.Table{
		Name:       checkEventsTable,
		Columns:    CheckEventsColumns,
		PrimaryKey: []*schema.Column{CheckEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "checkevent_timestamp", Columns: []*schema.Column{CheckEventsColumns[2]}},
			{Name: "checkevent_session_id", Columns: []*schema.Column{CheckEventsColumns[3]}},
			{Name: "checkevent_exercise_id", Columns: []*schema.Column{CheckEventsColumns[4]}},
		},
	}

	// ResetEventsColumns holds the columns for the "reset_events" table.
	ResetEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "answer_id", Type: field.TypeString},
	}
	// ResetEventsTable holds the schema information for the "reset_events" table.
	ResetEventsTable = &schema.Table{
		Name:       resetEventsTable,
		Columns:    ResetEventsColumns,
		PrimaryKey: []*schema.Column{ResetEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "resetevent_exercise_id", Columns: []*schema.Column{ResetEventsColumns[4]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckEventsTable,
		ResetEventsTable,
	}
)
