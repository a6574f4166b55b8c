package store

import (
	"testing"

	"entgo.io/ent"
	sqlschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"github.com/stretchr/testify/assert"

	entschema "github.com/abhisek/dropcheck/ent/schema"
)

// entColumns lists the columns ent would generate for a schema with the
// event mixin: the id first, then mixin fields, then own fields.
func entColumns(fields []ent.Field) map[string]field.Type {
	cols := map[string]field.Type{"id": field.TypeInt}
	for _, f := range append(entschema.EventMixin{}.Fields(), fields...) {
		d := f.Descriptor()
		cols[d.Name] = d.Info.Type
	}
	return cols
}

func tableColumns(t *sqlschema.Table) map[string]field.Type {
	cols := make(map[string]field.Type, len(t.Columns))
	for _, c := range t.Columns {
		cols[c.Name] = c.Type
	}
	return cols
}

func TestTablesMatchEntSchema(t *testing.T) {
	assert.Equal(t, entColumns(entschema.CheckEvent{}.Fields()), tableColumns(CheckEventsTable))
	assert.Equal(t, entColumns(entschema.ResetEvent{}.Fields()), tableColumns(ResetEventsTable))
}
