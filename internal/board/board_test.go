package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dropcheck/internal/dnd"
)

func columnIDs(b *Board, i int) []string {
	var ids []string
	for _, t := range b.Columns()[i].Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestNew_Rejects(t *testing.T) {
	tasks := []Task{{ID: "a"}, {ID: "b"}}

	_, err := New(tasks, []Column{{ID: "c", TaskIDs: []string{"a", "x"}}})
	require.ErrorIs(t, err, ErrUnknownTask)

	_, err = New(tasks, []Column{{ID: "c", TaskIDs: []string{"a", "a", "b"}}})
	require.Error(t, err)

	_, err = New(tasks, []Column{{ID: "c", TaskIDs: []string{"a"}}})
	require.Error(t, err)

	_, err = New([]Task{{ID: "a"}, {ID: "a"}}, nil)
	require.Error(t, err)
}

func TestDragEnd_ReorderWithinColumn(t *testing.T) {
	b := Sample()
	src := dnd.Location{DroppableID: "column-1", Index: 0}
	b.DragStart(dnd.DragStart{DraggableID: "task-1", Source: src})

	moved := b.DragEnd(dnd.DropResult{DraggableID: "task-1", Source: src, Destination: dnd.At("column-1", 2)})
	require.True(t, moved)
	assert.Equal(t, []string{"task-2", "task-3", "task-1", "task-4"}, columnIDs(b, 0))
	require.NoError(t, b.Validate())
}

func TestDragEnd_MoveAcrossColumns(t *testing.T) {
	b := Sample()
	src := dnd.Location{DroppableID: "column-1", Index: 1}
	b.DragStart(dnd.DragStart{DraggableID: "task-2", Source: src})

	moved := b.DragEnd(dnd.DropResult{DraggableID: "task-2", Source: src, Destination: dnd.At("column-2", 5)})
	require.True(t, moved)
	assert.Equal(t, []string{"task-1", "task-3", "task-4"}, columnIDs(b, 0))
	assert.Equal(t, []string{"task-2"}, columnIDs(b, 1))
	assert.False(t, b.Dragging())
	require.NoError(t, b.Validate())
}

func TestDropDisabled_BackwardColumns(t *testing.T) {
	b := Sample()
	src := dnd.Location{DroppableID: "column-1", Index: 0}
	b.DragStart(dnd.DragStart{DraggableID: "task-1", Source: src})
	b.DragEnd(dnd.DropResult{DraggableID: "task-1", Source: src, Destination: dnd.At("column-3", 0)})

	src = dnd.Location{DroppableID: "column-3", Index: 0}
	b.DragStart(dnd.DragStart{DraggableID: "task-1", Source: src})
	views := b.Columns()
	assert.True(t, views[0].DropDisabled)
	assert.True(t, views[1].DropDisabled)
	assert.False(t, views[2].DropDisabled)

	moved := b.DragEnd(dnd.DropResult{DraggableID: "task-1", Source: src, Destination: dnd.At("column-1", 0)})
	assert.False(t, moved)
	assert.Equal(t, []string{"task-1"}, columnIDs(b, 2))
	assert.False(t, b.Columns()[0].DropDisabled)
}

func TestDragEnd_NoOps(t *testing.T) {
	tests := []struct {
		name   string
		result dnd.DropResult
	}{
		{"cancelled", dnd.DropResult{DraggableID: "task-1", Source: dnd.Location{DroppableID: "column-1"}}},
		{"same position", dnd.DropResult{DraggableID: "task-1", Source: dnd.Location{DroppableID: "column-1"}, Destination: dnd.At("column-1", 0)}},
		{"unknown column", dnd.DropResult{DraggableID: "task-1", Source: dnd.Location{DroppableID: "column-1"}, Destination: dnd.At("column-9", 0)}},
		{"task not in source", dnd.DropResult{DraggableID: "task-1", Source: dnd.Location{DroppableID: "column-2"}, Destination: dnd.At("column-3", 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Sample()
			b.DragStart(dnd.DragStart{DraggableID: tt.result.DraggableID, Source: tt.result.Source})
			assert.False(t, b.DragEnd(tt.result))
			assert.Equal(t, []string{"task-1", "task-2", "task-3", "task-4"}, columnIDs(b, 0))
			assert.False(t, b.Dragging())
		})
	}
}
