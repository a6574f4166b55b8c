// Package board is a multi-column task list driven by the same gesture
// events as the answer exchange. It has no notion of a correct answer.
package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/dropcheck/internal/dnd"
)

var ErrUnknownTask = errors.New("unknown task")

// Task is a card on the board.
type Task struct {
	ID      string
	Content string
}

// Column is an ordered list of task ids.
type Column struct {
	ID      string
	Title   string
	TaskIDs []string
}

// ColumnView is a column as rendered: its tasks resolved and whether it
// currently accepts drops.
type ColumnView struct {
	ID           string
	Title        string
	Tasks        []Task
	DropDisabled bool
}

// Board owns the columns and the in-flight drag.
type Board struct {
	tasks   map[string]Task
	columns []Column
	home    int // index of the column the current drag started in, -1 if idle
}

// New builds a board. Every task must be placed in exactly one column.
func New(tasks []Task, columns []Column) (*Board, error) {
	table := make(map[string]Task, len(tasks))
	for _, t := range tasks {
		if _, dup := table[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task %s", t.ID)
		}
		table[t.ID] = t
	}

	placed := make(map[string]bool, len(tasks))
	cols := make([]Column, len(columns))
	for i, c := range columns {
		for _, id := range c.TaskIDs {
			if _, ok := table[id]; !ok {
				return nil, fmt.Errorf("column %s: %w: %s", c.ID, ErrUnknownTask, id)
			}
			if placed[id] {
				return nil, fmt.Errorf("task %s placed twice", id)
			}
			placed[id] = true
		}
		cols[i] = Column{ID: c.ID, Title: c.Title, TaskIDs: slices.Clone(c.TaskIDs)}
	}
	if len(placed) != len(table) {
		return nil, fmt.Errorf("%d of %d tasks are not in any column", len(table)-len(placed), len(table))
	}

	return &Board{tasks: table, columns: cols, home: -1}, nil
}

// DragStart remembers the home column of the drag.
func (b *Board) DragStart(start dnd.DragStart) {
	b.home = b.columnIndex(start.Source.DroppableID)
}

// Dragging reports whether a drag is in progress.
func (b *Board) Dragging() bool {
	return b.home >= 0
}

// DropDisabled reports whether column i refuses drops right now. Tasks only
// move forward: columns before the home column are closed during a drag.
func (b *Board) DropDisabled(i int) bool {
	return b.home >= 0 && i < b.home
}

// DragEnd applies a finished drag and reports whether anything moved.
func (b *Board) DragEnd(result dnd.DropResult) bool {
	defer func() { b.home = -1 }()

	if result.Cancelled() {
		return false
	}
	src := b.columnIndex(result.Source.DroppableID)
	dst := b.columnIndex(result.Destination.DroppableID)
	if src < 0 || dst < 0 || b.DropDisabled(dst) {
		return false
	}

	from := slices.Index(b.columns[src].TaskIDs, result.DraggableID)
	if from < 0 {
		return false
	}
	if src == dst && from == result.Destination.Index {
		return false
	}

	b.columns[src].TaskIDs = slices.Delete(b.columns[src].TaskIDs, from, from+1)
	ids := b.columns[dst].TaskIDs
	at := dnd.ClampIndex(result.Destination.Index, len(ids))
	b.columns[dst].TaskIDs = slices.Insert(ids, at, result.DraggableID)
	return true
}

// Columns returns the rendered view of every column.
func (b *Board) Columns() []ColumnView {
	views := make([]ColumnView, len(b.columns))
	for i, c := range b.columns {
		tasks := make([]Task, len(c.TaskIDs))
		for j, id := range c.TaskIDs {
			tasks[j] = b.tasks[id]
		}
		views[i] = ColumnView{
			ID:           c.ID,
			Title:        c.Title,
			Tasks:        tasks,
			DropDisabled: b.DropDisabled(i),
		}
	}
	return views
}

// Validate checks that every task appears exactly once.
func (b *Board) Validate() error {
	seen := make(map[string]int, len(b.tasks))
	for _, c := range b.columns {
		for _, id := range c.TaskIDs {
			seen[id]++
		}
	}
	for id := range b.tasks {
		if seen[id] != 1 {
			return fmt.Errorf("task %s appears %d times", id, seen[id])
		}
	}
	return nil
}

func (b *Board) columnIndex(id string) int {
	return slices.IndexFunc(b.columns, func(c Column) bool { return c.ID == id })
}
