// Package dnd defines the gesture events that every droppable surface in the
// app consumes. A drag gesture is one DragStart followed by exactly one
// DropResult; the host (a screen) builds them from key presses.
package dnd

// Location identifies a position inside a droppable list.
type Location struct {
	DroppableID string
	Index       int
}

// DragStart is emitted when an item is picked up.
type DragStart struct {
	DraggableID string
	Source      Location
}

// DropResult is emitted when a drag ends. Destination is nil when the item
// was released outside any enabled droppable.
type DropResult struct {
	DraggableID string
	Source      Location
	Destination *Location
}

// Cancelled reports whether the drop landed nowhere.
func (r DropResult) Cancelled() bool {
	return r.Destination == nil
}

// At returns a pointer to a Location, for building DropResults inline.
func At(droppableID string, index int) *Location {
	return &Location{DroppableID: droppableID, Index: index}
}

// ClampIndex limits i to the insertion range [0, n].
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
