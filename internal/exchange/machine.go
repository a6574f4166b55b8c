// Package exchange implements the answer exchange state machine: a pool of
// candidate options, a single answer slot, the flags of an in-flight drag
// and the result of the last check.
//
// The machine is not safe for concurrent use. Callers feed it events from a
// single loop (the bubbletea update loop in this app).
package exchange

import (
	"errors"
	"fmt"

	"github.com/abhisek/dropcheck/internal/dnd"
)

var (
	ErrEmptyUniverse   = errors.New("exercise has no options")
	ErrDuplicateOption = errors.New("duplicate option id")
	ErrUnknownExpected = errors.New("expected answer is not one of the options")
)

// Machine owns the exercise state.
type Machine struct {
	universe    []Option
	expected    string
	pool        []Option
	slot        *Option
	gesture     Gesture
	correctness Correctness
}

// New creates a machine with every option in the pool and an empty slot.
func New(options []Option, expectedID string) (*Machine, error) {
	if len(options) == 0 {
		return nil, ErrEmptyUniverse
	}
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if o.ID == "" {
			return nil, fmt.Errorf("option %q: empty id", o.Label)
		}
		if seen[o.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOption, o.ID)
		}
		seen[o.ID] = true
	}
	if !seen[expectedID] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExpected, expectedID)
	}

	universe := append([]Option(nil), options...)
	return &Machine{
		universe:    universe,
		expected:    expectedID,
		pool:        append([]Option(nil), universe...),
		correctness: CorrectnessUnknown,
	}, nil
}

// DragStart records where the drag came from and clears the last check.
func (m *Machine) DragStart(start dnd.DragStart) {
	m.correctness = CorrectnessUnknown
	m.gesture = Gesture{}
	switch OriginOf(start.Source.DroppableID) {
	case OriginPool:
		m.gesture.FromPool = true
	case OriginSlot:
		m.gesture.FromSlot = true
	}
}

// DragEnd applies a finished drag. Gesture flags and correctness are cleared
// even when the drop is cancelled or ignored.
func (m *Machine) DragEnd(result dnd.DropResult) Outcome {
	m.gesture = Gesture{}
	m.correctness = CorrectnessUnknown

	if result.Cancelled() {
		return OutcomeCancelled
	}

	src := OriginOf(result.Source.DroppableID)
	dst := OriginOf(result.Destination.DroppableID)

	switch {
	case src == OriginPool && dst == OriginSlot:
		return m.place(result.DraggableID)
	case src == OriginSlot && dst == OriginPool:
		return m.returnToPool(result.DraggableID, result.Destination.Index)
	case src == OriginPool && dst == OriginPool:
		return m.reorder(result.DraggableID, result.Destination.Index)
	}
	return OutcomeIgnored
}

// place moves a pool option into the slot, evicting the current occupant to
// the end of the pool.
func (m *Machine) place(id string) Outcome {
	idx := m.poolIndex(id)
	if idx < 0 {
		return OutcomeIgnored
	}

	chosen := m.pool[idx]
	m.pool = append(m.pool[:idx:idx], m.pool[idx+1:]...)

	outcome := OutcomePlaced
	if m.slot != nil {
		m.pool = append(m.pool, *m.slot)
		outcome = OutcomeSwapped
	}
	m.slot = &chosen
	return outcome
}

func (m *Machine) returnToPool(id string, index int) Outcome {
	if m.slot == nil || m.slot.ID != id {
		return OutcomeIgnored
	}
	m.pool = insertAt(m.pool, dnd.ClampIndex(index, len(m.pool)), *m.slot)
	m.slot = nil
	return OutcomeReturned
}

func (m *Machine) reorder(id string, index int) Outcome {
	from := m.poolIndex(id)
	if from < 0 {
		return OutcomeIgnored
	}
	moved := m.pool[from]
	rest := append(m.pool[:from:from], m.pool[from+1:]...)
	m.pool = insertAt(rest, dnd.ClampIndex(index, len(rest)), moved)
	return OutcomeReordered
}

// Check compares the slot occupant with the expected answer. It is a no-op
// returning ok=false when the slot is empty.
func (m *Machine) Check() (c Correctness, ok bool) {
	if m.slot == nil {
		return m.correctness, false
	}
	if m.slot.ID == m.expected {
		m.correctness = CorrectnessCorrect
	} else {
		m.correctness = CorrectnessIncorrect
	}
	return m.correctness, true
}

// Reset returns the occupant, if any, to the end of the pool and clears the
// last check. The returned option is the one that was evicted.
func (m *Machine) Reset() *Option {
	m.correctness = CorrectnessUnknown
	m.gesture = Gesture{}
	if m.slot == nil {
		return nil
	}
	evicted := *m.slot
	m.pool = append(m.pool, evicted)
	m.slot = nil
	return &evicted
}

func (m *Machine) poolIndex(id string) int {
	for i, o := range m.pool {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// insertAt returns a fresh slice with o inserted at i.
func insertAt(s []Option, i int, o Option) []Option {
	out := make([]Option, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, o)
	return append(out, s[i:]...)
}
