package exchange

import "fmt"

// Snapshot returns a deep copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		Pool:        append([]Option(nil), m.pool...),
		Gesture:     m.gesture,
		Correctness: m.correctness,
	}
	if m.slot != nil {
		occupant := *m.slot
		snap.Slot = &occupant
	}
	return snap
}

// IsAnswered reports whether the slot holds an option.
func (m *Machine) IsAnswered() bool {
	return m.slot != nil
}

// IsCorrect reports whether the last check found the answer correct.
func (m *Machine) IsCorrect() bool {
	return m.correctness == CorrectnessCorrect
}

// Correctness returns the result of the last check.
func (m *Machine) Correctness() Correctness {
	return m.correctness
}

// Gesture returns the in-flight drag flags.
func (m *Machine) Gesture() Gesture {
	return m.gesture
}

// SlotDropDisabled is true while the slot's own occupant is being dragged.
func (m *Machine) SlotDropDisabled() bool {
	return m.gesture.FromSlot
}

// PoolDropDisabled is true while a pool option is being dragged, so it can
// only land in the slot.
func (m *Machine) PoolDropDisabled() bool {
	return m.gesture.FromPool
}

// Mode derives the visible mode from slot occupancy and correctness.
func (m *Machine) Mode() Mode {
	if m.slot == nil {
		return ModeIdle
	}
	switch m.correctness {
	case CorrectnessCorrect:
		return ModeCheckedCorrect
	case CorrectnessIncorrect:
		return ModeCheckedIncorrect
	default:
		return ModeAnswered
	}
}

// Answer returns the slot occupant, or nil.
func (m *Machine) Answer() *Option {
	if m.slot == nil {
		return nil
	}
	occupant := *m.slot
	return &occupant
}

// Expected returns the id of the correct option.
func (m *Machine) Expected() string {
	return m.expected
}

// Universe returns every option in construction order.
func (m *Machine) Universe() []Option {
	return append([]Option(nil), m.universe...)
}

// CheckInvariant verifies that pool and slot together hold each option of the
// universe exactly once.
func (m *Machine) CheckInvariant() error {
	counts := make(map[string]int, len(m.universe))
	for _, o := range m.pool {
		counts[o.ID]++
	}
	if m.slot != nil {
		counts[m.slot.ID]++
	}
	if len(counts) != len(m.universe) {
		return fmt.Errorf("universe has %d options, state holds %d distinct ids", len(m.universe), len(counts))
	}
	for _, o := range m.universe {
		switch n := counts[o.ID]; n {
		case 1:
		case 0:
			return fmt.Errorf("option %s is missing", o.ID)
		default:
			return fmt.Errorf("option %s appears %d times", o.ID, n)
		}
	}
	return nil
}
