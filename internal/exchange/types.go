package exchange

// Droppable IDs understood by the machine.
const (
	DroppableOptions = "options"
	DroppableAnswer  = "answer"
)

// Option is an immutable candidate answer. Identity is by ID.
type Option struct {
	ID      string
	Label   string
	Payload any
}

// Origin says which side of the exercise a location belongs to.
type Origin int

const (
	OriginUnknown Origin = iota
	OriginPool
	OriginSlot
)

func (o Origin) String() string {
	switch o {
	case OriginPool:
		return "pool"
	case OriginSlot:
		return "slot"
	default:
		return "unknown"
	}
}

// OriginOf maps a droppable ID to its origin.
func OriginOf(droppableID string) Origin {
	switch droppableID {
	case DroppableOptions:
		return OriginPool
	case DroppableAnswer:
		return OriginSlot
	default:
		return OriginUnknown
	}
}

// Correctness is the result of the last check.
type Correctness string

const (
	CorrectnessUnknown   Correctness = "unknown"
	CorrectnessCorrect   Correctness = "correct"
	CorrectnessIncorrect Correctness = "incorrect"
)

// Mode is the externally visible state of the exercise.
type Mode string

const (
	ModeIdle             Mode = "idle"
	ModeAnswered         Mode = "answered"
	ModeCheckedCorrect   Mode = "checked_correct"
	ModeCheckedIncorrect Mode = "checked_incorrect"
)

// Gesture holds the transient drag flags. At most one is true.
type Gesture struct {
	FromSlot bool
	FromPool bool
}

// Active reports whether a drag is in progress.
func (g Gesture) Active() bool {
	return g.FromSlot || g.FromPool
}

// Outcome classifies what a DragEnd did to the exercise state.
type Outcome string

const (
	OutcomeCancelled Outcome = "cancelled" // dropped outside any target
	OutcomePlaced    Outcome = "placed"    // pool -> empty slot
	OutcomeSwapped   Outcome = "swapped"   // pool -> occupied slot
	OutcomeReturned  Outcome = "returned"  // slot -> pool
	OutcomeReordered Outcome = "reordered" // pool -> pool
	OutcomeIgnored   Outcome = "ignored"   // inconsistent event, nothing changed
)

// Changed reports whether the outcome altered pool or slot.
func (o Outcome) Changed() bool {
	switch o {
	case OutcomePlaced, OutcomeSwapped, OutcomeReturned, OutcomeReordered:
		return true
	}
	return false
}

// Snapshot is a read-only copy of the machine state. Mutating it does not
// affect the machine.
type Snapshot struct {
	Pool        []Option
	Slot        *Option
	Gesture     Gesture
	Correctness Correctness
}

// PoolIDs returns the pool ids in order.
func (s Snapshot) PoolIDs() []string {
	ids := make([]string, len(s.Pool))
	for i, o := range s.Pool {
		ids[i] = o.ID
	}
	return ids
}

// SlotID returns the occupant id, or "" when the slot is empty.
func (s Snapshot) SlotID() string {
	if s.Slot == nil {
		return ""
	}
	return s.Slot.ID
}
