package exercise

import (
	"context"
	"log"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dropcheck/internal/dnd"
	"github.com/abhisek/dropcheck/internal/exchange"
	ex "github.com/abhisek/dropcheck/internal/exercise"
	"github.com/abhisek/dropcheck/internal/router"
	"github.com/abhisek/dropcheck/internal/screen"
	"github.com/abhisek/dropcheck/internal/session"
	"github.com/abhisek/dropcheck/internal/store"
	"github.com/abhisek/dropcheck/internal/ui/components"
	"github.com/abhisek/dropcheck/internal/ui/layout"
)

// area is one side of the exercise: the option pool or the answer slot.
type area int

const (
	areaPool area = iota
	areaSlot
)

// drag is a keyboard drag in progress.
type drag struct {
	id     string
	label  string
	source dnd.Location
	target area
	index  int // insertion index when target is areaPool
}

// NextFunc builds the screen for the exercise after this one. ok is false
// when there is none.
type NextFunc func() (next screen.Screen, ok bool)

// ExerciseScreen lets the learner drag an option into the answer slot and
// check it. It only talks to the machine through gesture events and the
// check/reset actions.
type ExerciseScreen struct {
	exercise ex.Exercise
	machine  *exchange.Machine
	journal  store.Journal
	session  *session.Session
	next     NextFunc

	keys    keyMap
	focus   area
	cursor  int
	drag    *drag
	outcome exchange.Outcome
	evicted string // label sent back to the pool by the last swap
}

var _ screen.Screen = (*ExerciseScreen)(nil)
var _ screen.KeyHintProvider = (*ExerciseScreen)(nil)
var _ screen.EscapeCapturer = (*ExerciseScreen)(nil)

// New creates a screen for e. journal and next may be nil.
func New(e ex.Exercise, sess *session.Session, journal store.Journal, next NextFunc) (*ExerciseScreen, error) {
	m, err := e.NewMachine()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		sess = session.New()
	}
	return &ExerciseScreen{
		exercise: e,
		machine:  m,
		journal:  journal,
		session:  sess,
		next:     next,
		keys:     defaultKeyMap(),
	}, nil
}

func (s *ExerciseScreen) Init() tea.Cmd {
	return nil
}

func (s *ExerciseScreen) Title() string {
	return "Exercise"
}

// CapturesEscape is true while a drag is in flight, so Esc cancels it.
func (s *ExerciseScreen) CapturesEscape() bool {
	return s.drag != nil
}

// Machine exposes the state machine for read-only inspection.
func (s *ExerciseScreen) Machine() *exchange.Machine {
	return s.machine
}

func (s *ExerciseScreen) KeyHints() []layout.KeyHint {
	var bindings []key.Binding
	if s.drag != nil {
		bindings = []key.Binding{s.keys.Up, s.keys.Switch, s.keys.Drop, s.keys.Cancel}
	} else {
		bindings = []key.Binding{s.keys.Up, s.keys.Switch, s.keys.Grab}
		for _, b := range s.buttons() {
			if b.Active {
				bindings = append(bindings, b.Binding)
			}
		}
		bindings = append(bindings, key.NewBinding(key.WithHelp("Esc", "Back")))
	}

	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

func (s *ExerciseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.drag != nil {
		return s, s.handleDragKey(kmsg)
	}
	return s, s.handleKey(kmsg)
}

func (s *ExerciseScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Grab):
		s.pickUp()
		return nil
	case key.Matches(msg, s.keys.Up):
		s.moveCursor(-1)
		return nil
	case key.Matches(msg, s.keys.Down):
		s.moveCursor(1)
		return nil
	case key.Matches(msg, s.keys.Switch):
		if s.focus == areaPool {
			s.focus = areaSlot
		} else {
			s.focus = areaPool
		}
		return nil
	}

	for _, b := range s.buttons() {
		if _, cmd, handled := b.Update(msg); handled {
			return cmd
		}
	}
	return nil
}

func (s *ExerciseScreen) handleDragKey(msg tea.KeyMsg) tea.Cmd {
	d := s.drag
	switch {
	case key.Matches(msg, s.keys.Cancel):
		s.finishDrag(nil)
	case key.Matches(msg, s.keys.Drop):
		if d.target == areaSlot {
			s.finishDrag(dnd.At(exchange.DroppableAnswer, 0))
		} else {
			s.finishDrag(dnd.At(exchange.DroppableOptions, d.index))
		}
	case key.Matches(msg, s.keys.Switch):
		if d.target == areaPool && !s.machine.SlotDropDisabled() {
			d.target = areaSlot
		} else if d.target == areaSlot && !s.machine.PoolDropDisabled() {
			d.target = areaPool
		}
	case key.Matches(msg, s.keys.Up):
		if d.target == areaPool && d.index > 0 {
			d.index--
		}
	case key.Matches(msg, s.keys.Down):
		if d.target == areaPool && d.index < s.insertLimit() {
			d.index++
		}
	}
	return nil
}

// insertLimit is the last valid insertion index in the pool for the
// current drag.
func (s *ExerciseScreen) insertLimit() int {
	n := len(s.machine.Snapshot().Pool)
	if s.drag != nil && s.drag.source.DroppableID == exchange.DroppableOptions {
		n--
	}
	return n
}

func (s *ExerciseScreen) moveCursor(delta int) {
	if s.focus != areaPool {
		return
	}
	s.cursor += delta
	s.clampCursor()
}

// clampCursor keeps the pool cursor on an existing option.
func (s *ExerciseScreen) clampCursor() {
	n := len(s.machine.Snapshot().Pool)
	s.cursor = min(max(s.cursor, 0), max(n-1, 0))
}

// pickUp starts a drag from the focused side.
func (s *ExerciseScreen) pickUp() {
	snap := s.machine.Snapshot()

	var d drag
	switch s.focus {
	case areaPool:
		if s.cursor >= len(snap.Pool) {
			return
		}
		opt := snap.Pool[s.cursor]
		d = drag{
			id:     opt.ID,
			label:  opt.Label,
			source: dnd.Location{DroppableID: exchange.DroppableOptions, Index: s.cursor},
			target: areaSlot,
		}
	case areaSlot:
		if snap.Slot == nil {
			return
		}
		d = drag{
			id:     snap.Slot.ID,
			label:  snap.Slot.Label,
			source: dnd.Location{DroppableID: exchange.DroppableAnswer},
			target: areaPool,
			index:  min(s.cursor, len(snap.Pool)),
		}
	}

	s.machine.DragStart(dnd.DragStart{DraggableID: d.id, Source: d.source})
	s.drag = &d
	log.Printf("drag start %s from %s", d.id, d.source.DroppableID)
}

func (s *ExerciseScreen) finishDrag(dest *dnd.Location) {
	d := s.drag
	s.drag = nil

	prevSlot := s.machine.Answer()
	s.outcome = s.machine.DragEnd(dnd.DropResult{
		DraggableID: d.id,
		Source:      d.source,
		Destination: dest,
	})
	log.Printf("drag end %s: %s", d.id, s.outcome)

	s.evicted = ""
	switch s.outcome {
	case exchange.OutcomeSwapped:
		if prevSlot != nil {
			s.evicted = prevSlot.Label
		}
		s.focus = areaSlot
	case exchange.OutcomePlaced:
		s.focus = areaSlot
	case exchange.OutcomeReturned, exchange.OutcomeReordered:
		s.focus = areaPool
		s.cursor = dest.Index
	}
	s.clampCursor()
}

// buttons returns the action buttons enabled for the current mode.
func (s *ExerciseScreen) buttons() []components.Button {
	mode := s.machine.Mode()
	hasNext := s.next != nil
	return []components.Button{
		components.NewButton("Check", s.keys.Check, mode == exchange.ModeAnswered, s.check),
		components.NewButton("Try again", s.keys.Retry, mode == exchange.ModeCheckedIncorrect, s.retry),
		components.NewButton("Next", s.keys.Next, mode == exchange.ModeCheckedCorrect && hasNext, s.advance),
	}
}

func (s *ExerciseScreen) check() tea.Cmd {
	answer := s.machine.Answer()
	c, ok := s.machine.Check()
	if !ok {
		return nil
	}
	correct := c == exchange.CorrectnessCorrect
	s.session.RecordCheck(s.exercise.ID, correct)
	log.Printf("check %s answer=%s result=%s", s.exercise.ID, answer.ID, c)

	return s.journalCmd(func(ctx context.Context, j store.Journal) error {
		return j.AppendCheck(ctx, store.CheckEventData{
			SessionID:  s.session.ID,
			ExerciseID: s.exercise.ID,
			AnswerID:   answer.ID,
			Correct:    correct,
		})
	})
}

func (s *ExerciseScreen) retry() tea.Cmd {
	evicted := s.machine.Reset()
	s.outcome = ""
	s.evicted = ""
	s.focus = areaPool
	if evicted == nil {
		return nil
	}
	return s.journalCmd(func(ctx context.Context, j store.Journal) error {
		return j.AppendReset(ctx, store.ResetEventData{
			SessionID:  s.session.ID,
			ExerciseID: s.exercise.ID,
			AnswerID:   evicted.ID,
		})
	})
}

func (s *ExerciseScreen) advance() tea.Cmd {
	next, ok := s.next()
	if !ok {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// journalCmd runs a journal write off the update loop. Failures are logged
// and otherwise ignored; the exercise never depends on the journal.
func (s *ExerciseScreen) journalCmd(write func(context.Context, store.Journal) error) tea.Cmd {
	if s.journal == nil {
		return nil
	}
	j := s.journal
	return func() tea.Msg {
		if err := write(context.Background(), j); err != nil {
			log.Printf("journal: %v", err)
		}
		return nil
	}
}
