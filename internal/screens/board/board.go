// Package board is the task board screen: tasks are dragged between columns
// with the keyboard.
package board

import (
	"fmt"
	"log"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	bd "github.com/abhisek/dropcheck/internal/board"
	"github.com/abhisek/dropcheck/internal/dnd"
	"github.com/abhisek/dropcheck/internal/screen"
	"github.com/abhisek/dropcheck/internal/ui/components"
	"github.com/abhisek/dropcheck/internal/ui/layout"
	"github.com/abhisek/dropcheck/internal/ui/theme"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Grab   key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "tab")),
		Grab:   key.NewBinding(key.WithKeys("space", "enter")),
		Cancel: key.NewBinding(key.WithKeys("esc")),
	}
}

type drag struct {
	taskID string
	source dnd.Location
	column int
	index  int
}

// BoardScreen shows every column of a board side by side.
type BoardScreen struct {
	board  *bd.Board
	keys   keyMap
	column int
	row    int
	drag   *drag
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)
var _ screen.EscapeCapturer = (*BoardScreen)(nil)

// New creates a board screen. A nil board shows the sample board.
func New(b *bd.Board) *BoardScreen {
	if b == nil {
		b = bd.Sample()
	}
	return &BoardScreen{board: b, keys: defaultKeyMap()}
}

func (s *BoardScreen) Init() tea.Cmd {
	return nil
}

func (s *BoardScreen) Title() string {
	return "Task board"
}

func (s *BoardScreen) CapturesEscape() bool {
	return s.drag != nil
}

// Board returns the underlying board.
func (s *BoardScreen) Board() *bd.Board {
	return s.board
}

func (s *BoardScreen) KeyHints() []layout.KeyHint {
	if s.drag != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Column"},
			{Key: "↑↓", Description: "Position"},
			{Key: "Space", Description: "Drop"},
			{Key: "Esc", Description: "Cancel drag"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Move"},
		{Key: "Space", Description: "Pick up"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.drag != nil {
		s.handleDragKey(kmsg)
	} else {
		s.handleKey(kmsg)
	}
	return s, nil
}

func (s *BoardScreen) handleKey(msg tea.KeyMsg) {
	cols := s.board.Columns()
	switch {
	case key.Matches(msg, s.keys.Left):
		if s.column > 0 {
			s.column--
		}
	case key.Matches(msg, s.keys.Right):
		if s.column < len(cols)-1 {
			s.column++
		}
	case key.Matches(msg, s.keys.Up):
		s.row--
	case key.Matches(msg, s.keys.Down):
		s.row++
	case key.Matches(msg, s.keys.Grab):
		tasks := cols[s.column].Tasks
		if len(tasks) == 0 {
			return
		}
		d := &drag{
			taskID: tasks[s.row].ID,
			source: dnd.Location{DroppableID: cols[s.column].ID, Index: s.row},
			column: s.column,
			index:  s.row,
		}
		s.board.DragStart(dnd.DragStart{DraggableID: d.taskID, Source: d.source})
		s.drag = d
		log.Printf("board drag start %s from %s", d.taskID, d.source.DroppableID)
		return
	}
	s.clampRow()
}

func (s *BoardScreen) handleDragKey(msg tea.KeyMsg) {
	d := s.drag
	cols := s.board.Columns()
	switch {
	case key.Matches(msg, s.keys.Cancel):
		s.finish(nil)
	case key.Matches(msg, s.keys.Grab):
		s.finish(dnd.At(cols[d.column].ID, d.index))
	case key.Matches(msg, s.keys.Left):
		if d.column > 0 && !s.board.DropDisabled(d.column-1) {
			d.column--
			d.index = min(d.index, s.insertLimit(d.column))
		}
	case key.Matches(msg, s.keys.Right):
		if d.column < len(cols)-1 {
			d.column++
			d.index = min(d.index, s.insertLimit(d.column))
		}
	case key.Matches(msg, s.keys.Up):
		if d.index > 0 {
			d.index--
		}
	case key.Matches(msg, s.keys.Down):
		if d.index < s.insertLimit(d.column) {
			d.index++
		}
	}
}

// insertLimit is the last insertion index in column i for the current drag.
func (s *BoardScreen) insertLimit(i int) int {
	n := len(s.board.Columns()[i].Tasks)
	if i == s.columnOf(s.drag.source.DroppableID) {
		n--
	}
	return n
}

func (s *BoardScreen) columnOf(id string) int {
	for i, c := range s.board.Columns() {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *BoardScreen) finish(dest *dnd.Location) {
	d := s.drag
	s.drag = nil
	moved := s.board.DragEnd(dnd.DropResult{
		DraggableID: d.taskID,
		Source:      d.source,
		Destination: dest,
	})
	log.Printf("board drag end %s moved=%t", d.taskID, moved)
	if moved {
		s.column = d.column
		s.row = d.index
	}
	s.clampRow()
}

func (s *BoardScreen) clampRow() {
	n := len(s.board.Columns()[s.column].Tasks)
	s.row = min(max(s.row, 0), max(n-1, 0))
}

func (s *BoardScreen) View(width, height int) string {
	cols := s.board.Columns()
	colWidth := min(max((width-4)/len(cols)-2, 16), 30)

	views := make([]string, 0, len(cols)*2)
	for i, c := range cols {
		items := make([]string, len(c.Tasks))
		for j, t := range c.Tasks {
			items[j] = t.Content
		}
		list := components.NewDropList(c.Title, items, colWidth)
		list.Disabled = c.DropDisabled

		switch {
		case s.drag == nil:
			if i == s.column {
				list.Cursor = s.row
			}
		default:
			if c.ID == s.drag.source.DroppableID {
				list.Lifted = s.drag.source.Index
			}
			if i == s.drag.column {
				list.Targeted = true
				list.InsertAt = s.markerIndex(c.ID)
			}
		}

		if i > 0 {
			views = append(views, " ")
		}
		views = append(views, list.View())
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Task board"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, views...)))
	b.WriteString("\n\n")

	status := theme.Hint.Render("Tasks only move forward. Pick one up with Space.")
	if s.drag != nil {
		status = theme.Body.Render(fmt.Sprintf("Moving %s to %s", s.taskContent(s.drag.taskID), cols[s.drag.column].Title))
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(status))
	return b.String()
}

// markerIndex maps the drag's insertion index to a rendered row; the lifted
// task still occupies its row in the home column.
func (s *BoardScreen) markerIndex(columnID string) int {
	d := s.drag
	if columnID == d.source.DroppableID && d.index > d.source.Index {
		return d.index + 1
	}
	return d.index
}

func (s *BoardScreen) taskContent(id string) string {
	for _, c := range s.board.Columns() {
		for _, t := range c.Tasks {
			if t.ID == id {
				return t.Content
			}
		}
	}
	return id
}
