package exercise

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dropcheck/internal/exchange"
	"github.com/abhisek/dropcheck/internal/ui/components"
	"github.com/abhisek/dropcheck/internal/ui/theme"
)

func (s *ExerciseScreen) View(width, height int) string {
	snap := s.machine.Snapshot()

	var b strings.Builder

	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(s.exercise.Prompt))
	b.WriteString("\n")
	if s.exercise.Picture != "" {
		b.WriteString(theme.Subtitle.Width(width).Render("[picture: " + s.exercise.Picture + "]"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	zoneWidth := min(max((width-8)/2, 20), 36)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.renderZones(snap, zoneWidth)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.statusLine(snap)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.renderButtons()))

	return b.String()
}

// renderZones lays out the answer slot beside the option pool.
func (s *ExerciseScreen) renderZones(snap exchange.Snapshot, zoneWidth int) string {
	labels := make([]string, len(snap.Pool))
	for i, o := range snap.Pool {
		labels[i] = o.Label
	}

	pool := components.NewDropList("Options", labels, zoneWidth)
	pool.Disabled = s.machine.PoolDropDisabled()

	box := components.AnswerBox{
		Focused:     s.drag == nil && s.focus == areaSlot,
		Disabled:    s.machine.SlotDropDisabled(),
		Correctness: snap.Correctness,
		Width:       zoneWidth,
	}
	if snap.Slot != nil {
		box.Label = snap.Slot.Label
	}

	switch {
	case s.drag == nil:
		if s.focus == areaPool {
			pool.Cursor = s.cursor
		}
	case s.drag.source.DroppableID == exchange.DroppableOptions:
		pool.Lifted = s.drag.source.Index
	default:
		box.Lifted = true
	}

	if s.drag != nil {
		switch s.drag.target {
		case areaSlot:
			box.Targeted = true
		case areaPool:
			pool.Targeted = true
			pool.InsertAt = s.markerIndex()
		}
	}

	left := box.View()
	right := pool.View()
	if h := lipgloss.Height(right); lipgloss.Height(left) < h {
		left = lipgloss.NewStyle().Height(h).Render(left)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// markerIndex maps the drag's insertion index to a row of the rendered pool.
// A pool drag still shows the lifted item, so indices at or after it shift
// down by one.
func (s *ExerciseScreen) markerIndex() int {
	d := s.drag
	if d.source.DroppableID == exchange.DroppableOptions && d.index > d.source.Index {
		return d.index + 1
	}
	return d.index
}

func (s *ExerciseScreen) statusLine(snap exchange.Snapshot) string {
	if s.drag != nil {
		where := "the answer slot"
		if s.drag.target == areaPool {
			where = "the options"
		}
		return theme.Body.Render(fmt.Sprintf("Dragging %s over %s. Space to drop, Esc to cancel.", s.drag.label, where))
	}

	switch s.machine.Mode() {
	case exchange.ModeCheckedCorrect:
		return theme.Correct.Render("Correct! Well done.")
	case exchange.ModeCheckedIncorrect:
		return theme.Incorrect.Render("Not quite. Press R to try again.")
	case exchange.ModeAnswered:
		if s.outcome == exchange.OutcomeSwapped && s.evicted != "" {
			return theme.Body.Render(fmt.Sprintf("%s went back to the options. Press C to check.", s.evicted))
		}
		return theme.Body.Render("Press C to check your answer.")
	}
	if len(snap.Pool) == 0 {
		return theme.Hint.Render("No options left.")
	}
	return theme.Hint.Render("Pick up an option with Space and drop it in the answer slot.")
}

func (s *ExerciseScreen) renderButtons() string {
	buttons := s.buttons()
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if b.Label == "Next" && s.next == nil {
			continue
		}
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
