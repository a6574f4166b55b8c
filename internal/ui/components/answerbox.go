package components

import (
	"github.com/abhisek/dropcheck/internal/exchange"
	"github.com/abhisek/dropcheck/internal/ui/theme"
)

// AnswerBox renders the single answer slot.
type AnswerBox struct {
	Label       string // occupant label, "" when empty
	Focused     bool
	Lifted      bool // the occupant is being dragged out
	Targeted    bool
	Disabled    bool
	Correctness exchange.Correctness
	Width       int
}

// View renders the slot, colored by the last check when there is one.
func (a AnswerBox) View() string {
	var body string
	switch {
	case a.Label == "":
		body = theme.Hint.Render("drop your answer here")
	case a.Lifted:
		body = theme.Dragging.Render("⋯ " + a.Label)
	case a.Focused:
		body = theme.Selected.Render("▸ " + a.Label)
	default:
		body = theme.Body.Bold(true).Render(a.Label)
	}

	content := theme.Subtitle.Render("Answer") + "\n" + body

	style := theme.Zone
	switch {
	case a.Disabled:
		style = theme.ZoneDisabled
	case a.Targeted:
		style = theme.ZoneTarget
	case a.Correctness == exchange.CorrectnessCorrect:
		style = theme.ZoneCorrect
	case a.Correctness == exchange.CorrectnessIncorrect:
		style = theme.ZoneIncorrect
	}
	if a.Width > 0 {
		style = style.Width(a.Width)
	}
	return style.Render(content)
}
