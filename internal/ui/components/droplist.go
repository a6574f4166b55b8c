package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dropcheck/internal/ui/theme"
)

// DropList renders one droppable list: its items, the keyboard cursor, the
// item currently lifted by a drag and where a drop would insert.
type DropList struct {
	Title    string
	Items    []string
	Cursor   int  // -1 hides the cursor
	Lifted   int  // -1 when nothing in this list is being dragged
	InsertAt int  // -1 hides the insertion marker
	Targeted bool // the list is the current drop target
	Disabled bool // the list refuses drops
	Width    int
}

// NewDropList creates a list with no cursor, lift or marker.
func NewDropList(title string, items []string, width int) DropList {
	return DropList{
		Title:    title,
		Items:    items,
		Cursor:   -1,
		Lifted:   -1,
		InsertAt: -1,
		Width:    width,
	}
}

// View renders the list inside its zone border.
func (l DropList) View() string {
	var b strings.Builder
	marker := theme.InsertMarker.Render("  ── drop here ──")

	b.WriteString(theme.Subtitle.Render(l.Title))
	b.WriteString("\n")

	if len(l.Items) == 0 && l.InsertAt < 0 {
		b.WriteString(theme.Hint.Render("  (empty)"))
	}
	for i, item := range l.Items {
		if i == l.InsertAt {
			b.WriteString(marker + "\n")
		}
		switch {
		case i == l.Lifted:
			b.WriteString(theme.Dragging.Render("  ⋯ " + item))
		case i == l.Cursor:
			b.WriteString(theme.Selected.Render("  ▸ " + item))
		default:
			b.WriteString(theme.Unselected.Render("    " + item))
		}
		if i < len(l.Items)-1 || l.InsertAt == len(l.Items) {
			b.WriteString("\n")
		}
	}
	if l.InsertAt == len(l.Items) {
		b.WriteString(marker)
	}

	style := theme.Zone
	switch {
	case l.Disabled:
		style = theme.ZoneDisabled
	case l.Targeted:
		style = theme.ZoneTarget
	}
	if l.Width > 0 {
		style = style.Width(l.Width)
	}
	return style.Render(b.String())
}

// Height returns the rendered height, for aligning side-by-side zones.
func (l DropList) Height() int {
	return lipgloss.Height(l.View())
}
