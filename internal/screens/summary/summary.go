package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ex "github.com/abhisek/dropcheck/internal/exercise"
	"github.com/abhisek/dropcheck/internal/router"
	"github.com/abhisek/dropcheck/internal/screen"
	"github.com/abhisek/dropcheck/internal/session"
	"github.com/abhisek/dropcheck/internal/ui/components"
	"github.com/abhisek/dropcheck/internal/ui/layout"
	"github.com/abhisek/dropcheck/internal/ui/theme"
)

// SummaryScreen is shown after the last exercise of the catalog.
type SummaryScreen struct {
	session *session.Session
	catalog *ex.Catalog
	now     func() time.Time
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sess *session.Session, catalog *ex.Catalog) *SummaryScreen {
	return &SummaryScreen{session: sess, catalog: catalog, now: time.Now}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.session == nil || s.catalog == nil {
		return ""
	}
	all := s.catalog.All()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("All exercises done!"))
	b.WriteString("\n\n")

	elapsed := s.now().Sub(s.session.StartTime)
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Solved", s.session.SolvedCount(), len(all), min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	for _, e := range all {
		attempts := s.session.Attempts(e.ID)
		var line string
		switch {
		case s.session.IsSolved(e.ID):
			line = theme.Correct.Render("✓ ") + theme.Body.Render(fmt.Sprintf("%-20s %s", e.ID, plural(attempts, "check")))
		case attempts > 0:
			line = theme.Incorrect.Render("✗ ") + theme.Body.Render(fmt.Sprintf("%-20s %s", e.ID, plural(attempts, "check")))
		default:
			line = theme.Hint.Render(fmt.Sprintf("· %-20s skipped", e.ID))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
