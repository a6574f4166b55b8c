package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dropcheck/internal/screen"
	"github.com/abhisek/dropcheck/internal/store"
	"github.com/abhisek/dropcheck/internal/ui/layout"
	"github.com/abhisek/dropcheck/internal/ui/theme"
)

// recentPerExercise is how many checks an expanded row lists.
const recentPerExercise = 10

type historyLoadedMsg struct {
	Stats []store.ExerciseStat
	Err   error
}

type checksLoadedMsg struct {
	ExerciseID string
	Checks     []store.CheckEvent
	Err        error
}

// HistoryScreen lists journaled results per exercise. Enter expands a row
// into its most recent checks.
type HistoryScreen struct {
	journal  store.Journal
	stats    []store.ExerciseStat
	checks   map[string][]store.CheckEvent // exerciseID → recent checks
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(journal store.Journal) *HistoryScreen {
	return &HistoryScreen{
		journal:  journal,
		checks:   make(map[string][]store.CheckEvent),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		stats, err := s.journal.ExerciseStats(context.Background())
		return historyLoadedMsg{Stats: stats, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case checksLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.checks[msg.ExerciseID] = msg.Checks
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.stats)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.stats) == 0 {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			id := s.stats[s.selected].ExerciseID
			if _, ok := s.checks[id]; s.expanded[s.selected] && !ok {
				return s, s.loadChecks(id)
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadChecks(exerciseID string) tea.Cmd {
	return func() tea.Msg {
		checks, err := s.journal.RecentChecks(context.Background(), store.QueryOpts{
			Limit:      recentPerExercise,
			ExerciseID: exerciseID,
		})
		return checksLoadedMsg{ExerciseID: exerciseID, Checks: checks, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.stats) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No checks yet. Solve an exercise!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, st := range s.stats {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-20s %d checks  %.0f%% correct  %d/%d first try  %d resets",
			prefix, st.ExerciseID, st.Checks, st.Accuracy()*100, st.FirstTry, st.Sessions, st.Resets)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderChecks(st.ExerciseID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderChecks(exerciseID string, width int) string {
	checks, ok := s.checks[exerciseID]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    Loading...")) + "\n"
	}

	var b strings.Builder
	for _, c := range checks {
		mark, style := "✗", lipgloss.NewStyle().Foreground(theme.Error)
		if c.Correct {
			mark, style = "✓", lipgloss.NewStyle().Foreground(theme.Success)
		}
		line := fmt.Sprintf("    %s %s  %s", mark, c.Timestamp.Local().Format("Jan 02 15:04"), c.AnswerID)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
