package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dropcheck/internal/router"
	"github.com/abhisek/dropcheck/internal/screen"
	"github.com/abhisek/dropcheck/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const cardArt = `┌───────────┐
│   Apple   │
└───────────┘`

const slotArt = `╭───────────────╮
│               │
╰───────────────╯`

const filledSlotArt = `╭───────────────╮
│  ✓  Apple     │
╰───────────────╯`

// sparkle frames cycle around the filled slot
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home
// screen: a card drops into the answer slot, then the banner appears.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		if w.transitioned {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	cardStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	slotStyle := lipgloss.NewStyle().Foreground(theme.Target)

	// Phase 1: the card hovers above the empty slot.
	if w.elapsed < phase1End {
		sections = append(sections,
			cardStyle.Render(cardArt),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("↓"),
			slotStyle.Render(slotArt))
	} else {
		// Phase 2+: the card is in the slot, with sparkles.
		frame := w.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(lipgloss.NewStyle().Foreground(theme.Success).Render(filledSlotArt), "\n")
		if len(lines) == 3 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
			lines[1] = "   " + lines[1] + "   "
			lines[2] = s2 + "  " + lines[2] + "  " + s1
		}
		sections = append(sections, "", "", strings.Join(lines, "\n"))
	}

	// Phase 3+: banner, tagline and hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Drop your answer, then check it.")
		sections = append(sections, tagline)
	}

	sections = append(sections, "")
	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press any key to continue")
	sections = append(sections, hint)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
