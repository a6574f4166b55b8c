package app

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ex "github.com/abhisek/dropcheck/internal/exercise"
	"github.com/abhisek/dropcheck/internal/router"
	"github.com/abhisek/dropcheck/internal/screen"
	exercisescreen "github.com/abhisek/dropcheck/internal/screens/exercise"
	"github.com/abhisek/dropcheck/internal/screens/home"
	"github.com/abhisek/dropcheck/internal/screens/welcome"
	"github.com/abhisek/dropcheck/internal/session"
	"github.com/abhisek/dropcheck/internal/store"
	"github.com/abhisek/dropcheck/internal/ui/layout"
)

// Options configures a TUI run.
type Options struct {
	Catalog *ex.Catalog
	Journal store.Journal // optional

	// Session is shared by every screen; a new one is created when nil.
	Session *session.Session

	// StartExercise opens that exercise above the home screen.
	StartExercise string

	// LogFile receives debug logs. Logs are discarded when empty.
	LogFile string

	// Splash shows the welcome animation before the home screen. It is
	// skipped when StartExercise is set.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen, plus the start
// exercise on top when one is set.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Catalog == nil {
		opts.Catalog = ex.Builtin()
	}
	if opts.Session == nil {
		opts.Session = session.New()
	}

	homeScreen := home.New(opts.Catalog, opts.Session, opts.Journal)
	var first screen.Screen = homeScreen
	if opts.Splash && opts.StartExercise == "" {
		first = welcome.New(func() screen.Screen { return homeScreen })
	}

	r := router.New(first)
	if opts.StartExercise != "" {
		s, err := exercisescreen.Play(opts.Catalog, opts.StartExercise, opts.Session, opts.Journal)
		if err != nil {
			return AppModel{}, err
		}
		r.Push(s)
	}

	return AppModel{
		router:  r,
		session: opts.Session,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.EscapeCapturer); ok && c.CapturesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the active screen inside the header and footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.session.SolvedCount(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "dropcheck")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model, err := newAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
