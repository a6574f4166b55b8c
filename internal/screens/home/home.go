package home

import (
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"

	ex "github.com/abhisek/dropcheck/internal/exercise"
	"github.com/abhisek/dropcheck/internal/router"
	"github.com/abhisek/dropcheck/internal/screen"
	boardscreen "github.com/abhisek/dropcheck/internal/screens/board"
	"github.com/abhisek/dropcheck/internal/screens/history"
	exercisescreen "github.com/abhisek/dropcheck/internal/screens/exercise"
	"github.com/abhisek/dropcheck/internal/session"
	"github.com/abhisek/dropcheck/internal/store"
	"github.com/abhisek/dropcheck/internal/ui/components"
	"github.com/abhisek/dropcheck/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu    components.Menu
	catalog *ex.Catalog
	session *session.Session
	ids     []string // exercise id of each leading menu item
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen listing every exercise in the catalog.
func New(catalog *ex.Catalog, sess *session.Session, journal store.Journal) *HomeScreen {
	if sess == nil {
		sess = session.New()
	}

	var items []components.MenuItem
	var ids []string
	for _, e := range catalog.All() {
		id := e.ID
		ids = append(ids, id)
		items = append(items, components.MenuItem{
			Label:  id,
			Detail: e.Prompt,
			Action: func() tea.Cmd {
				s, err := exercisescreen.Play(catalog, id, sess, journal)
				if err != nil {
					log.Printf("open exercise %s: %v", id, err)
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "History",
		Detail:   "past checks",
		Disabled: journal == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(journal)}
			}
		},
	})
	items = append(items,
		components.MenuItem{Label: "Task board", Detail: "drag tasks between columns", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: boardscreen.New(nil)}
			}
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		menu:    components.NewMenu(items),
		catalog: catalog,
		session: sess,
		ids:     ids,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.markSolved()

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))
	sections = append(sections, renderProgress(h.session.SolvedCount(), len(h.ids), cw))
	sections = append(sections, renderMenu(h.menu, cw))

	content := strings.Join(sections, "\n\n")
	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// markSolved refreshes the check marks, since exercises are solved on
// screens pushed above this one.
func (h *HomeScreen) markSolved() {
	for i, id := range h.ids {
		h.menu.Items[i].Done = h.session.IsSolved(id)
	}
}
