package exercise

import (
	"slices"

	ex "github.com/abhisek/dropcheck/internal/exercise"
	"github.com/abhisek/dropcheck/internal/screen"
	"github.com/abhisek/dropcheck/internal/screens/summary"
	"github.com/abhisek/dropcheck/internal/session"
	"github.com/abhisek/dropcheck/internal/store"
)

// Play builds the screen for exercise id. Next walks the rest of the
// catalog in load order and ends on the summary.
func Play(c *ex.Catalog, id string, sess *session.Session, journal store.Journal) (*ExerciseScreen, error) {
	e, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		sess = session.New()
	}

	next := func() (screen.Screen, bool) {
		all := c.All()
		i := slices.IndexFunc(all, func(e ex.Exercise) bool { return e.ID == id })
		if i < 0 {
			return nil, false
		}
		if i+1 >= len(all) {
			return summary.New(sess, c), true
		}
		s, err := Play(c, all[i+1].ID, sess, journal)
		if err != nil {
			return nil, false
		}
		return s, true
	}
	return New(e, sess, journal, next)
}
