package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ex "github.com/abhisek/dropcheck/internal/exercise"
	"github.com/abhisek/dropcheck/internal/router"
	"github.com/abhisek/dropcheck/internal/session"
)

func testSummary() *SummaryScreen {
	sess := session.New()
	sess.RecordCheck("strawberry", false)
	sess.RecordCheck("strawberry", true)
	sess.RecordCheck("capital-fr", false)

	s := New(sess, ex.Builtin())
	s.now = func() time.Time { return sess.StartTime.Add(95 * time.Second) }
	return s
}

func TestSummaryScreen_Title(t *testing.T) {
	assert.Equal(t, "Summary", testSummary().Title())
}

func TestSummaryScreen_Display(t *testing.T) {
	view := testSummary().View(80, 24)
	assert.Contains(t, view, "Time: 1:35")
	assert.Contains(t, view, "1/3")
	assert.Contains(t, view, "2 checks")
	assert.Contains(t, view, "1 check")
	assert.Contains(t, view, "skipped")
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := testSummary()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := testSummary()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	hints := testSummary().KeyHints()
	require.Len(t, hints, 2)
	assert.Equal(t, "Enter", hints[0].Key)
}
