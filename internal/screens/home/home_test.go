package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ex "github.com/abhisek/dropcheck/internal/exercise"
	"github.com/abhisek/dropcheck/internal/router"
	boardscreen "github.com/abhisek/dropcheck/internal/screens/board"
	exercisescreen "github.com/abhisek/dropcheck/internal/screens/exercise"
	"github.com/abhisek/dropcheck/internal/session"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestHomeScreen_ListsCatalog(t *testing.T) {
	c := ex.Builtin()
	h := New(c, nil, nil)

	require.Len(t, h.menu.Items, c.Len()+3)
	assert.True(t, h.menu.Items[c.Len()].Disabled, "history needs a journal")
	assert.Equal(t, ex.DefaultID, h.menu.Items[0].Label)
	assert.Equal(t, "Exit", h.menu.Items[len(h.menu.Items)-1].Label)
	assert.Contains(t, h.View(100, 30), "0/3")
}

func TestHomeScreen_EnterPushesExercise(t *testing.T) {
	h := New(ex.Builtin(), nil, nil)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*exercisescreen.ExerciseScreen)
	assert.True(t, ok)
}

func TestHomeScreen_TaskBoard(t *testing.T) {
	c := ex.Builtin()
	h := New(c, nil, nil)

	for range c.Len() {
		h.Update(specialKey(tea.KeyDown))
	}
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*boardscreen.BoardScreen)
	assert.True(t, ok)
}

func TestHomeScreen_MarksSolved(t *testing.T) {
	sess := session.New()
	h := New(ex.Builtin(), sess, nil)

	sess.RecordCheck(ex.DefaultID, true)
	out := h.View(100, 30)
	assert.True(t, h.menu.Items[0].Done)
	assert.False(t, h.menu.Items[1].Done)
	assert.Contains(t, out, "1/3")
}
