package components

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dropcheck/internal/exchange"
)

func TestDropList_InsertMarker(t *testing.T) {
	l := NewDropList("Options", []string{"Apple", "Banana"}, 30)
	assert.NotContains(t, l.View(), "drop here")

	l.InsertAt = 1
	out := l.View()
	require.Contains(t, out, "drop here")
	assert.Less(t, strings.Index(out, "Apple"), strings.Index(out, "drop here"))
	assert.Less(t, strings.Index(out, "drop here"), strings.Index(out, "Banana"))

	l.InsertAt = 2
	out = l.View()
	assert.Less(t, strings.Index(out, "Banana"), strings.Index(out, "drop here"))
}

func TestDropList_Empty(t *testing.T) {
	l := NewDropList("Done", nil, 20)
	assert.Contains(t, l.View(), "(empty)")

	l.InsertAt = 0
	assert.NotContains(t, l.View(), "(empty)")
	assert.Contains(t, l.View(), "drop here")
}

func TestAnswerBox(t *testing.T) {
	assert.Contains(t, AnswerBox{}.View(), "drop your answer here")
	assert.Contains(t, AnswerBox{Label: "Strawberry", Correctness: exchange.CorrectnessCorrect}.View(), "Strawberry")
}

func TestButton(t *testing.T) {
	pressed := 0
	b := NewButton("Check", key.NewBinding(key.WithKeys("c"), key.WithHelp("C", "Check")), false, func() tea.Cmd {
		pressed++
		return nil
	})
	c := tea.KeyPressMsg{Code: 'c', Text: "c"}

	_, _, handled := b.Update(c)
	assert.False(t, handled, "inactive button ignores its key")

	b.Active = true
	_, _, handled = b.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.False(t, handled)
	_, _, handled = b.Update(c)
	assert.True(t, handled)
	assert.Equal(t, 1, pressed)
	assert.Contains(t, b.View(), "C  Check")
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var chosen string
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b", Action: func() tea.Cmd { chosen = "b"; return nil }},
		{Label: "c", Disabled: true},
		{Label: "d", Action: func() tea.Cmd { chosen = "d"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "d", chosen)
}

func TestProgressBar(t *testing.T) {
	assert.Contains(t, NewProgressBar("Solved", 1, 3, 30).View(), "1/3")
	assert.Contains(t, NewProgressBar("", 0, 0, 10).View(), "0/0")
}
