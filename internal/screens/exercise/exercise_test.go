package exercise

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dropcheck/internal/exchange"
	ex "github.com/abhisek/dropcheck/internal/exercise"
	"github.com/abhisek/dropcheck/internal/router"
	"github.com/abhisek/dropcheck/internal/screen"
	"github.com/abhisek/dropcheck/internal/screens/summary"
	"github.com/abhisek/dropcheck/internal/session"
	"github.com/abhisek/dropcheck/internal/store"
)

// --- Mock journal ---

type mockJournal struct {
	checks []store.CheckEventData
	resets []store.ResetEventData
}

func (m *mockJournal) AppendCheck(_ context.Context, data store.CheckEventData) error {
	m.checks = append(m.checks, data)
	return nil
}
func (m *mockJournal) AppendReset(_ context.Context, data store.ResetEventData) error {
	m.resets = append(m.resets, data)
	return nil
}
func (m *mockJournal) RecentChecks(_ context.Context, _ store.QueryOpts) ([]store.CheckEvent, error) {
	return nil, nil
}
func (m *mockJournal) ExerciseStats(_ context.Context) ([]store.ExerciseStat, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func space() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
}

func testScreen(t *testing.T) (*ExerciseScreen, *mockJournal, *session.Session) {
	t.Helper()
	e, err := ex.Builtin().Get(ex.DefaultID)
	require.NoError(t, err)
	j := &mockJournal{}
	sess := session.New()
	s, err := New(e, sess, j, nil)
	require.NoError(t, err)
	return s, j, sess
}

func press(s *ExerciseScreen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

func poolIDs(s *ExerciseScreen) []string {
	return s.Machine().Snapshot().PoolIDs()
}

func TestNewRejectsInvalidExercise(t *testing.T) {
	_, err := New(ex.Exercise{ID: "broken"}, nil, nil, nil)
	require.Error(t, err)
}

func TestExerciseScreen_Title(t *testing.T) {
	s, _, _ := testScreen(t)
	assert.Equal(t, "Exercise", s.Title())
}

func TestExerciseScreen_PlaceAndCheckCorrect(t *testing.T) {
	s, j, sess := testScreen(t)

	press(s, specialKey(tea.KeyDown), specialKey(tea.KeyDown), space())
	assert.True(t, s.CapturesEscape())
	assert.True(t, s.Machine().Gesture().FromPool)

	press(s, space())
	assert.False(t, s.CapturesEscape())
	assert.Equal(t, exchange.OutcomePlaced, s.outcome)
	assert.Equal(t, "option_3", s.Machine().Snapshot().SlotID())
	assert.Equal(t, []string{"option_1", "option_2"}, poolIDs(s))
	assert.Equal(t, exchange.ModeAnswered, s.Machine().Mode())

	cmd := press(s, keyPress('c'))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Equal(t, exchange.ModeCheckedCorrect, s.Machine().Mode())
	assert.True(t, sess.IsSolved(ex.DefaultID))

	require.Len(t, j.checks, 1)
	assert.Equal(t, store.CheckEventData{
		SessionID:  sess.ID,
		ExerciseID: ex.DefaultID,
		AnswerID:   "option_3",
		Correct:    true,
	}, j.checks[0])

	assert.Contains(t, s.View(80, 30), "Correct!")
}

func TestExerciseScreen_CheckIgnoredWhenEmpty(t *testing.T) {
	s, j, sess := testScreen(t)

	cmd := press(s, keyPress('c'))
	assert.Nil(t, cmd)
	assert.Equal(t, exchange.ModeIdle, s.Machine().Mode())
	assert.Zero(t, sess.Attempts(ex.DefaultID))
	assert.Empty(t, j.checks)
}

func TestExerciseScreen_SwapReturnsOccupant(t *testing.T) {
	s, _, _ := testScreen(t)

	// Apple into the slot.
	press(s, space(), space())
	require.Equal(t, "option_1", s.Machine().Snapshot().SlotID())
	assert.Equal(t, areaSlot, s.focus)

	// Banana replaces it.
	press(s, specialKey(tea.KeyTab), space(), space())
	assert.Equal(t, exchange.OutcomeSwapped, s.outcome)
	assert.Equal(t, "option_2", s.Machine().Snapshot().SlotID())
	assert.Equal(t, []string{"option_3", "option_1"}, poolIDs(s))
	assert.Contains(t, s.View(80, 30), "Apple went back")
	require.NoError(t, s.Machine().CheckInvariant())
}

func TestExerciseScreen_ReturnToPoolAtIndex(t *testing.T) {
	s, _, _ := testScreen(t)

	press(s, space(), space())
	require.Equal(t, areaSlot, s.focus)

	press(s, space())
	require.NotNil(t, s.drag)
	assert.Equal(t, areaPool, s.drag.target)
	assert.True(t, s.Machine().Gesture().FromSlot)
	assert.True(t, s.Machine().SlotDropDisabled())

	press(s, specialKey(tea.KeyDown), space())
	assert.Equal(t, exchange.OutcomeReturned, s.outcome)
	assert.Nil(t, s.Machine().Answer())
	assert.Equal(t, []string{"option_2", "option_1", "option_3"}, poolIDs(s))
	assert.Equal(t, areaPool, s.focus)
	assert.Equal(t, 1, s.cursor)
}

func TestExerciseScreen_PoolDragCannotTargetPool(t *testing.T) {
	s, _, _ := testScreen(t)

	press(s, space())
	require.True(t, s.Machine().PoolDropDisabled())

	press(s, specialKey(tea.KeyTab))
	assert.Equal(t, areaSlot, s.drag.target)
}

func TestExerciseScreen_EscCancelsDrag(t *testing.T) {
	s, _, _ := testScreen(t)
	before := s.Machine().Snapshot()

	press(s, specialKey(tea.KeyDown), space())
	require.True(t, s.CapturesEscape())

	cmd := press(s, specialKey(tea.KeyEscape))
	assert.Nil(t, cmd)
	assert.False(t, s.CapturesEscape())
	assert.Equal(t, exchange.OutcomeCancelled, s.outcome)
	assert.Equal(t, before, s.Machine().Snapshot())
	assert.False(t, s.Machine().Gesture().Active())
}

func TestExerciseScreen_RetryAfterIncorrect(t *testing.T) {
	s, j, sess := testScreen(t)

	press(s, space(), space())
	cmd := press(s, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, exchange.ModeCheckedIncorrect, s.Machine().Mode())
	assert.False(t, sess.IsSolved(ex.DefaultID))
	assert.Contains(t, s.View(80, 30), "Not quite")

	// Next is not offered for a wrong answer.
	assert.Nil(t, press(s, keyPress('n')))

	cmd = press(s, keyPress('r'))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, exchange.ModeIdle, s.Machine().Mode())
	assert.Equal(t, []string{"option_2", "option_3", "option_1"}, poolIDs(s))
	require.Len(t, j.resets, 1)
	assert.Equal(t, "option_1", j.resets[0].AnswerID)
}

func TestExerciseScreen_NextReplacesScreen(t *testing.T) {
	e, err := ex.Builtin().Get(ex.DefaultID)
	require.NoError(t, err)

	var built int
	var s *ExerciseScreen
	s, err = New(e, nil, nil, func() (screen.Screen, bool) {
		built++
		return s, true
	})
	require.NoError(t, err)

	press(s, specialKey(tea.KeyDown), specialKey(tea.KeyDown), space(), space())
	assert.Nil(t, press(s, keyPress('c')), "no journal, no command")

	cmd := press(s, keyPress('n'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Same(t, s, msg.Screen)
	assert.Equal(t, 1, built)
}

func TestExerciseScreen_DragStartClearsCorrectness(t *testing.T) {
	s, _, _ := testScreen(t)

	press(s, space(), space(), keyPress('c'))
	require.Equal(t, exchange.CorrectnessIncorrect, s.Machine().Correctness())

	press(s, space())
	assert.Equal(t, exchange.CorrectnessUnknown, s.Machine().Correctness())
	press(s, specialKey(tea.KeyEscape))
	assert.Equal(t, exchange.ModeAnswered, s.Machine().Mode())
}

func TestExerciseScreen_KeyHints(t *testing.T) {
	s, _, _ := testScreen(t)

	keys := func() []string {
		var out []string
		for _, h := range s.KeyHints() {
			out = append(out, h.Key)
		}
		return out
	}

	assert.Contains(t, keys(), "Space")
	assert.NotContains(t, keys(), "C")

	press(s, space())
	assert.Contains(t, keys(), "Esc")
	assert.Equal(t, "Cancel drag", s.KeyHints()[len(s.KeyHints())-1].Description)

	press(s, space())
	assert.Contains(t, keys(), "C")
}

func TestExerciseScreen_ViewShowsDropMarker(t *testing.T) {
	s, _, _ := testScreen(t)

	press(s, space(), space(), space())
	require.NotNil(t, s.drag)
	out := s.View(80, 30)
	assert.Contains(t, out, "drop here")
	assert.Contains(t, out, "Dragging Apple over the options")
}

func TestPlayWalksCatalog(t *testing.T) {
	c := ex.Builtin()
	ids := make([]string, 0, c.Len())
	for _, e := range c.All() {
		ids = append(ids, e.ID)
	}
	require.GreaterOrEqual(t, len(ids), 2)

	s, err := Play(c, ids[len(ids)-2], nil, nil)
	require.NoError(t, err)

	next, ok := s.next()
	require.True(t, ok)
	last := next.(*ExerciseScreen)
	assert.Equal(t, ids[len(ids)-1], last.exercise.ID)

	end, ok := last.next()
	require.True(t, ok)
	_, isSummary := end.(*summary.SummaryScreen)
	assert.True(t, isSummary)

	_, err = Play(c, "missing", nil, nil)
	require.ErrorIs(t, err, ex.ErrNotFound)
}

func TestExerciseScreen_CursorFollowsShrinkingPool(t *testing.T) {
	s, _, _ := testScreen(t)

	// Drag the last option away, then come back to the pool.
	press(s, specialKey(tea.KeyDown), specialKey(tea.KeyDown), space(), space())
	press(s, specialKey(tea.KeyTab), space())
	require.NotNil(t, s.drag)
	assert.Equal(t, "option_2", s.drag.id)
}
