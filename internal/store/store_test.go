package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Journal().AppendCheck(ctx, CheckEventData{SessionID: "s1", ExerciseID: "e1", AnswerID: "a", Correct: true}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	checks, err := s.Journal().RecentChecks(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, checks, 1)

	require.NoError(t, s.Journal().AppendCheck(ctx, CheckEventData{SessionID: "s1", ExerciseID: "e1", AnswerID: "a"}))
	checks, err = s.Journal().RecentChecks(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Greater(t, checks[0].Sequence, checks[1].Sequence)
}

func TestAppendCheckAndRecent(t *testing.T) {
	s := openTestStore(t)
	j := s.Journal()
	ctx := context.Background()

	events := []CheckEventData{
		{SessionID: "s1", ExerciseID: "strawberry", AnswerID: "option_1", Correct: false},
		{SessionID: "s1", ExerciseID: "strawberry", AnswerID: "option_3", Correct: true},
		{SessionID: "s2", ExerciseID: "capital-fr", AnswerID: "paris", Correct: true},
	}
	for _, e := range events {
		require.NoError(t, j.AppendCheck(ctx, e))
	}

	all, err := j.RecentChecks(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "capital-fr", all[0].ExerciseID)
	assert.Equal(t, "option_1", all[2].AnswerID)
	assert.False(t, all[2].Correct)
	assert.False(t, all[0].Timestamp.IsZero())

	limited, err := j.RecentChecks(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, all[0].Sequence, limited[0].Sequence)

	filtered, err := j.RecentChecks(ctx, QueryOpts{ExerciseID: "strawberry"})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	after, err := j.RecentChecks(ctx, QueryOpts{After: all[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "capital-fr", after[0].ExerciseID)
}

func TestExerciseStats(t *testing.T) {
	s := openTestStore(t)
	j := s.Journal()
	ctx := context.Background()

	require.NoError(t, j.AppendCheck(ctx, CheckEventData{SessionID: "s1", ExerciseID: "strawberry", AnswerID: "option_1"}))
	require.NoError(t, j.AppendReset(ctx, ResetEventData{SessionID: "s1", ExerciseID: "strawberry", AnswerID: "option_1"}))
	require.NoError(t, j.AppendCheck(ctx, CheckEventData{SessionID: "s1", ExerciseID: "strawberry", AnswerID: "option_3", Correct: true}))
	require.NoError(t, j.AppendCheck(ctx, CheckEventData{SessionID: "s2", ExerciseID: "strawberry", AnswerID: "option_3", Correct: true}))
	require.NoError(t, j.AppendCheck(ctx, CheckEventData{SessionID: "s3", ExerciseID: "capital-fr", AnswerID: "lyon"}))

	stats, err := j.ExerciseStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, ExerciseStat{ExerciseID: "capital-fr", Sessions: 1, Checks: 1}, stats[0])
	assert.Equal(t, ExerciseStat{
		ExerciseID:    "strawberry",
		Sessions:      2,
		Checks:        3,
		CorrectChecks: 2,
		FirstTry:      1,
		Resets:        1,
	}, stats[1])
	assert.InDelta(t, 2.0/3.0, stats[1].Accuracy(), 1e-9)
	assert.Zero(t, ExerciseStat{}.Accuracy())
}

func TestExerciseStats_Empty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.Journal().ExerciseStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}
