package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New()
	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, New().ID)
	assert.Zero(t, s.SolvedCount())
}

func TestRecordCheck(t *testing.T) {
	s := New()

	s.RecordCheck("strawberry", false)
	assert.False(t, s.IsSolved("strawberry"))
	assert.Equal(t, 1, s.Attempts("strawberry"))

	s.RecordCheck("strawberry", true)
	s.RecordCheck("strawberry", true)
	assert.True(t, s.IsSolved("strawberry"))
	assert.Equal(t, 3, s.Attempts("strawberry"))
	assert.Equal(t, 1, s.SolvedCount())

	s.RecordCheck("capital-fr", true)
	assert.Equal(t, 2, s.SolvedCount())
	assert.Zero(t, s.Attempts("unknown"))
}
