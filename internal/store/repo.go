package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit      int    // max results (0 = unlimited)
	After      int64  // sequence > After
	ExerciseID string // only this exercise ("" = all)
}

// CheckEventData captures one answer check.
type CheckEventData struct {
	SessionID  string
	ExerciseID string
	AnswerID   string
	Correct    bool
}

// ResetEventData captures a "try again" after an incorrect check.
type ResetEventData struct {
	SessionID  string
	ExerciseID string
	AnswerID   string
}

// CheckEvent is a stored check.
type CheckEvent struct {
	Sequence  int64
	Timestamp time.Time
	CheckEventData
}

// ExerciseStat aggregates the journal for one exercise.
type ExerciseStat struct {
	ExerciseID    string
	Sessions      int // sessions with at least one check
	Checks        int
	CorrectChecks int
	FirstTry      int // sessions whose first check was correct
	Resets        int
}

// Accuracy is the share of correct checks, 0 when there are none.
func (s ExerciseStat) Accuracy() float64 {
	if s.Checks == 0 {
		return 0
	}
	return float64(s.CorrectChecks) / float64(s.Checks)
}

// Journal is the append-only record of checks and resets. It is never used
// to restore an exercise in progress.
type Journal interface {
	// AppendCheck records a check result.
	AppendCheck(ctx context.Context, data CheckEventData) error

	// AppendReset records a reset of the answer slot.
	AppendReset(ctx context.Context, data ResetEventData) error

	// RecentChecks returns checks newest first.
	RecentChecks(ctx context.Context, opts QueryOpts) ([]CheckEvent, error)

	// ExerciseStats aggregates checks and resets per exercise, ordered by
	// exercise id.
	ExerciseStats(ctx context.Context) ([]ExerciseStat, error)
}
