// Package session tracks one run of the app: its id for the journal and
// which exercises were solved during the run.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is shared by the screens of one app run. It is only touched from
// the bubbletea update loop.
type Session struct {
	ID        string
	StartTime time.Time
	solved    map[string]bool
	attempts  map[string]int
}

// New starts a session with a fresh id.
func New() *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
		solved:    make(map[string]bool),
		attempts:  make(map[string]int),
	}
}

// RecordCheck counts a check for the exercise and marks it solved when the
// answer was correct.
func (s *Session) RecordCheck(exerciseID string, correct bool) {
	s.attempts[exerciseID]++
	if correct {
		s.solved[exerciseID] = true
	}
}

// IsSolved reports whether the exercise was answered correctly in this run.
func (s *Session) IsSolved(exerciseID string) bool {
	return s.solved[exerciseID]
}

// Attempts returns the number of checks made on the exercise.
func (s *Session) Attempts(exerciseID string) int {
	return s.attempts[exerciseID]
}

// SolvedCount returns how many distinct exercises were solved.
func (s *Session) SolvedCount() int {
	return len(s.solved)
}
