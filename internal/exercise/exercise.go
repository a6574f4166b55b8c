// Package exercise defines drag-the-answer exercises and the catalog they
// are served from.
package exercise

import (
	"fmt"

	"github.com/abhisek/dropcheck/internal/exchange"
)

// Exercise is one question: a prompt, the candidate options and the id of
// the correct one.
type Exercise struct {
	ID      string
	Prompt  string
	Picture string
	Options []exchange.Option
	Answer  string
}

// NewMachine builds a fresh state machine for the exercise.
func (e Exercise) NewMachine() (*exchange.Machine, error) {
	m, err := exchange.New(e.Options, e.Answer)
	if err != nil {
		return nil, fmt.Errorf("exercise %s: %w", e.ID, err)
	}
	return m, nil
}

// AnswerLabel returns the label of the correct option.
func (e Exercise) AnswerLabel() string {
	for _, o := range e.Options {
		if o.ID == e.Answer {
			return o.Label
		}
	}
	return ""
}
