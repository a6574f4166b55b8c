package exercise

import (
	"errors"
	"fmt"

	"github.com/abhisek/dropcheck/internal/exchange"
)

var (
	ErrNotFound    = errors.New("exercise not found")
	ErrDuplicateID = errors.New("duplicate exercise id")
)

// DefaultID is the exercise played when none is configured.
const DefaultID = "strawberry"

// Catalog holds exercises in load order.
type Catalog struct {
	order []string
	byID  map[string]Exercise
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]Exercise)}
}

// Builtin returns a catalog with the exercises shipped in the binary.
func Builtin() *Catalog {
	c := NewCatalog()
	for _, e := range builtinExercises() {
		if err := c.Add(e); err != nil {
			panic(err)
		}
	}
	return c
}

// Add validates e and appends it to the catalog.
func (c *Catalog) Add(e Exercise) error {
	if e.ID == "" {
		return errors.New("exercise id is empty")
	}
	if _, ok := c.byID[e.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	if _, err := e.NewMachine(); err != nil {
		return err
	}
	c.byID[e.ID] = e
	c.order = append(c.order, e.ID)
	return nil
}

// Get returns the exercise with the given id.
func (c *Catalog) Get(id string) (Exercise, error) {
	e, ok := c.byID[id]
	if !ok {
		return Exercise{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

// All returns every exercise in load order.
func (c *Catalog) All() []Exercise {
	out := make([]Exercise, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of exercises.
func (c *Catalog) Len() int {
	return len(c.order)
}

func builtinExercises() []Exercise {
	return []Exercise{
		{
			ID:      DefaultID,
			Prompt:  "Which fruit is in the picture?",
			Picture: "strawberry.jpg",
			Options: []exchange.Option{
				{ID: "option_1", Label: "Apple"},
				{ID: "option_2", Label: "Banana"},
				{ID: "option_3", Label: "Strawberry"},
			},
			Answer: "option_3",
		},
		{
			ID:     "capital-fr",
			Prompt: "Drag the capital of France into the box.",
			Options: []exchange.Option{
				{ID: "lyon", Label: "Lyon"},
				{ID: "paris", Label: "Paris"},
				{ID: "nice", Label: "Nice"},
				{ID: "lille", Label: "Lille"},
			},
			Answer: "paris",
		},
		{
			ID:     "seven-times-eight",
			Prompt: "7 × 8 = ?",
			Options: []exchange.Option{
				{ID: "54", Label: "54"},
				{ID: "56", Label: "56"},
				{ID: "63", Label: "63"},
			},
			Answer: "56",
		},
	}
}
