package exercise

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/dropcheck/internal/exchange"
)

// SupportedMajor is the pack format major version this build reads.
const SupportedMajor = "v1"

var ErrUnsupportedVersion = errors.New("unsupported pack version")

//go:embed pack.schema.json
var packSchemaJSON []byte

const packSchemaURL = "schema://dropcheck/pack.json"

var (
	packSchemaOnce sync.Once
	packSchema     *jsonschema.Schema
	packSchemaErr  error
)

// packFile is the on-disk shape of an exercise pack.
type packFile struct {
	Version   string         `json:"version"`
	Exercises []packExercise `json:"exercises"`
}

type packExercise struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"prompt"`
	Picture string       `json:"picture"`
	Answer  string       `json:"answer"`
	Options []packOption `json:"options"`
}

type packOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LoadPackFile reads and parses the pack at path.
func LoadPackFile(path string) ([]Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	exercises, err := ParsePack(data)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", path, err)
	}
	return exercises, nil
}

// ParsePack validates raw pack JSON against the pack schema and version
// rules and converts it to exercises.
func ParsePack(data []byte) ([]Exercise, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledPackSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var pf packFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}
	if err := checkVersion(pf.Version); err != nil {
		return nil, err
	}

	out := make([]Exercise, 0, len(pf.Exercises))
	for _, pe := range pf.Exercises {
		e := Exercise{
			ID:      pe.ID,
			Prompt:  pe.Prompt,
			Picture: pe.Picture,
			Answer:  pe.Answer,
		}
		for _, po := range pe.Options {
			e.Options = append(e.Options, exchange.Option{ID: po.ID, Label: po.Label})
		}
		out = append(out, e)
	}
	return out, nil
}

// LoadPack parses the pack at path and adds its exercises to the catalog.
// Nothing is added if any exercise is rejected.
func (c *Catalog) LoadPack(path string) error {
	exercises, err := LoadPackFile(path)
	if err != nil {
		return err
	}

	staged := NewCatalog()
	for _, e := range exercises {
		if _, err := c.Get(e.ID); err == nil {
			return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		if err := staged.Add(e); err != nil {
			return err
		}
	}
	for _, e := range staged.All() {
		if err := c.Add(e); err != nil {
			return err
		}
	}
	return nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

func compiledPackSchema() (*jsonschema.Schema, error) {
	packSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(packSchemaJSON))
		if err != nil {
			packSchemaErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(packSchemaURL, doc); err != nil {
			packSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		packSchema, packSchemaErr = c.Compile(packSchemaURL)
	})
	return packSchema, packSchemaErr
}
