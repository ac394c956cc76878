// Package puzzle decodes the word-search definition compiled into the binary.
package puzzle

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/dogsearch/internal/grid"
	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

//go:embed puzzle.yaml
var builtin []byte

// FileName is the name of the embedded definition.
const FileName = "puzzle.yaml"

type definition struct {
	Target string   `yaml:"target"`
	Grid   []string `yaml:"grid"`
}

// Puzzle is a grid together with the word to find in it.
type Puzzle struct {
	Grid   *grid.Grid
	Target grid.Target
}

// Builtin returns the puzzle embedded in the binary. Its target must be
// dogsearch.DefaultTarget.
func Builtin() (*Puzzle, error) {
	return load(builtin)
}

func load(data []byte) (*Puzzle, error) {
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", FileName, err)
	}
	if p.Target.String() != dogsearch.DefaultTarget {
		return nil, fmt.Errorf("embedded %s: %w: target %q, want %q",
			FileName, dogsearch.ErrInvalidPuzzle, p.Target, dogsearch.DefaultTarget)
	}
	return p, nil
}

// Parse decodes a YAML puzzle definition. Unknown keys are rejected.
// All failures wrap dogsearch.ErrInvalidPuzzle.
func Parse(data []byte) (*Puzzle, error) {
	var def definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", dogsearch.ErrInvalidPuzzle, err)
	}

	target, err := grid.ParseTarget(def.Target)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(def.Grid)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Grid: g, Target: target}, nil
}
