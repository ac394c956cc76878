// Package grid holds the immutable letter grid and the word searched in it.
package grid

import (
	"fmt"

	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

// Grid is a rectangular block of single-byte letters. It is never modified
// after New returns.
type Grid struct {
	rows   []string
	width  int
	height int
}

// New builds a grid from its rows. All rows must have the same, non-zero length.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: grid has no rows", dogsearch.ErrInvalidPuzzle)
	}

	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: grid row 1 is empty", dogsearch.ErrInvalidPuzzle)
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: grid row %d has length %d, want %d",
				dogsearch.ErrInvalidPuzzle, i+1, len(row), width)
		}
	}

	cp := make([]string, len(rows))
	copy(cp, rows)
	return &Grid{rows: cp, width: width, height: len(rows)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the letter at zero-based column x, row y.
// Out-of-range coordinates panic like any slice index.
func (g *Grid) At(x, y int) byte {
	return g.rows[y][x]
}

// Rows returns a copy of the grid rows.
func (g *Grid) Rows() []string {
	cp := make([]string, len(g.rows))
	copy(cp, g.rows)
	return cp
}

// Target is the word being searched for. Comparison is case-sensitive.
type Target [dogsearch.WordLength]byte

// ParseTarget converts a word of exactly WordLength bytes into a Target.
func ParseTarget(word string) (Target, error) {
	var t Target
	if len(word) != len(t) {
		return t, fmt.Errorf("%w: target %q has length %d, want %d",
			dogsearch.ErrInvalidPuzzle, word, len(word), len(t))
	}
	copy(t[:], word)
	return t, nil
}

func (t Target) String() string {
	return string(t[:])
}
