package dogsearch

import "slices"

// Direction names one of the eight ways a line can be read across the grid.
// The zero value is not a valid direction.
type Direction int

const (
	RowLeftToRight Direction = iota + 1
	RowRightToLeft
	ColumnTopToBottom
	ColumnBottomToTop
	DiagonalTopLeftToBottomRight
	DiagonalBottomRightToTopLeft
	DiagonalTopRightToBottomLeft
	DiagonalBottomLeftToTopRight
)

// Directions lists every direction in declaration order.
var Directions = []Direction{
	RowLeftToRight,
	RowRightToLeft,
	ColumnTopToBottom,
	ColumnBottomToTop,
	DiagonalTopLeftToBottomRight,
	DiagonalBottomRightToTopLeft,
	DiagonalTopRightToBottomLeft,
	DiagonalBottomLeftToTopRight,
}

// Label returns the human-readable name printed next to a match.
// The two row labels name the reverse of the reading direction.
//
// Panics with *InvariantError for a value outside the defined set.
func (d Direction) Label() string {
	switch d {
	case RowLeftToRight:
		return "row right -> left"
	case RowRightToLeft:
		return "row left -> right"
	case ColumnTopToBottom:
		return "column top -> bottom"
	case ColumnBottomToTop:
		return "column bottom -> top"
	case DiagonalTopLeftToBottomRight:
		return "diagonal topleft -> bottomright"
	case DiagonalBottomRightToTopLeft:
		return "diagonal bottomright -> topleft"
	case DiagonalTopRightToBottomLeft:
		return "diagonal topright -> bottomleft"
	case DiagonalBottomLeftToTopRight:
		return "diagonal bottomleft -> topright"
	}
	panic(&InvariantError{Op: "label", Value: int(d)})
}

// Step returns the unit offset between consecutive cells when reading in d.
// x grows to the right, y grows downwards.
//
// Panics with *InvariantError for a value outside the defined set.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case RowLeftToRight:
		return 1, 0
	case RowRightToLeft:
		return -1, 0
	case ColumnTopToBottom:
		return 0, 1
	case ColumnBottomToTop:
		return 0, -1
	case DiagonalTopLeftToBottomRight:
		return 1, 1
	case DiagonalBottomRightToTopLeft:
		return -1, -1
	case DiagonalTopRightToBottomLeft:
		return -1, 1
	case DiagonalBottomLeftToTopRight:
		return 1, -1
	}
	panic(&InvariantError{Op: "step", Value: int(d)})
}

// Reverse returns the direction that reads the same cells in the opposite order.
//
// Panics with *InvariantError for a value outside the defined set.
func (d Direction) Reverse() Direction {
	switch d {
	case RowLeftToRight:
		return RowRightToLeft
	case RowRightToLeft:
		return RowLeftToRight
	case ColumnTopToBottom:
		return ColumnBottomToTop
	case ColumnBottomToTop:
		return ColumnTopToBottom
	case DiagonalTopLeftToBottomRight:
		return DiagonalBottomRightToTopLeft
	case DiagonalBottomRightToTopLeft:
		return DiagonalTopLeftToBottomRight
	case DiagonalTopRightToBottomLeft:
		return DiagonalBottomLeftToTopRight
	case DiagonalBottomLeftToTopRight:
		return DiagonalTopRightToBottomLeft
	}
	panic(&InvariantError{Op: "reverse", Value: int(d)})
}

// Valid reports whether d is one of the eight defined directions.
func (d Direction) Valid() bool {
	return slices.Contains(Directions, d)
}

func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(invalid)"
	}
	return d.Label()
}
