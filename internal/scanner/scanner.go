package scanner

import (
	"iter"

	"github.com/vvka-141/dogsearch/internal/grid"
	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

// WindowLines is the order in which lines are checked inside one window.
var WindowLines = []dogsearch.Line{
	{Direction: dogsearch.RowLeftToRight, Offset: 0},
	{Direction: dogsearch.RowLeftToRight, Offset: 1},
	{Direction: dogsearch.RowLeftToRight, Offset: 2},
	{Direction: dogsearch.RowRightToLeft, Offset: 0},
	{Direction: dogsearch.RowRightToLeft, Offset: 1},
	{Direction: dogsearch.RowRightToLeft, Offset: 2},

	{Direction: dogsearch.ColumnTopToBottom, Offset: 0},
	{Direction: dogsearch.ColumnTopToBottom, Offset: 1},
	{Direction: dogsearch.ColumnTopToBottom, Offset: 2},
	{Direction: dogsearch.ColumnBottomToTop, Offset: 0},
	{Direction: dogsearch.ColumnBottomToTop, Offset: 1},
	{Direction: dogsearch.ColumnBottomToTop, Offset: 2},

	{Direction: dogsearch.DiagonalTopLeftToBottomRight},
	{Direction: dogsearch.DiagonalBottomRightToTopLeft},
	{Direction: dogsearch.DiagonalTopRightToBottomLeft},
	{Direction: dogsearch.DiagonalBottomLeftToTopRight},
}

// Origin returns the zero-based cell a line starts from when read in its
// direction, for the window anchored at (x, y).
//
// Panics with *dogsearch.InvariantError for an undefined direction.
func Origin(x, y int, line dogsearch.Line) (int, int) {
	last := dogsearch.WindowSize - 1
	i := line.Offset

	switch line.Direction {
	case dogsearch.RowLeftToRight:
		return x, y + i
	case dogsearch.RowRightToLeft:
		return x + last, y + i
	case dogsearch.ColumnTopToBottom:
		return x + i, y
	case dogsearch.ColumnBottomToTop:
		return x + i, y + last
	case dogsearch.DiagonalTopLeftToBottomRight:
		return x, y
	case dogsearch.DiagonalBottomRightToTopLeft:
		return x + last, y + last
	case dogsearch.DiagonalTopRightToBottomLeft:
		return x + last, y
	case dogsearch.DiagonalBottomLeftToTopRight:
		return x, y + last
	}
	panic(&dogsearch.InvariantError{Op: "origin", Value: int(line.Direction)})
}

// Read returns the letters of a window line in reading order.
func Read(g *grid.Grid, x, y int, line dogsearch.Line) [dogsearch.WordLength]byte {
	cx, cy := Origin(x, y, line)
	dx, dy := line.Direction.Step()

	var out [dogsearch.WordLength]byte
	for k := range out {
		out[k] = g.At(cx+k*dx, cy+k*dy)
	}
	return out
}

// Scanner searches one grid for one target word. It holds no mutable state,
// so Scan may be called any number of times.
type Scanner struct {
	grid   *grid.Grid
	target grid.Target
}

// New creates a scanner. Panics if g is nil.
func New(g *grid.Grid, target grid.Target) *Scanner {
	if g == nil {
		panic("grid cannot be nil")
	}
	return &Scanner{grid: g, target: target}
}

// Windows returns how many window anchors a scan visits.
func (s *Scanner) Windows() int {
	span := dogsearch.WindowSize - 1
	w, h := s.grid.Width()-span, s.grid.Height()-span
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Scan yields every match in report order. The sequence is computed lazily
// and can be ranged over repeatedly with identical results.
func (s *Scanner) Scan() iter.Seq[dogsearch.Match] {
	return func(yield func(dogsearch.Match) bool) {
		for x, y := range s.anchors() {
			for _, line := range WindowLines {
				if grid.Target(Read(s.grid, x, y, line)) != s.target {
					continue
				}
				ox, oy := Origin(x, y, line)
				m := dogsearch.Match{X: ox + 1, Y: oy + 1, Direction: line.Direction}
				if !yield(m) {
					return
				}
			}
		}
	}
}

// anchors yields the top-left corner of every window that fits in the grid,
// x in the outer loop and y in the inner loop.
func (s *Scanner) anchors() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for x := 0; x <= s.grid.Width()-dogsearch.WindowSize; x++ {
			for y := 0; y <= s.grid.Height()-dogsearch.WindowSize; y++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}
