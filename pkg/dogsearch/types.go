package dogsearch

import "fmt"

// Line selects one of the 3-cell lines inside a window.
// Offset picks the window row for row directions and the window column for
// column directions; diagonals always use offset 0.
type Line struct {
	Direction Direction
	Offset    int
}

// Match is a single occurrence of the target word.
// X and Y are 1-based and point at the first cell read in Direction.
type Match struct {
	X         int
	Y         int
	Direction Direction
}

// Format renders the match as a report line for the given 1-based index.
func (m Match) Format(index int) string {
	return fmt.Sprintf("%d: %d,%d (%s)", index, m.X, m.Y, m.Direction.Label())
}

// Cells returns the 1-based coordinates of the matched cells in reading order.
func (m Match) Cells() [WordLength][2]int {
	dx, dy := m.Direction.Step()
	var cells [WordLength][2]int
	for k := range cells {
		cells[k] = [2]int{m.X + k*dx, m.Y + k*dy}
	}
	return cells
}
