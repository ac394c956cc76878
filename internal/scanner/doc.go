// Package scanner finds every straight-line occurrence of a 3-letter word in a grid.
//
// The scanner slides a 3x3 window over the grid. At each window anchor it checks
// sixteen lines in a fixed order:
//   - the three window rows read left to right, then right to left
//   - the three window columns read top to bottom, then bottom to top
//   - both diagonals, each followed by its reverse
//
// Anchors are visited column-major: x ascending in the outer loop, y ascending
// in the inner loop. The resulting match order is part of the program output,
// so WindowLines and the loop nesting must not be reordered.
//
// Because windows overlap, a row or column that lies inside several windows is
// checked (and reported) once per window.
package scanner
