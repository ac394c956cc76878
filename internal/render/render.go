// Package render draws a scanned grid for humans, highlighting matched cells.
// Output is meant for stderr diagnostics; the match report itself is plain text.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vvka-141/dogsearch/internal/grid"
	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Highlighted returns the zero-based cells covered by any of the matches,
// keyed as [x, y].
func Highlighted(matches []dogsearch.Match) map[[2]int]bool {
	cells := make(map[[2]int]bool, len(matches)*dogsearch.WordLength)
	for _, m := range matches {
		for _, c := range m.Cells() {
			cells[[2]int{c[0] - 1, c[1] - 1}] = true
		}
	}
	return cells
}

// Grid draws g inside a box with a title line. Letters are separated by a
// space; cells that belong to a match use the Match style.
func Grid(r *lipgloss.Renderer, g *grid.Grid, target grid.Target, matches []dogsearch.Match) string {
	styles := NewStyles(r)
	hot := Highlighted(matches)

	var b strings.Builder
	for y, row := range g.Rows() {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range len(row) {
			if x > 0 {
				b.WriteByte(' ')
			}
			letter := row[x : x+1]
			if hot[[2]int{x, y}] {
				b.WriteString(styles.Match.Render(letter))
			} else {
				b.WriteString(styles.Cell.Render(letter))
			}
		}
	}

	title := styles.Title.Render(fmt.Sprintf("%s in %dx%d", target, g.Width(), g.Height()))
	return lipgloss.JoinVertical(lipgloss.Left, title, styles.Box.Render(b.String()))
}
