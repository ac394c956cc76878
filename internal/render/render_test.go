package render

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dogsearch/internal/grid"
	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

func TestHighlighted(t *testing.T) {
	cells := Highlighted([]dogsearch.Match{
		{X: 3, Y: 1, Direction: dogsearch.RowRightToLeft},
		{X: 1, Y: 1, Direction: dogsearch.ColumnTopToBottom},
	})

	assert.Len(t, cells, 5)
	for _, c := range [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}} {
		assert.True(t, cells[c], "cell %v", c)
	}
	assert.False(t, cells[[2]int{1, 1}])
}

func TestGrid_PlainText(t *testing.T) {
	g, err := grid.New([]string{"DOG", "XXX", "XXX"})
	require.NoError(t, err)
	target, err := grid.ParseTarget("DOG")
	require.NoError(t, err)

	r := lipgloss.NewRenderer(&bytes.Buffer{})
	out := ansi.Strip(Grid(r, g, target, []dogsearch.Match{
		{X: 1, Y: 1, Direction: dogsearch.RowLeftToRight},
	}))

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6, "title, top border, 3 rows, bottom border:\n%s", out)
	assert.Equal(t, "DOG in 3x3", strings.TrimSpace(lines[0]))
	assert.Contains(t, out, "D O G")
	assert.Equal(t, 2, strings.Count(out, "X X X"))
}

func TestIsTerminal_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}
