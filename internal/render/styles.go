package render

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorMatch   = lipgloss.Color("34")  // Green
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles groups the styles used to draw a grid. They are bound to a renderer
// so colors follow the capabilities of the output they are written to.
type Styles struct {
	Title lipgloss.Style
	Box   lipgloss.Style
	Match lipgloss.Style
	Cell  lipgloss.Style
}

// NewStyles creates the grid styles for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),
		Match: r.NewStyle().
			Bold(true).
			Foreground(ColorMatch),
		Cell: r.NewStyle().
			Foreground(ColorMuted),
	}
}
