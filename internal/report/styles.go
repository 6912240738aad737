package report

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("#00FFFF")
	colorYellow = lipgloss.Color("#FFFF00")
	colorGreen  = lipgloss.Color("#00FF00")
	colorGray   = lipgloss.Color("#888888")
	colorWhite  = lipgloss.Color("#FFFFFF")
)

// styles are bound to the renderer of the output writer so a redirected
// report stays free of escape codes.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	model   lipgloss.Style
	warning lipgloss.Style
	count   lipgloss.Style
	cost    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorCyan),
		label: r.NewStyle().
			Foreground(colorGray),
		model: r.NewStyle().
			Bold(true).
			Foreground(colorWhite),
		warning: r.NewStyle().
			Foreground(colorYellow).
			Italic(true),
		count: r.NewStyle().
			Bold(true),
		cost: r.NewStyle().
			Foreground(colorGreen),
	}
}
