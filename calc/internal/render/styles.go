// Package render holds the terminal formatting shared by the calculator
// reports: number formatting, banners, and lipgloss tables.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors for report status lines.
var (
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
	Muted       = lipgloss.Color("#6b7280")
)

// Styles are the report styles bound to one output writer. The renderer
// detects the writer's color profile, so buffers and pipes get plain text.
type Styles struct {
	Title lipgloss.Style
	Bold  lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	OK    lipgloss.Style
	Warn  lipgloss.Style
	Fail  lipgloss.Style
}

// NewStyles builds Styles for output written to w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title: r.NewStyle().Bold(true),
		Bold:  r.NewStyle().Bold(true),
		Body:  r.NewStyle(),
		Muted: r.NewStyle().Foreground(Muted),
		OK:    r.NewStyle().Foreground(Success).Bold(true),
		Warn:  r.NewStyle().Foreground(Warning).Bold(true),
		Fail:  r.NewStyle().Foreground(Destructive).Bold(true),
	}
}
