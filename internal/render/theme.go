// Package render draws tables and operator messages.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds every style the tracker draws with. All styles are bound to
// one renderer, so colour is decided by the writer they end up on.
type Theme struct {
	Banner   lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Border   lipgloss.Style
	Question lipgloss.Style
	Answer   lipgloss.Style
	Hint     lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}

func NewTheme(out io.Writer) Theme {
	r := lipgloss.NewRenderer(out)

	return Theme{
		Banner:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Header:   r.NewStyle().Bold(true).Padding(0, 1),
		Cell:     r.NewStyle().Padding(0, 1),
		Border:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Question: r.NewStyle().Foreground(lipgloss.Color("10")),
		Answer:   r.NewStyle().Foreground(lipgloss.Color("14")),
		Hint:     r.NewStyle().Foreground(lipgloss.Color("8")),
		Selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
