package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Path    lipgloss.Style
}

// NewStyles builds the style set bound to a lipgloss renderer, so color
// support follows the renderer's output rather than the process stdout.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		Path:    r.NewStyle().Underline(true),
	}
}
