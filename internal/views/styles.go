package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the tour surfaces
type Styles struct {
	PopupBox     lipgloss.Style
	PopupText    lipgloss.Style
	ImageCaption lipgloss.Style
	Button       lipgloss.Style
	Dim          lipgloss.Style
	StepCounter  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("99")),
		PopupText: lipgloss.NewStyle().
			Width(40),
		ImageCaption: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		StepCounter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
