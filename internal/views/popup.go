package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Popup is the content of the floating step surface.
type Popup struct {
	Text          string
	Image         string
	ShowPrevious  bool
	PreviousLabel string
	NextLabel     string
	StepIndex     int
	StepCount     int
}

// PopupRenderer renders the tour popup box
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// Render produces the styled popup for one step.
func (pr *PopupRenderer) Render(p Popup) string {
	parts := []string{pr.styles.PopupText.Render(p.Text)}

	if p.Image != "" {
		// Terminals get a caption instead of the image itself.
		parts = append(parts, pr.styles.ImageCaption.Render("["+p.Image+"]"))
	}

	buttons := make([]string, 0, 2)
	if p.ShowPrevious {
		buttons = append(buttons, pr.styles.Button.Render(p.PreviousLabel))
	}
	buttons = append(buttons, pr.styles.Button.Render(p.NextLabel))
	row := strings.Join(buttons, " ")

	if p.StepCount > 1 {
		counter := pr.styles.StepCounter.Render(fmt.Sprintf("%d/%d", p.StepIndex+1, p.StepCount))
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", counter)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, append(parts, "", row)...)
	return pr.styles.PopupBox.Render(content)
}
