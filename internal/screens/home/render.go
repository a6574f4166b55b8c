package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dropcheck/internal/ui/components"
	"github.com/abhisek/dropcheck/internal/ui/theme"
)

const titleText = "D · R · O · P · C · H · E · C · K"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

func renderTitle(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(titleText))
}

// renderProgress shows solved exercises in a bordered box matching content width.
func renderProgress(solved, total, cw int) string {
	bar := components.NewProgressBar("Solved", solved, total, cw-6)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(bar.View())
}

func renderMenu(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Render(m.View())
}

// renderFrame wraps content in a double border, centered in the given area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
