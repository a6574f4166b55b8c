package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dropcheck/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗  ██████╗ ██████╗  ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗
 ██╔══██╗██╔══██╗██╔═══██╗██╔══██╗██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝
 ██║  ██║██████╔╝██║   ██║██████╔╝██║     ███████║█████╗  ██║     █████╔╝
 ██║  ██║██╔══██╗██║   ██║██╔═══╝ ██║     ██╔══██║██╔══╝  ██║     ██╔═██╗
 ██████╔╝██║  ██║╚██████╔╝██║     ╚██████╗██║  ██║███████╗╚██████╗██║  ██╗
 ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═╝      ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "D R O P C H E C K"

// bannerMinWidth is the narrowest terminal the block-letter banner fits in.
const bannerMinWidth = 76

// RenderBanner returns the DROPCHECK banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
