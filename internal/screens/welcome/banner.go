package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certplan/internal/ui/theme"
)

const bannerArt = `
  ██████╗███████╗██████╗ ████████╗██████╗ ██╗      █████╗ ███╗   ██╗
 ██╔════╝██╔════╝██╔══██╗╚══██╔══╝██╔══██╗██║     ██╔══██╗████╗  ██║
 ██║     █████╗  ██████╔╝   ██║   ██████╔╝██║     ███████║██╔██╗ ██║
 ██║     ██╔══╝  ██╔══██╗   ██║   ██╔═══╝ ██║     ██╔══██║██║╚██╗██║
 ╚██████╗███████╗██║  ██║   ██║   ██║     ███████╗██║  ██║██║ ╚████║
  ╚═════╝╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═╝     ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝`

const bannerCompact = "C E R T P L A N"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 68

// RenderBanner returns the certplan banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
