package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainydate/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗  █████╗ ██╗███╗   ██╗██╗   ██╗
 ██╔══██╗██╔══██╗██╔══██╗██║████╗  ██║╚██╗ ██╔╝
 ██████╔╝██████╔╝███████║██║██╔██╗ ██║ ╚████╔╝
 ██╔══██╗██╔══██╗██╔══██║██║██║╚██╗██║  ╚██╔╝
 ██████╔╝██║  ██║██║  ██║██║██║ ╚████║   ██║
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝   ╚═╝
          ██████╗  █████╗ ████████╗███████╗
          ██╔══██╗██╔══██╗╚══██╔══╝██╔════╝
          ██║  ██║███████║   ██║   █████╗
          ██║  ██║██╔══██║   ██║   ██╔══╝
          ██████╔╝██║  ██║   ██║   ███████╗
          ╚═════╝ ╚═╝  ╚═╝   ╚═╝   ╚══════╝`

const bannerCompact = "B R A I N Y D A T E"

// RenderBanner returns the BrainyDate banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
