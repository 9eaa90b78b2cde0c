package cmd

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/onkeltom/page-load-comparison-analysis/tui"
)

const plstudyASCII = `@@@@@@@   @@@       @@@@@@   @@@@@@@  @@@  @@@  @@@@@@@   @@@ @@@
@@@@@@@@  @@@      @@@@@@@   @@@@@@@  @@@  @@@  @@@@@@@@  @@@ @@@
@@!  @@@  @@!      !@@         @@!    @@!  @@@  @@!  @@@  @@! !@@
@!@@!@!   @!!       !@@!!      @!!    @!@  !@!  @!@  !@!   !@!@!
@!!       !!!          !:!     !!!    !@!  !!!  !!:  !!!    !!:
:!:       !!:!!!!  ::.: :       ::     :!:!!:   :!:.:::     .:
`

// RenderBanner returns the styled banner for the help screen
func RenderBanner() string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(tui.RGBPink).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(tui.RGBBlue).
		Italic(true)

	containerStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		MarginBottom(1)

	banner := bannerStyle.Render(plstudyASCII)
	subtitle := subtitleStyle.Render("page load comparison across browsers")

	return containerStyle.Render(banner + "\n" + subtitle)
}
