// Package styles provides the terminal styling of the faultline CLI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette for dark terminal backgrounds.
var (
	NeonGreen  = lipgloss.Color("#00ff88")
	NeonCyan   = lipgloss.Color("#00ccff")
	NeonRed    = lipgloss.Color("#ff4444")
	NeonYellow = lipgloss.Color("#fbbf24")

	Neutral200 = lipgloss.Color("#e5e5e5")
	Neutral500 = lipgloss.Color("#737373")
	Neutral700 = lipgloss.Color("#404040")

	// Semantic colors
	ColorPrimary = NeonGreen
	ColorSuccess = NeonGreen
	ColorWarning = NeonYellow
	ColorError   = NeonRed
	ColorInfo    = NeonCyan

	ColorText      = Neutral200
	ColorTextMuted = Neutral500
	ColorBg        = lipgloss.Color("#000000")
	ColorBorder    = Neutral700
)

// RegionColor returns the display color configured for a region, or the
// primary color when none is set.
func RegionColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return ColorPrimary
	}
	return lipgloss.Color(hex)
}
