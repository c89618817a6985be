package styles

import "github.com/charmbracelet/lipgloss"

// Theme contains the composed styles of the CLI.
var Theme = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	BadgeUp   lipgloss.Style
	BadgeDown lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style

	ListItem lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),

	Muted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText),

	Success: lipgloss.NewStyle().
		Foreground(ColorSuccess),

	Error: lipgloss.NewStyle().
		Foreground(ColorError),

	Warning: lipgloss.NewStyle().
		Foreground(ColorWarning),

	Info: lipgloss.NewStyle().
		Foreground(ColorInfo),

	BadgeUp: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorSuccess).
		Padding(0, 1),

	BadgeDown: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorError).
		Padding(0, 1),

	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1),

	TableCell: lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1),

	TableBorder: lipgloss.NewStyle().
		Foreground(ColorBorder),

	ListItem: lipgloss.NewStyle().
		Foreground(ColorText).
		PaddingLeft(2),
}

// RenderVerdict returns the up or down badge of a region.
func RenderVerdict(up bool) string {
	if up {
		return Theme.BadgeUp.Render(IconUp + " UP")
	}
	return Theme.BadgeDown.Render(IconDown + " DOWN")
}

// RenderFlag renders a boolean as a filled or empty dot.
func RenderFlag(on bool) string {
	if on {
		return Theme.Success.Render(IconDot)
	}
	return Theme.Error.Render(IconDotOff)
}

// RenderListItem renders a bulleted line.
func RenderListItem(item string) string {
	return Theme.ListItem.Render(IconBullet + " " + item)
}

// RenderError returns an error message with icon.
func RenderError(msg string) string {
	return Theme.Error.Render(IconError + " " + msg)
}

// RenderSuccess returns a success message with icon.
func RenderSuccess(msg string) string {
	return Theme.Success.Render(IconSuccess + " " + msg)
}

// RenderWarning returns a warning message with icon.
func RenderWarning(msg string) string {
	return Theme.Warning.Render(IconWarning + " " + msg)
}

// RenderInfo returns an info message with icon.
func RenderInfo(msg string) string {
	return Theme.Info.Render(IconInfo + " " + msg)
}

// RenderRegion renders a region id in its configured color.
func RenderRegion(id, color string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(RegionColor(color)).Render(id)
}
