package styles

// Plain glyphs that render without a Nerd Font.
const (
	IconUp      = "▲"
	IconDown    = "▼"
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
	IconBullet  = "▸"
	IconDot     = "●"
	IconDotOff  = "○"
)
