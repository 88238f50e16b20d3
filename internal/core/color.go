package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Roles shared by the games so feedback looks the same everywhere.
const (
	ColorTitle     = ColorBrightCyan
	ColorCursor    = ColorBrightYellow
	ColorSelected  = ColorBrightBlue
	ColorCorrect   = ColorBrightGreen
	ColorIncorrect = ColorBrightRed
	ColorHint      = ColorMagenta
	ColorMuted     = ColorGray
)
