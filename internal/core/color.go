package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Palette used by the platformer renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrown
	ColorIce
	ColorPink
	ColorGray
)
