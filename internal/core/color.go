package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorDarkRed
)
