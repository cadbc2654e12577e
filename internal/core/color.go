package core

// Color is an abstract palette entry. The engine uses it to color-code
// notifications; the platform maps it to terminal colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
	ColorOrange
	ColorGray
)
