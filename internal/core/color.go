package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a themed terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorPink
	ColorCyan
	ColorWhite
	ColorGray // Empty cells and free border
	ColorDim  // Secondary text
	ColorHighlight
)
