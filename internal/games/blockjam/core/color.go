package core

import (
	"strings"
	"unicode"
)

// Color is the color of a shape or gate.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorPink
	ColorCyan
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorPink:
		return "pink"
	case ColorCyan:
		return "cyan"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	case ColorPink:
		return 'K'
	case ColorCyan:
		return 'C'
	default:
		return '?'
	}
}

// LowerChar returns the lowercase character, used for gates.
func (c Color) LowerChar() rune {
	return unicode.ToLower(c.Char())
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	for c := ColorRed; c < ColorCount; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, true
		}
	}
	return ColorRed, false
}

// Palette returns every color a level may use, in declaration order.
func Palette() []Color {
	colors := make([]Color, 0, ColorCount)
	for c := ColorRed; c < ColorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}
