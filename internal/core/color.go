package core

import "strconv"

// Color represents a foreground color for a screen cell.
// Each value maps to an ANSI 256-color code.
type Color uint8

// Predefined colors for course and HUD elements.
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
	ColorIce // pale blue for packed snow and bumps
)

// ansiCodes are indexed by Color; ColorDefault has none.
var ansiCodes = [...]uint8{
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorIce:           153,
}

// ANSI returns the 256-color code as a string, or "" for the terminal default.
func (c Color) ANSI() string {
	if c == ColorDefault || int(c) >= len(ansiCodes) {
		return ""
	}
	return strconv.Itoa(int(ansiCodes[c]))
}
