package util

import (
	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ClearScreen     = "\033[2J" // Clear entire screen
	ClearScrollback = "\033[3J" // Clear scrollback buffer
	MoveCursorHome  = "\033[H"  // Move cursor to home position
	HideCursor      = "\033[?25l"
	ShowCursor      = "\033[?25h"
)

// GetDisplayWidth calculates the actual display width of a string,
// accounting for wide and combining runes.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}
