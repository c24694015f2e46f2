package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

// Sizer handles display-width-aware string measurement and padding. Block
// glyphs and the day/night symbols are not guaranteed single-cell, so plain
// len() is not usable for alignment.
type Sizer struct {
}

// SharedSizer returns the package singleton.
func SharedSizer() *Sizer {
	return sharedSizer
}

func (s Sizer) displayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads a string to a specific display width.
func (s Sizer) PadString(text string, width int, leftAlign bool) string {
	actualWidth := s.displayWidth(text)
	if actualWidth >= width {
		return text
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return text + padding
	}
	return padding + text
}

// CenterOffset returns the left offset that centers text in the given width.
func (s Sizer) CenterOffset(text string, width int) int {
	offset := (width - s.displayWidth(text)) / 2
	if offset < 0 {
		return 0
	}
	return offset
}

// TerminalWidth returns the current terminal width with a fallback for
// non-terminal output.
func (s Sizer) TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
