package display

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// NoColor marks an unset foreground or background.
const NoColor = -1

// xterm 256-color palette ids. The core never interprets these; they only
// need to keep the logical roles visually distinct.
const (
	ForegroundColor  = 251
	HeadingColor     = 208
	HeadingLineColor = 246
	TimeColor        = 231
	TimeTextColor    = 246
	WeekdayColor     = 245
	WeekendColor     = 231
	NightColor       = 51
	SunriseColor     = 228
	NoonColor        = 226
	SunsetColor      = 214
	GridColor        = 238

	BarColor            = 28
	BarWeekendColor     = 82
	BarGridColor        = 77
	BarWeekendGridColor = 156
)

// Histogram intensity bands, one per row, bottom to top, with their
// on-grid-line variants.
var (
	HistogramColors     = [4]int{57, 56, 126, 197}
	HistogramGridColors = [4]int{99, 97, 169, 204}
)

// Styler wraps text runs in xterm escape sequences. When disabled (output is
// not an interactive terminal, or colors are switched off) every method is
// the identity function and no escape bytes are emitted.
type Styler struct {
	enabled bool
}

// NewStyler creates a styler with the given enablement.
func NewStyler(enabled bool) *Styler {
	return &Styler{enabled: enabled}
}

// StdoutIsTerminal reports whether standard output is an interactive terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Enabled reports whether escape sequences are emitted.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// Reset returns the sequence clearing all character attributes.
func (s *Styler) Reset() string {
	if !s.enabled {
		return ""
	}
	return "\033[0m"
}

// Escape returns the sequence setting the given attributes, preceded by a
// full reset. Pass NoColor to leave a channel unset.
func (s *Styler) Escape(fg, bg int, bold bool) string {
	if !s.enabled {
		return ""
	}

	var attrs []string
	if fg != NoColor {
		attrs = append(attrs, fmt.Sprintf("38;5;%d", fg))
	}
	if bg != NoColor {
		attrs = append(attrs, fmt.Sprintf("48;5;%d", bg))
	}
	if bold {
		attrs = append(attrs, "1")
	}
	return s.Reset() + "\033[" + strings.Join(attrs, ";") + "m"
}

// Style renders a text run with the given attributes and restores the
// default foreground afterwards.
func (s *Styler) Style(text string, fg, bg int, bold bool) string {
	return s.Escape(fg, bg, bold) + text + s.Escape(ForegroundColor, NoColor, false)
}

// Fg renders a text run in the given foreground color.
func (s *Styler) Fg(text string, fg int) string {
	return s.Style(text, fg, NoColor, false)
}

// Bold renders a bold text run in the default foreground.
func (s *Styler) Bold(text string) string {
	return s.Style(text, NoColor, NoColor, true)
}
