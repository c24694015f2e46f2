package display

import (
	"fmt"
	"io"

	"github.com/penwyp/go-uptime-chart/internal/util"
)

// Screen drives full-screen redraws for watch mode. The one-shot chart never
// touches it; piped output stays free of control sequences.
type Screen struct {
	w       io.Writer
	enabled bool
}

// NewScreen creates a screen controller. When enabled is false every method
// is a no-op.
func NewScreen(w io.Writer, enabled bool) *Screen {
	return &Screen{w: w, enabled: enabled}
}

// Clear wipes the screen and scrollback and homes the cursor.
func (s *Screen) Clear() {
	if !s.enabled {
		return
	}
	fmt.Fprint(s.w, util.ClearScreen, util.ClearScrollback, util.MoveCursorHome)
}

// HideCursor hides the cursor during redraws.
func (s *Screen) HideCursor() {
	if s.enabled {
		fmt.Fprint(s.w, util.HideCursor)
	}
}

// ShowCursor restores the cursor.
func (s *Screen) ShowCursor() {
	if s.enabled {
		fmt.Fprint(s.w, util.ShowCursor)
	}
}
