package formatter

import (
	"os"

	"github.com/penwyp/go-uptime-chart/internal/presentation/display"
	"github.com/penwyp/go-uptime-chart/internal/presentation/layout"
)

// ChartFormatter prints the full ANSI chart output: summary, histogram and
// per-month calendar blocks.
type ChartFormatter struct {
	styler *display.Styler
}

// NewChartFormatter creates a chart formatter with the given styler.
func NewChartFormatter(styler *display.Styler) *ChartFormatter {
	return &ChartFormatter{styler: styler}
}

// Format renders the report to standard output.
func (f *ChartFormatter) Format(report *layout.Report) error {
	return display.NewChartRenderer(os.Stdout, f.styler).Render(report)
}
