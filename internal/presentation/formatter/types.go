package formatter

import (
	"fmt"

	"github.com/penwyp/go-uptime-chart/internal/presentation/display"
	"github.com/penwyp/go-uptime-chart/internal/presentation/layout"
)

// Formatter renders a shaped report to standard output in one format.
type Formatter interface {
	Format(report *layout.Report) error
}

// New returns the formatter for the given output format name. Only the chart
// format uses the styler; the structured formats are plain by design.
func New(format string, styler *display.Styler) (Formatter, error) {
	switch format {
	case "chart", "":
		return NewChartFormatter(styler), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format '%s' (expected chart, json, csv or summary)", format)
	}
}
