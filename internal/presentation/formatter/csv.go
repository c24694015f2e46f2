package formatter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/penwyp/go-uptime-chart/internal/presentation/layout"
	"github.com/penwyp/go-uptime-chart/internal/util"
)

// CSVFormatter emits one row per day, chronologically.
type CSVFormatter struct{}

// NewCSVFormatter creates a CSV formatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format writes the per-day rows to standard output.
func (f *CSVFormatter) Format(report *layout.Report) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{"Date", "Weekday", "Uptime Seconds", "Uptime"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, day := range chronologicalDays(report) {
		record := []string{
			day.Date.Format("2006-01-02"),
			day.Date.Format("Monday"),
			fmt.Sprintf("%.0f", day.Total.Seconds()),
			util.FormatDuration(day.Total),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
