package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-uptime-chart/internal/core/model"
	"github.com/penwyp/go-uptime-chart/internal/presentation/layout"
	"github.com/penwyp/go-uptime-chart/internal/util"
)

// SummaryFormatter prints a plain-text report of the totals: overall period,
// busiest and quietest times of day, and per-month running time. No colors,
// suitable for piping.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format formats and outputs the report's summary information.
func (f *SummaryFormatter) Format(report *layout.Report) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Machine Uptime Summary Report")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	lastDay := report.Period.Latest.AddDate(0, 0, -1)
	fmt.Printf("Period:             %s - %s (%d days)\n",
		report.Period.Earliest.Format("January 2 2006"),
		lastDay.Format("January 2 2006"),
		report.Days)
	fmt.Printf("Total time running: %s\n", util.FormatDuration(report.Total))
	fmt.Printf("Daily average:      %s\n", util.FormatDuration(report.DailyAverage))
	fmt.Println()

	busiest, quietest := profileExtremes(report.Profile)
	fmt.Printf("Busiest time of day:  %s (%s per day on average)\n",
		slotLabel(busiest),
		util.FormatDuration(report.Profile[busiest]/time.Duration(report.Days)))
	fmt.Printf("Quietest time of day: %s (%s per day on average)\n",
		slotLabel(quietest),
		util.FormatDuration(report.Profile[quietest]/time.Duration(report.Days)))
	fmt.Println()

	fmt.Println("Per month:")
	for m := len(report.Months) - 1; m >= 0; m-- {
		month := report.Months[m]
		var total time.Duration
		for _, day := range month.Days {
			total += day.Total
		}
		fmt.Printf("  %-18s %s\n", month.Label, util.FormatDuration(total))
	}

	return nil
}

// profileExtremes returns the indices of the fullest and emptiest
// half-hour-of-day buckets.
func profileExtremes(profile model.TimeOfDayProfile) (busiest, quietest int) {
	for i, d := range profile {
		if d > profile[busiest] {
			busiest = i
		}
		if d < profile[quietest] {
			quietest = i
		}
	}
	return busiest, quietest
}

// slotLabel formats a half-hour-of-day index as "HH:MM-HH:MM".
func slotLabel(index int) string {
	startHour := index / 2
	startMinute := (index % 2) * 30
	endHour := startHour
	endMinute := startMinute + 30
	if endMinute == 60 {
		endHour++
		endMinute = 0
	}
	return fmt.Sprintf("%02d:%02d-%02d:%02d", startHour, startMinute, endHour, endMinute)
}
