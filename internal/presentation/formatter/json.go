package formatter

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-uptime-chart/internal/presentation/layout"
)

// JSONFormatter emits the report as a machine-readable document. Durations
// are plain seconds; days run chronologically.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonDocument struct {
	Period              jsonPeriod `json:"period"`
	TotalSeconds        float64    `json:"totalSeconds"`
	DailyAverageSeconds float64    `json:"dailyAverageSeconds"`
	ProfileSeconds      []float64  `json:"timeOfDayProfileSeconds"`
	Days                []jsonDay  `json:"days"`
}

type jsonPeriod struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
	Days     int    `json:"days"`
}

type jsonDay struct {
	Date          string    `json:"date"`
	Weekday       string    `json:"weekday"`
	Weekend       bool      `json:"weekend"`
	UptimeSeconds float64   `json:"uptimeSeconds"`
	SlotSeconds   []float64 `json:"slotSeconds"`
}

// Format writes the indented JSON document to standard output.
func (f *JSONFormatter) Format(report *layout.Report) error {
	doc := jsonDocument{
		Period: jsonPeriod{
			Earliest: report.Period.Earliest.Format("2006-01-02"),
			Latest:   report.Period.Latest.Format("2006-01-02"),
			Days:     report.Days,
		},
		TotalSeconds:        report.Total.Seconds(),
		DailyAverageSeconds: report.DailyAverage.Seconds(),
		ProfileSeconds:      make([]float64, 0, len(report.Profile)),
		Days:                make([]jsonDay, 0, report.Days),
	}

	for _, d := range report.Profile {
		doc.ProfileSeconds = append(doc.ProfileSeconds, d.Seconds())
	}

	for _, day := range chronologicalDays(report) {
		entry := jsonDay{
			Date:          day.Date.Format("2006-01-02"),
			Weekday:       day.Date.Format("Monday"),
			Weekend:       day.Weekend,
			UptimeSeconds: day.Total.Seconds(),
			SlotSeconds:   make([]float64, 0, len(day.Points)),
		}
		for _, point := range day.Points {
			entry.SlotSeconds = append(entry.SlotSeconds, point.InSlot.Seconds())
		}
		doc.Days = append(doc.Days, entry)
	}

	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

// chronologicalDays flattens the newest-first month blocks into an
// oldest-first day list.
func chronologicalDays(report *layout.Report) []layout.DayBar {
	var days []layout.DayBar
	for m := len(report.Months) - 1; m >= 0; m-- {
		month := report.Months[m]
		for d := len(month.Days) - 1; d >= 0; d-- {
			days = append(days, month.Days[d])
		}
	}
	return days
}
