package layout

import (
	"time"

	"github.com/penwyp/go-uptime-chart/internal/core/model"
	"github.com/penwyp/go-uptime-chart/internal/core/quantize"
	"github.com/penwyp/go-uptime-chart/internal/data/aggregator"
)

// GridSpacing is the slot stride between vertical grid lines: every 12th of
// the 48 half-hour slots, one line per 6 hours.
const GridSpacing = 12

// GridMark reports whether the slot at the given index within a day carries
// a grid line.
func GridMark(slotIndex int) bool {
	return slotIndex%GridSpacing == 0
}

// DayBar is one calendar line: the quantized bar levels for every slot of a
// single day, plus its annotations. Levels and Points run chronologically
// and have equal length (48 slots, or 46/50 across a DST transition).
type DayBar struct {
	Date    time.Time
	Weekend bool
	Sunday  bool
	Levels  []int
	Points  []model.PeriodPoint
	Total   time.Duration
}

// MonthBlock groups the day bars of one calendar month. Days are ordered
// most recent first, the order they are printed in.
type MonthBlock struct {
	Label string
	Days  []DayBar
}

// Report is everything the output formats consume: summary scalars, the four
// quantized histogram rows and the per-month calendar blocks. Building it is
// pure data shaping; styling happens downstream.
type Report struct {
	Period       model.Period
	Days         int
	Total        time.Duration
	DailyAverage time.Duration
	Profile      model.TimeOfDayProfile

	// Histogram holds one level per profile bucket for each row,
	// row 0 being the bottom row.
	Histogram [quantize.HistogramRows][model.SlotsPerDay]int

	// Months are ordered most recent first.
	Months []MonthBlock
}

// BuildReport shapes an aggregation into the renderable report.
func BuildReport(agg *aggregator.Aggregation) *Report {
	report := &Report{
		Period:       agg.Period,
		Days:         agg.Days(),
		Total:        agg.Total,
		DailyAverage: agg.DailyAverage(),
		Profile:      agg.Profile,
	}

	normalized := quantize.NewNormalized(agg.Profile, report.Days)
	for row := 0; row < quantize.HistogramRows; row++ {
		for slot, value := range agg.Profile {
			report.Histogram[row][slot] = normalized.Level(value, row)
		}
	}

	report.Months = buildMonths(agg)
	return report
}

// buildMonths walks the period day by day from the end backwards, grouping
// consecutive days into month blocks.
func buildMonths(agg *aggregator.Aggregation) []MonthBlock {
	pointsByDay := groupPointsByDay(agg.Points)
	bars := quantize.NewPerDay(quantize.BarLevels)

	var months []MonthBlock
	currentMonth := time.Month(0)
	currentYear := 0

	day := agg.Period.Latest
	for day.After(agg.Period.Earliest) {
		day = day.AddDate(0, 0, -1)

		if day.Month() != currentMonth || day.Year() != currentYear {
			currentMonth = day.Month()
			currentYear = day.Year()
			months = append(months, MonthBlock{Label: day.Format("January 2006")})
		}

		points := pointsByDay[day]
		bar := DayBar{
			Date:    day,
			Weekend: day.Weekday() == time.Saturday || day.Weekday() == time.Sunday,
			Sunday:  day.Weekday() == time.Sunday,
			Levels:  make([]int, 0, len(points)),
			Points:  points,
		}
		for _, point := range points {
			bar.Levels = append(bar.Levels, bars.Level(point.InSlot))
			bar.Total += point.InSlot
		}

		block := &months[len(months)-1]
		block.Days = append(block.Days, bar)
	}

	return months
}

// groupPointsByDay buckets the chronological point list by the midnight of
// each slot start. Slot order within a day is preserved.
func groupPointsByDay(points []model.PeriodPoint) map[time.Time][]model.PeriodPoint {
	byDay := make(map[time.Time][]model.PeriodPoint)
	for _, point := range points {
		day := model.DayStart(point.Time)
		byDay[day] = append(byDay[day], point)
	}
	return byDay
}
