package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-uptime-chart/internal/core/quantize"
	"github.com/penwyp/go-uptime-chart/internal/presentation/layout"
	"github.com/penwyp/go-uptime-chart/internal/util"
)

// outputWidth is the chart body width in cells: 48 slots plus the framing
// used by headings.
const outputWidth = 61

// levelGlyphs maps a quantized level to its block glyph. The histogram uses
// the full ramp; calendar bars stop one short so consecutive lines stay
// visually separated.
var levelGlyphs = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

const (
	gridHeader = "▆           ▆           ▆           ▆           ▆"
	gridFooter = "▀           ▀           ▀           ▀           ▀"
)

// ChartRenderer emits the styled summary, histogram and calendar blocks.
type ChartRenderer struct {
	w      io.Writer
	styler *Styler
	sizer  *layout.Sizer
}

// NewChartRenderer creates a renderer writing to w with the given styler.
func NewChartRenderer(w io.Writer, styler *Styler) *ChartRenderer {
	return &ChartRenderer{
		w:      w,
		styler: styler,
		sizer:  layout.SharedSizer(),
	}
}

// Render prints the whole report: summary, histogram, then one block per
// month from the most recent backwards.
func (r *ChartRenderer) Render(report *layout.Report) error {
	// Default foreground for everything not explicitly styled.
	fmt.Fprint(r.w, r.styler.Escape(ForegroundColor, NoColor, false))

	r.renderSummary(report)
	r.renderHistogram(report)
	r.renderMonths(report)

	fmt.Fprint(r.w, r.styler.Reset())
	return nil
}

func (r *ChartRenderer) renderSummary(report *layout.Report) {
	lastDay := report.Period.Latest.AddDate(0, 0, -1)

	fmt.Fprintln(r.w, r.styler.Bold("Period:  ")+
		report.Period.Earliest.Format("January 02 2006")+" – "+
		lastDay.Format("January 02 2006")+
		" ("+
		r.styler.Fg(fmt.Sprintf("%d", report.Days), TimeColor)+
		r.styler.Fg(" days", TimeTextColor)+")")
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styler.Bold("Total time running: ")+r.formatDelta(report.Total))
	fmt.Fprintln(r.w, r.styler.Bold("Daily average:      ")+r.formatDelta(report.DailyAverage))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w)
}

func (r *ChartRenderer) renderHistogram(report *layout.Report) {
	fmt.Fprintln(r.w, r.styler.Bold("Histogram:"))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.timeHeader())
	fmt.Fprintln(r.w, "   max  "+r.styler.Fg(gridHeader, GridColor))

	for row := quantize.HistogramRows - 1; row >= 0; row-- {
		label := "      "
		if row == 0 {
			label = "   min"
		}
		fmt.Fprintln(r.w, r.histogramLine(label, row, report))
	}

	fmt.Fprintln(r.w, "        "+r.styler.Fg(gridFooter, GridColor))
	fmt.Fprintln(r.w)
}

func (r *ChartRenderer) histogramLine(label string, row int, report *layout.Report) string {
	var line strings.Builder
	line.WriteString(label)
	line.WriteString("  ")

	for slot, level := range report.Histogram[row] {
		fg := HistogramColors[row]
		bg := NoColor
		if layout.GridMark(slot) {
			fg = HistogramGridColors[row]
			bg = GridColor
		}
		line.WriteString(r.styler.Style(levelGlyphs[level], fg, bg, false))
	}

	line.WriteString(r.styler.Style(" ", NoColor, GridColor, false))
	return line.String()
}

func (r *ChartRenderer) renderMonths(report *layout.Report) {
	for _, month := range report.Months {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.heading(month.Label))
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.timeHeader())
		fmt.Fprintln(r.w, "        "+r.styler.Fg(gridHeader, GridColor))

		for _, day := range month.Days {
			fmt.Fprintln(r.w, r.dayLine(day))
		}

		fmt.Fprintln(r.w, "        "+r.styler.Fg(gridFooter, GridColor))
	}
}

func (r *ChartRenderer) dayLine(day layout.DayBar) string {
	weekdayColor := WeekdayColor
	if day.Weekend {
		weekdayColor = WeekendColor
	}

	var line strings.Builder
	line.WriteString(r.styler.Style(day.Date.Format("Mon"), weekdayColor, NoColor, day.Sunday))
	line.WriteString(fmt.Sprintf(" %2d", day.Date.Day()))
	line.WriteString("  ")

	for slot, level := range day.Levels {
		fg := BarColor
		bg := NoColor
		switch {
		case day.Weekend && layout.GridMark(slot):
			fg = BarWeekendGridColor
		case day.Weekend:
			fg = BarWeekendColor
		case layout.GridMark(slot):
			fg = BarGridColor
		}
		if layout.GridMark(slot) {
			bg = GridColor
		}
		line.WriteString(r.styler.Style(levelGlyphs[level], fg, bg, false))
	}

	line.WriteString(r.styler.Style(" ", NoColor, GridColor, false))
	line.WriteString(" ")
	line.WriteString(r.formatDeltaShort(day.Total))
	return line.String()
}

// heading frames a month label in a 61-cell wide box top.
func (r *ChartRenderer) heading(label string) string {
	padded := " " + label + " "
	offset := r.sizer.CenterOffset(padded, outputWidth)
	tail := outputWidth - offset - util.GetDisplayWidth(padded)

	return r.styler.Fg("┌"+strings.Repeat("─", offset), HeadingLineColor) +
		r.styler.Fg(padded, HeadingColor) +
		r.styler.Fg(strings.Repeat("─", tail)+"┐", HeadingLineColor)
}

// timeHeader labels the 48 slot columns with their hours and day phases.
func (r *ChartRenderer) timeHeader() string {
	return "       0:00 " + r.styler.Fg("☾", NightColor) +
		"      6:00 " + r.styler.Fg("☀", SunriseColor) +
		"     12:00 " + r.styler.Fg("☀", NoonColor) +
		"     18:00 " + r.styler.Fg("☀", SunsetColor) +
		"     24:00 " + r.styler.Fg("☽", NightColor)
}

// formatDelta renders a duration as "   X hours  Y minutes" with styled
// numerals.
func (r *ChartRenderer) formatDelta(d time.Duration) string {
	hours, minutes, _ := util.DurationFields(d)
	return r.styler.Fg(fmt.Sprintf("%4d", hours), TimeColor) +
		r.styler.Fg(" hours ", TimeTextColor) +
		r.styler.Fg(fmt.Sprintf("%2d", minutes), TimeColor) +
		r.styler.Fg(" minutes", TimeTextColor)
}

// formatDeltaShort renders a duration as "H:MM", blank when under a minute.
func (r *ChartRenderer) formatDeltaShort(d time.Duration) string {
	hours, minutes, _ := util.DurationFields(d)
	if hours == 0 && minutes == 0 {
		return ""
	}
	if hours == 0 {
		return r.styler.Fg("  :", TimeTextColor) + r.styler.Fg(fmt.Sprintf("%02d", minutes), TimeColor)
	}
	return r.styler.Fg(fmt.Sprintf("%2d", hours), TimeColor) +
		r.styler.Fg(":", TimeTextColor) +
		r.styler.Fg(fmt.Sprintf("%02d", minutes), TimeColor)
}
