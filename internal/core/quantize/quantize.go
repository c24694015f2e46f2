package quantize

import (
	"math"
	"time"

	"github.com/penwyp/go-uptime-chart/internal/core/model"
)

// Chart resolution. The histogram stacks HistogramRows lines of
// HistogramLevels glyph levels each; calendar bars use a single line of
// BarLevels (the full block is reserved so adjacent lines stay separated).
const (
	HistogramRows   = 4
	HistogramLevels = 8
	BarLevels       = 7
)

// Normalized maps time-of-day profile values onto the stacked histogram
// rows. Values are first converted to average fractional occupancy per day,
// then normalized against the profile's dynamic range to use the full
// vertical resolution.
type Normalized struct {
	days     int
	minLevel float64
	maxLevel float64
}

// NewNormalized prepares a normalized quantizer for a profile spanning the
// given number of days.
func NewNormalized(profile model.TimeOfDayProfile, days int) *Normalized {
	return &Normalized{
		days:     days,
		minLevel: occupancy(profile.Min(), days),
		maxLevel: occupancy(profile.Max(), days),
	}
}

// Level returns the glyph level in [0, HistogramLevels] for a profile value
// on the given row, row 0 being the bottom one.
//
// A profile with no dynamic range (every half hour of the day saw the same
// amount of uptime) has no meaningful normalization, so every value renders
// mid-scale instead of dividing by zero.
func (q *Normalized) Level(value time.Duration, row int) int {
	normalized := 0.5
	if q.maxLevel > q.minLevel {
		normalized = (occupancy(value, q.days) - q.minLevel) / (q.maxLevel - q.minLevel)
	}

	level := int(math.Round(normalized*HistogramRows*HistogramLevels)) - row*HistogramLevels
	return clamp(level, 0, HistogramLevels)
}

// PerDay maps a single slot's duration onto a bar glyph level against a
// fixed maximum of one full slot. No normalization: a fully running half
// hour always renders as the highest level.
type PerDay struct {
	levels int
}

// NewPerDay creates a per-day quantizer with the given level count.
func NewPerDay(levels int) PerDay {
	return PerDay{levels: levels}
}

// Level returns the glyph level in [0, levels] for a slot duration.
func (q PerDay) Level(inSlot time.Duration) int {
	level := int(math.Round(float64(inSlot) / float64(model.SlotWidth) * float64(q.levels)))
	return clamp(level, 0, q.levels)
}

// occupancy converts an accumulated duration into the average fraction of
// one slot it fills per day.
func occupancy(d time.Duration, days int) float64 {
	return float64(d) / float64(days) / float64(model.SlotWidth)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
