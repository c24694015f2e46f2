package model

import (
	"time"
)

// Period is the day-aligned span covering all known activity. Earliest is the
// midnight of the least recent interval start; Latest is the midnight strictly
// after the most recent interval end. Both carry the same location.
type Period struct {
	Earliest time.Time
	Latest   time.Time
}

// DayStart returns midnight of the day containing t, in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewPeriod derives the period from a non-empty interval list. The bounds are
// computed over the whole list rather than taken from the first and last
// element, so a source that emits records out of order still yields the
// correct span.
func NewPeriod(intervals []TimeInterval) Period {
	earliest := intervals[0].From
	latest := intervals[0].To
	for _, iv := range intervals[1:] {
		if iv.From.Before(earliest) {
			earliest = iv.From
		}
		if iv.To.After(latest) {
			latest = iv.To
		}
	}
	return Period{
		Earliest: DayStart(earliest),
		Latest:   DayStart(latest).AddDate(0, 0, 1),
	}
}

// Days returns the number of calendar days in the period. Days are counted by
// walking midnights, so a daylight-saving shift or a leap day does not skew
// the count.
func (p Period) Days() int {
	days := 0
	for d := p.Earliest; d.Before(p.Latest); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// Slots returns the number of half-hour slots in the period. Slots are
// absolute 30-minute steps, so a day across a whole-hour DST transition
// contributes 46 or 50 of them.
func (p Period) Slots() int {
	return int(p.Latest.Sub(p.Earliest) / SlotWidth)
}
