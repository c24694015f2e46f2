package model

import (
	"time"
)

// Slot granularity used for all aggregation. Days are the major granularity
// (chart lines), half hours the minor one (chart columns).
const (
	SlotWidth   = 30 * time.Minute
	SlotsPerDay = 48
)

// TimeInterval is a closed-open span [From, To) during which the machine was
// running. The parser only ever produces intervals with From before To.
type TimeInterval struct {
	From time.Time
	To   time.Time
}

// Duration returns the length of the interval.
func (i TimeInterval) Duration() time.Duration {
	return i.To.Sub(i.From)
}

// Overlap returns the length of the intersection of two intervals,
// or zero if they do not intersect.
func (i TimeInterval) Overlap(o TimeInterval) time.Duration {
	from := i.From
	if o.From.After(from) {
		from = o.From
	}
	to := i.To
	if o.To.Before(to) {
		to = o.To
	}
	if !from.Before(to) {
		return 0
	}
	return to.Sub(from)
}

// Overlaps reports whether the two intervals share any positive amount of time.
func (i TimeInterval) Overlaps(o TimeInterval) bool {
	return i.Overlap(o) > 0
}

// Union returns the smallest interval covering both inputs.
func (i TimeInterval) Union(o TimeInterval) TimeInterval {
	u := i
	if o.From.Before(u.From) {
		u.From = o.From
	}
	if o.To.After(u.To) {
		u.To = o.To
	}
	return u
}

// PeriodPoint is the aggregated overlap duration for one half-hour slot.
// Time is the slot start; InSlot is bounded by [0, SlotWidth].
type PeriodPoint struct {
	Time   time.Time
	InSlot time.Duration
}

// TimeOfDayProfile accumulates overlap duration per half-hour-of-day,
// summed over every day in the period. Index 0 is 0:00-0:30.
type TimeOfDayProfile [SlotsPerDay]time.Duration

// SlotOfDay returns the profile index for a slot starting at t.
func SlotOfDay(t time.Time) int {
	idx := t.Hour() * 2
	if t.Minute() >= 30 {
		idx++
	}
	return idx
}

// Min returns the smallest bucket value in the profile.
func (p TimeOfDayProfile) Min() time.Duration {
	min := p[0]
	for _, d := range p[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

// Max returns the largest bucket value in the profile.
func (p TimeOfDayProfile) Max() time.Duration {
	max := p[0]
	for _, d := range p[1:] {
		if d > max {
			max = d
		}
	}
	return max
}

// Sum returns the total duration accumulated in the profile.
func (p TimeOfDayProfile) Sum() time.Duration {
	var sum time.Duration
	for _, d := range p {
		sum += d
	}
	return sum
}
