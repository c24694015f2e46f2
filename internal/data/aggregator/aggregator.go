package aggregator

import (
	"fmt"
	"time"

	"github.com/penwyp/go-uptime-chart/internal/core/model"
	"github.com/penwyp/go-uptime-chart/internal/util"
)

// Aggregation is the result of folding the merged intervals into half-hour
// slots across the whole period.
type Aggregation struct {
	Period model.Period
	// Points holds one entry per slot across the whole period, in
	// chronological order.
	Points []model.PeriodPoint
	// Profile accumulates the same durations per half-hour-of-day.
	// Its sum always equals the sum over Points.
	Profile model.TimeOfDayProfile
	// Total is the overall running time within the period.
	Total time.Duration
}

// Days returns the number of calendar days in the aggregated period.
func (a *Aggregation) Days() int {
	return a.Period.Days()
}

// DailyAverage returns the mean running time per day.
func (a *Aggregation) DailyAverage() time.Duration {
	return a.Total / time.Duration(a.Days())
}

// SlotAggregator computes per-slot overlap durations for merged intervals.
type SlotAggregator struct{}

// NewSlotAggregator creates a new SlotAggregator.
func NewSlotAggregator() *SlotAggregator {
	return &SlotAggregator{}
}

// Aggregate walks every half-hour slot of the period derived from the given
// merged, non-overlapping intervals. The walk runs from the period end
// backwards, matching the most-recent-first record order; the point list is
// reversed afterwards because the calendar renderer consumes days from their
// start.
func (s *SlotAggregator) Aggregate(intervals []model.TimeInterval) (*Aggregation, error) {
	if len(intervals) == 0 {
		return nil, fmt.Errorf("no intervals to aggregate")
	}

	start := time.Now()
	period := model.NewPeriod(intervals)

	agg := &Aggregation{
		Period: period,
		Points: make([]model.PeriodPoint, 0, period.Slots()),
	}

	current := period.Latest
	for current.After(period.Earliest) {
		current = current.Add(-model.SlotWidth)
		slot := model.TimeInterval{From: current, To: current.Add(model.SlotWidth)}

		var inSlot time.Duration
		for _, interval := range intervals {
			inSlot += slot.Overlap(interval)
		}

		agg.Points = append(agg.Points, model.PeriodPoint{Time: current, InSlot: inSlot})
		agg.Profile[model.SlotOfDay(current)] += inSlot
		agg.Total += inSlot
	}

	// Computed newest-first, consumed oldest-first.
	for i, j := 0, len(agg.Points)-1; i < j; i, j = i+1, j-1 {
		agg.Points[i], agg.Points[j] = agg.Points[j], agg.Points[i]
	}

	util.LogDebugf("Aggregated %d slots over %d days in %v",
		len(agg.Points), agg.Days(), time.Since(start))

	return agg, nil
}
