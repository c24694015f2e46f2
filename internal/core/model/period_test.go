package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriodDayAligned(t *testing.T) {
	intervals := []TimeInterval{
		interval(t, "2013-01-16 21:36:54", "2013-01-16 22:05:50"),
	}

	period := NewPeriod(intervals)

	assert.Equal(t, mustTime(t, "2013-01-16 00:00:00"), period.Earliest)
	assert.Equal(t, mustTime(t, "2013-01-17 00:00:00"), period.Latest)
	assert.Equal(t, 1, period.Days())
	assert.Equal(t, 48, period.Slots())
}

func TestNewPeriodEndOnMidnight(t *testing.T) {
	// An interval ending exactly at midnight still pushes Latest to the
	// following midnight, keeping Latest strictly after the last end.
	intervals := []TimeInterval{
		interval(t, "2013-01-16 08:00:00", "2013-01-17 00:00:00"),
	}

	period := NewPeriod(intervals)

	assert.Equal(t, mustTime(t, "2013-01-16 00:00:00"), period.Earliest)
	assert.Equal(t, mustTime(t, "2013-01-18 00:00:00"), period.Latest)
	assert.Equal(t, 2, period.Days())
}

func TestNewPeriodUnorderedInput(t *testing.T) {
	intervals := []TimeInterval{
		interval(t, "2013-01-18 10:00:00", "2013-01-18 12:00:00"),
		interval(t, "2013-01-20 10:00:00", "2013-01-20 12:00:00"),
		interval(t, "2013-01-16 10:00:00", "2013-01-16 12:00:00"),
	}

	period := NewPeriod(intervals)

	assert.Equal(t, mustTime(t, "2013-01-16 00:00:00"), period.Earliest)
	assert.Equal(t, mustTime(t, "2013-01-21 00:00:00"), period.Latest)
	assert.Equal(t, 5, period.Days())
	assert.Equal(t, 5*48, period.Slots())
}

func TestPeriodDaysAcrossLeapDay(t *testing.T) {
	intervals := []TimeInterval{
		interval(t, "2024-02-28 12:00:00", "2024-03-01 12:00:00"),
	}

	period := NewPeriod(intervals)

	// Feb 28, Feb 29, Mar 1
	assert.Equal(t, 3, period.Days())
	assert.Equal(t, 3*48, period.Slots())
}

func TestPeriodDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 2013-03-31 is the spring-forward day in Berlin (23 wall-clock hours).
	from := time.Date(2013, time.March, 30, 12, 0, 0, 0, loc)
	to := time.Date(2013, time.April, 1, 12, 0, 0, 0, loc)

	period := NewPeriod([]TimeInterval{{From: from, To: to}})

	assert.Equal(t, 3, period.Days())
	// One day is an hour short: two slots fewer than 3*48.
	assert.Equal(t, 3*48-2, period.Slots())
}

func TestDayStart(t *testing.T) {
	ts := mustTime(t, "2013-01-16 21:36:54")
	assert.Equal(t, mustTime(t, "2013-01-16 00:00:00"), DayStart(ts))
	assert.Equal(t, mustTime(t, "2013-01-16 00:00:00"), DayStart(DayStart(ts)))
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return ts
}
