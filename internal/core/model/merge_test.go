package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalDuration(intervals []TimeInterval) time.Duration {
	var sum time.Duration
	for _, iv := range intervals {
		sum += iv.Duration()
	}
	return sum
}

func assertNoOverlaps(t *testing.T, intervals []TimeInterval) {
	t.Helper()
	for i := range intervals {
		for j := i + 1; j < len(intervals); j++ {
			assert.False(t, intervals[i].Overlaps(intervals[j]),
				"intervals %d and %d overlap", i, j)
		}
	}
}

func TestMergeTwoOverlapping(t *testing.T) {
	input := []TimeInterval{
		interval(t, "2013-01-16 01:00:00", "2013-01-16 02:00:00"),
		interval(t, "2013-01-16 01:30:00", "2013-01-16 03:00:00"),
	}

	merged := Merge(input)

	require.Len(t, merged, 1)
	assert.Equal(t, interval(t, "2013-01-16 01:00:00", "2013-01-16 03:00:00"), merged[0])
}

func TestMergeChainNeedsMultiplePasses(t *testing.T) {
	// A single adjacent-pair pass merges the first two and leaves the
	// resulting union overlapping the third; the fixpoint loop must pick
	// that up.
	input := []TimeInterval{
		interval(t, "2013-01-16 01:00:00", "2013-01-16 02:00:00"),
		interval(t, "2013-01-16 01:30:00", "2013-01-16 03:00:00"),
		interval(t, "2013-01-16 02:30:00", "2013-01-16 04:00:00"),
		interval(t, "2013-01-16 03:30:00", "2013-01-16 05:00:00"),
	}

	merged := Merge(input)

	require.Len(t, merged, 1)
	assert.Equal(t, interval(t, "2013-01-16 01:00:00", "2013-01-16 05:00:00"), merged[0])
}

func TestMergeDisjointUnchanged(t *testing.T) {
	input := []TimeInterval{
		interval(t, "2013-01-17 08:00:00", "2013-01-17 18:00:00"),
		interval(t, "2013-01-16 08:00:00", "2013-01-16 18:00:00"),
	}

	merged := Merge(input)

	assert.Equal(t, input, merged)
	// Duration is conserved when nothing overlapped
	assert.Equal(t, totalDuration(input), totalDuration(merged))
}

func TestMergeIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		input []TimeInterval
	}{
		{
			name:  "empty",
			input: nil,
		},
		{
			name: "single interval",
			input: []TimeInterval{
				interval(t, "2013-01-16 01:00:00", "2013-01-16 02:00:00"),
			},
		},
		{
			name: "overlapping pair",
			input: []TimeInterval{
				interval(t, "2013-01-16 01:00:00", "2013-01-16 02:00:00"),
				interval(t, "2013-01-16 01:30:00", "2013-01-16 03:00:00"),
			},
		},
		{
			name: "mixed overlap and gap",
			input: []TimeInterval{
				interval(t, "2013-01-18 09:00:00", "2013-01-18 11:00:00"),
				interval(t, "2013-01-18 10:00:00", "2013-01-18 12:00:00"),
				interval(t, "2013-01-16 08:00:00", "2013-01-16 18:00:00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Merge(tt.input)
			twice := Merge(once)

			assert.Equal(t, once, twice)
			assertNoOverlaps(t, once)
			assert.LessOrEqual(t, len(once), len(tt.input))
			assert.LessOrEqual(t, totalDuration(once), totalDuration(tt.input))
		})
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	input := []TimeInterval{
		interval(t, "2013-01-16 01:00:00", "2013-01-16 02:00:00"),
		interval(t, "2013-01-16 01:30:00", "2013-01-16 03:00:00"),
	}
	original := make([]TimeInterval, len(input))
	copy(original, input)

	Merge(input)

	assert.Equal(t, original, input)
}
