package parser

import (
	"testing"
	"time"

	"github.com/penwyp/go-uptime-chart/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	p := NewParser(time.UTC)

	tests := []struct {
		name     string
		line     string
		expected model.TimeInterval
		ok       bool
	}{
		{
			name: "valid record",
			line: "reboot   system boot  Wed Jan 16 21:36:54 2013 - Wed Jan 16 22:05:50 2013  (00:28)",
			expected: model.TimeInterval{
				From: time.Date(2013, time.January, 16, 21, 36, 54, 0, time.UTC),
				To:   time.Date(2013, time.January, 16, 22, 5, 50, 0, time.UTC),
			},
			ok: true,
		},
		{
			name: "single digit day is space padded",
			line: "reboot   system boot  Sun Jan  6 09:00:00 2013 - Sun Jan  6 17:30:00 2013  (08:30)",
			expected: model.TimeInterval{
				From: time.Date(2013, time.January, 6, 9, 0, 0, 0, time.UTC),
				To:   time.Date(2013, time.January, 6, 17, 30, 0, 0, time.UTC),
			},
			ok: true,
		},
		{
			name: "record spanning midnight",
			line: "reboot   system boot  Thu Jan 17 23:00:00 2013 - Fri Jan 18 01:30:00 2013  (02:30)",
			expected: model.TimeInterval{
				From: time.Date(2013, time.January, 17, 23, 0, 0, 0, time.UTC),
				To:   time.Date(2013, time.January, 18, 1, 30, 0, 0, time.UTC),
			},
			ok: true,
		},
		{
			name: "wtmp trailer",
			line: "wtmp begins Wed Jan 16 21:36:54 2013",
			ok:   false,
		},
		{
			name: "blank line",
			line: "",
			ok:   false,
		},
		{
			name: "login record",
			line: "pew      pts/0        Wed Jan 16 21:40:01 2013 - Wed Jan 16 21:55:12 2013  (00:15)",
			ok:   false,
		},
		{
			name: "still running marker does not match",
			line: "reboot   system boot  Wed Jan 16 21:36:54 2013   still running",
			ok:   false,
		},
		{
			name: "degenerate zero length record dropped",
			line: "reboot   system boot  Wed Jan 16 21:36:54 2013 - Wed Jan 16 21:36:54 2013  (00:00)",
			ok:   false,
		},
		{
			name: "inverted record dropped",
			line: "reboot   system boot  Wed Jan 16 22:36:54 2013 - Wed Jan 16 21:36:54 2013  (00:28)",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := p.ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, result)
				assert.True(t, result.From.Before(result.To))
			}
		})
	}
}

func TestParseLinesKeepsSourceOrder(t *testing.T) {
	p := NewParser(time.UTC)

	// Most recent first, the order last emits
	lines := []string{
		"reboot   system boot  Thu Jan 17 08:00:00 2013 - Thu Jan 17 18:00:00 2013  (10:00)",
		"reboot   system boot  Wed Jan 16 21:36:54 2013 - Wed Jan 16 22:05:50 2013  (00:28)",
		"",
		"wtmp begins Wed Jan 16 21:36:54 2013",
	}

	intervals, err := p.ParseLines(lines)

	require.NoError(t, err)
	require.Len(t, intervals, 2)
	assert.True(t, intervals[0].From.After(intervals[1].From))
}

func TestParseLinesNoRecords(t *testing.T) {
	p := NewParser(time.UTC)

	tests := []struct {
		name  string
		lines []string
	}{
		{name: "no lines", lines: nil},
		{name: "only headers", lines: []string{"wtmp begins Wed Jan 16 21:36:54 2013", ""}},
		{
			name:  "only degenerate records",
			lines: []string{"reboot   system boot  Wed Jan 16 21:36:54 2013 - Wed Jan 16 21:36:54 2013  (00:00)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intervals, err := p.ParseLines(tt.lines)
			assert.Nil(t, intervals)
			assert.ErrorIs(t, err, ErrNoRecords)
		})
	}
}

func TestParseLineUsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	p := NewParser(loc)
	result, ok := p.ParseLine("reboot   system boot  Wed Jan 16 21:36:54 2013 - Wed Jan 16 22:05:50 2013  (00:28)")

	require.True(t, ok)
	assert.Equal(t, loc, result.From.Location())
}
