package parser

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/penwyp/go-uptime-chart/internal/core/model"
	"github.com/penwyp/go-uptime-chart/internal/util"
)

// ErrNoRecords is returned when the whole log source output contains no
// parsable reboot record. Headers and malformed lines are expected and
// skipped; producing nothing at all means downstream aggregation would be
// meaningless.
var ErrNoRecords = errors.New("no parsable reboot records")

// linePattern matches one reboot record from last -R -F, e.g.
// "reboot   system boot  Wed Jan 16 21:36:54 2013 - Wed Jan 16 22:05:50 2013  (00:28)"
// The weekday tokens and trailing duration are ignored; only the two
// fixed-width timestamp spans are captured.
var linePattern = regexp.MustCompile(`^reboot\s+system\s+boot\s+\w{3}\s+([\w\d\s:]{20})\s+-\s+\w{3}\s+([\w\d\s:]{20})`)

// timeLayout is the timestamp format used by last -F, with a space-padded day.
const timeLayout = "Jan _2 15:04:05 2006"

// Parser turns raw log source lines into time intervals.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser that interprets timestamps in the given location.
func NewParser(location *time.Location) *Parser {
	if location == nil {
		location = time.Local
	}
	return &Parser{location: location}
}

// ParseLine parses a single line. The second return value is false when the
// line is not a record: non-matching lines, unparsable timestamps and
// degenerate intervals (from not before to) are all skipped, never errors.
func (p *Parser) ParseLine(line string) (model.TimeInterval, bool) {
	match := linePattern.FindStringSubmatch(line)
	if match == nil {
		return model.TimeInterval{}, false
	}

	from, err := time.ParseInLocation(timeLayout, match[1], p.location)
	if err != nil {
		util.LogDebugf("Skip record with bad start timestamp %q: %v", match[1], err)
		return model.TimeInterval{}, false
	}
	to, err := time.ParseInLocation(timeLayout, match[2], p.location)
	if err != nil {
		util.LogDebugf("Skip record with bad end timestamp %q: %v", match[2], err)
		return model.TimeInterval{}, false
	}

	if !from.Before(to) {
		util.LogDebugf("Skip degenerate record %v - %v", from, to)
		return model.TimeInterval{}, false
	}

	return model.TimeInterval{From: from, To: to}, true
}

// ParseLines parses every line, keeping the source's order (most recent
// first). It fails with ErrNoRecords when nothing parsed.
func (p *Parser) ParseLines(lines []string) ([]model.TimeInterval, error) {
	var intervals []model.TimeInterval
	for _, line := range lines {
		if interval, ok := p.ParseLine(line); ok {
			intervals = append(intervals, interval)
		}
	}

	util.LogDebugf("Parsed %d reboot records from %d lines", len(intervals), len(lines))

	if len(intervals) == 0 {
		return nil, fmt.Errorf("%d lines scanned: %w", len(lines), ErrNoRecords)
	}
	return intervals, nil
}
