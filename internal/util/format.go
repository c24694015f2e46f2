package util

import (
	"fmt"
	"math"
	"time"
)

// DurationFields splits a duration into total hours, minutes and seconds.
// Hours are not capped at 24 since uptime totals span many days.
func DurationFields(d time.Duration) (hours, minutes, seconds int) {
	total := int(math.Round(d.Seconds()))
	hours = total / 3600
	remainder := total % 3600
	minutes = remainder / 60
	seconds = remainder % 60
	return hours, minutes, seconds
}

// FormatDuration formats a duration as "X hours Y minutes".
func FormatDuration(d time.Duration) string {
	hours, minutes, _ := DurationFields(d)
	return fmt.Sprintf("%d hours %d minutes", hours, minutes)
}

// FormatDurationShort formats a duration as "H:MM", or an empty string for
// anything under a minute.
func FormatDurationShort(d time.Duration) string {
	hours, minutes, _ := DurationFields(d)
	if hours == 0 && minutes == 0 {
		return ""
	}
	if hours == 0 {
		return fmt.Sprintf(":%02d", minutes)
	}
	return fmt.Sprintf("%d:%02d", hours, minutes)
}
