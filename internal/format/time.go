// Package format provides shared byte, uptime, and string formatting helpers.
package format

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// FormatUptime renders a count of seconds as "3d 4h 5m", "4h 5m" or "5m".
// The largest non-zero unit picks the format; seconds are always dropped.
func FormatUptime(seconds uint64) string {
	days := seconds / secondsPerDay
	hours := (seconds % secondsPerDay) / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// FormatUptimeDuration is FormatUptime for a time.Duration. Negative
// durations render as "0m".
func FormatUptimeDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return FormatUptime(uint64(d / time.Second))
}
