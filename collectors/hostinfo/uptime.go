package hostinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// parseProcUptime reads the first field of /proc/uptime ("12345.67 54321.00").
func parseProcUptime(data []byte) (float64, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty uptime data")
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse uptime %q: %w", fields[0], err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative uptime %v", seconds)
	}
	return seconds, nil
}
