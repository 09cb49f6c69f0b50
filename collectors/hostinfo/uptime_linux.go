//go:build linux

package hostinfo

import (
	"os"
	"time"
)

// bootUptime returns the system uptime on Linux by reading /proc/uptime.
func bootUptime() time.Duration {
	data, err := os.ReadFile("/proc/uptime")
	if err != nil {
		return 0
	}
	seconds, err := parseProcUptime(data)
	if err != nil {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
