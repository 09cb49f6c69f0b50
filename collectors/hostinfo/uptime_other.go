//go:build !linux && !darwin

package hostinfo

import "time"

// bootUptime returns 0 on platforms without a fallback uptime source.
func bootUptime() time.Duration {
	return 0
}
