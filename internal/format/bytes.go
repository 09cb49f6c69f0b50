package format

import "fmt"

// byteUnits are the binary units FormatBytes steps through. There is no
// unit past TB; larger values stay in TB.
var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count using 1024-based units.
// Plain bytes print as an integer ("500 B"); every larger unit prints
// with exactly one decimal digit ("1.0 KB", "1.5 GB").
func FormatBytes(bytes uint64) string {
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", bytes, byteUnits[unit])
	}
	return fmt.Sprintf("%.1f %s", size, byteUnits[unit])
}
