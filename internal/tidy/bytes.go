package tidy

import "fmt"

var byteUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// HumanBytes formats a byte count using binary (1024-based) units,
// picking the largest unit where the scaled value stays below 1024.
// Plain bytes print as a bare integer; larger units get one decimal.
func HumanBytes(bytes uint64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}
