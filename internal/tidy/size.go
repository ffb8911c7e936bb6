package tidy

import (
	"math"
	"os"
	"path/filepath"
)

// PathSize returns the size in bytes of the file at path, or the
// recursive size of its children when path is a directory. Inaccessible
// paths contribute 0 and sums saturate instead of wrapping, so the
// result is always a best-effort estimate and never an error.
func PathSize(path string) uint64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	if info.IsDir() {
		return dirSize(path)
	}
	return uint64(info.Size())
}

func dirSize(dir string) uint64 {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	var total uint64
	for _, e := range entries {
		total = satAdd(total, PathSize(filepath.Join(dir, e.Name())))
	}
	return total
}

// satAdd adds two byte counts, clamping at the maximum instead of
// wrapping around.
func satAdd(a, b uint64) uint64 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint64
}
