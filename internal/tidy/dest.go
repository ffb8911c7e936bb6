package tidy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UniqueDestination returns a collision-free destination for name
// inside destDir. When destDir/name is taken, numbered variants
// "stem (1).ext", "stem (2).ext", ... are probed until a free slot is
// found. Existence checks only; nothing is created, so a collision can
// still appear if the destination changes before the plan is applied.
func UniqueDestination(destDir, name string) string {
	dest := filepath.Join(destDir, name)
	if !exists(dest) {
		return dest
	}

	stem, ext := splitNameExt(name)
	for i := 1; ; i++ {
		candidate := filepath.Join(destDir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

// splitNameExt splits a file name on its last dot. A name without a dot
// has an empty extension.
func splitNameExt(name string) (stem, ext string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i], name[i:]
	}
	return name, ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
