package tidy

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is a single immediate child of a scanned directory.
type Entry struct {
	Path    string
	Name    string
	IsDir   bool
	Size    uint64    // recursive for directories; 0 when unreadable
	ModTime time.Time // zero when metadata is unreadable
}

// Scan lists the immediate children of dir, non-recursively, in the
// order os.ReadDir yields them (sorted by filename). Failure to list
// the directory itself is fatal for the run. Failure to stat an
// individual child is not: that entry degrades to size 0 and a zero
// mtime but still appears in the result.
func Scan(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := Entry{
			Path:  filepath.Join(dir, de.Name()),
			Name:  de.Name(),
			IsDir: de.IsDir(),
		}
		if info, err := de.Info(); err == nil {
			e.ModTime = info.ModTime()
		}
		e.Size = PathSize(e.Path)
		entries = append(entries, e)
	}
	return entries, nil
}
