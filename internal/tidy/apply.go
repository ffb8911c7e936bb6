package tidy

import (
	"fmt"
	"os"
)

// ApplyResult records what Apply completed. After a failure it holds
// the operations that finished before the error, so the caller can tell
// the user exactly which planned actions did and did not run without
// diffing the report against the filesystem.
type ApplyResult struct {
	Moved   []Move
	Deleted []string
}

// Apply performs the planned operations in report order: screenshot
// moves first, downloads deletions second. The screenshots destination
// is created (recursively, idempotently) only when at least one move is
// planned. The first failing operation stops the run with an error
// naming the action and path; completed operations are not rolled back.
func Apply(report *Report, opts Options) (*ApplyResult, error) {
	result := &ApplyResult{}

	if len(report.PlannedMoves) > 0 {
		if err := os.MkdirAll(opts.ScreenshotsDir, 0755); err != nil {
			return result, fmt.Errorf("failed to create screenshots destination %s: %w", opts.ScreenshotsDir, err)
		}
	}

	for _, mv := range report.PlannedMoves {
		if err := os.Rename(mv.Source, mv.Dest); err != nil {
			return result, fmt.Errorf("failed to move screenshot %s to %s: %w", mv.Source, mv.Dest, err)
		}
		result.Moved = append(result.Moved, mv)
	}

	for _, path := range report.PlannedDeletions {
		if err := removePath(path); err != nil {
			return result, err
		}
		result.Deleted = append(result.Deleted, path)
	}

	return result, nil
}

// removePath deletes path, recursively when it is a directory.
func removePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	if info.IsDir() {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to delete dir %s: %w", path, err)
		}
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}
