package tidy

import "time"

// RetentionAge is how long a downloads item may sit untouched before it
// becomes eligible for deletion by age.
const RetentionAge = 7 * 24 * time.Hour

// Options control a single tidy run. All paths must be absolute; tilde
// expansion is the caller's job (see internal/config).
type Options struct {
	Apply              bool
	DeleteAllDownloads bool
	DesktopDir         string
	DownloadsDir       string
	ScreenshotsDir     string
}

// Move is a planned rename from Source to a collision-free Dest.
type Move struct {
	Source string
	Dest   string
}

// Report describes everything a tidy run found and intends to do.
// PlannedMoves pairs up with DesktopScreenshots one to one, in the same
// order. PlannedDeletions is all of DownloadsItems under
// DeleteAllDownloads, otherwise exactly DownloadsOldItems.
type Report struct {
	DesktopScreenshots []string
	DesktopOther       []string

	DownloadsItems      []string
	DownloadsTotalBytes uint64
	DownloadsOldItems   []string
	DownloadsOldBytes   uint64

	PlannedMoves     []Move
	PlannedDeletions []string
}

// Plan scans the desktop and downloads directories and builds the tidy
// report for opts. This is the read-only half of a run; hand the report
// to Apply to perform it.
func Plan(opts Options) (*Report, error) {
	desktop, err := Scan(opts.DesktopDir)
	if err != nil {
		return nil, err
	}
	downloads, err := Scan(opts.DownloadsDir)
	if err != nil {
		return nil, err
	}
	return BuildPlan(desktop, downloads, opts, time.Now()), nil
}

// BuildPlan classifies the scanned entries and assembles the report.
// The deletion cutoff is computed once from now, not per entry. Nothing
// on disk is mutated; destination resolution only probes for existence.
func BuildPlan(desktop, downloads []Entry, opts Options, now time.Time) *Report {
	report := &Report{}
	cutoff := now.Add(-RetentionAge)

	for _, e := range desktop {
		if !e.IsDir && IsScreenshot(e.Name) {
			report.DesktopScreenshots = append(report.DesktopScreenshots, e.Path)
			report.PlannedMoves = append(report.PlannedMoves, Move{
				Source: e.Path,
				Dest:   UniqueDestination(opts.ScreenshotsDir, e.Name),
			})
			continue
		}
		report.DesktopOther = append(report.DesktopOther, e.Path)
	}

	for _, e := range downloads {
		if IsHidden(e.Name) {
			continue
		}
		report.DownloadsItems = append(report.DownloadsItems, e.Path)
		report.DownloadsTotalBytes = satAdd(report.DownloadsTotalBytes, e.Size)

		old := isOld(e, cutoff)
		if old {
			report.DownloadsOldItems = append(report.DownloadsOldItems, e.Path)
			report.DownloadsOldBytes = satAdd(report.DownloadsOldBytes, e.Size)
		}
		if opts.DeleteAllDownloads || old {
			report.PlannedDeletions = append(report.PlannedDeletions, e.Path)
		}
	}

	return report
}

// isOld reports whether the entry's mtime is before cutoff. An entry
// whose mtime could not be read is never old: it is not auto-deleted by
// age, though it stays deletable under DeleteAllDownloads.
func isOld(e Entry, cutoff time.Time) bool {
	if e.ModTime.IsZero() {
		return false
	}
	return e.ModTime.Before(cutoff)
}
