package main

import (
	"github.com/lvogt/lifeos/internal/log"
	"github.com/lvogt/lifeos/internal/output"
	"github.com/lvogt/lifeos/internal/tidy"
	"github.com/lvogt/lifeos/internal/ui/styles"
)

// renderTidyReport prints the plan summary on stdout and, in verbose
// mode, the per-path actions on stderr.
func renderTidyReport(out *output.Printer, l *log.Logger, report *tidy.Report, opts tidy.Options) {
	out.Printf("Desktop: %d screenshot(s), %d other item(s)\n",
		len(report.DesktopScreenshots), len(report.DesktopOther))
	out.Printf("Downloads: %d item(s), %s total\n",
		len(report.DownloadsItems), tidy.HumanBytes(report.DownloadsTotalBytes))
	if len(report.DownloadsOldItems) > 0 {
		out.Printf("%s %d item(s) untouched for over 7 days, %s\n",
			styles.Warn(), len(report.DownloadsOldItems), tidy.HumanBytes(report.DownloadsOldBytes))
	}

	for _, mv := range report.PlannedMoves {
		l.Detailf("move %s %s %s\n", mv.Source, styles.Arrow(), mv.Dest)
	}
	for _, path := range report.PlannedDeletions {
		l.Detailf("delete %s\n", path)
	}

	out.Printf("Planned: %d move(s), %d deletion(s)", len(report.PlannedMoves), len(report.PlannedDeletions))
	if !opts.Apply {
		out.Print(" " + styles.MutedText("(dry run, nothing changed)"))
	}
	out.Println()
}

// renderPartial reports how far a failed apply got.
func renderPartial(out *output.Printer, report *tidy.Report, result *tidy.ApplyResult) {
	out.Printf("%s apply stopped early: %d of %d move(s) and %d of %d deletion(s) completed\n",
		styles.Missing(),
		len(result.Moved), len(report.PlannedMoves),
		len(result.Deleted), len(report.PlannedDeletions))
}
