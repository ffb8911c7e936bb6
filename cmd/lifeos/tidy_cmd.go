package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lvogt/lifeos/internal/log"
	"github.com/lvogt/lifeos/internal/output"
	"github.com/lvogt/lifeos/internal/tidy"
	"github.com/lvogt/lifeos/internal/ui/prompt"
	"github.com/lvogt/lifeos/internal/ui/styles"
)

func newTidyCmd() *cobra.Command {
	var (
		apply bool
		all   bool
		yes   bool
	)

	cmd := &cobra.Command{
		Use:     "tidy",
		Short:   "File away desktop screenshots and stale downloads",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Move screenshots off the desktop and delete stale downloads.

Screenshots ("Screenshot *.png" files) move from the desktop into the
screenshots folder, renamed if a file with the same name already sits
there. Non-hidden downloads untouched for more than 7 days are deleted;
with --all everything non-hidden in downloads goes.

Without --apply nothing changes: tidy prints what it would do.

Examples:
  lifeos tidy                 # Show the plan, change nothing
  lifeos tidy --apply         # Perform the plan
  lifeos tidy --apply --all   # Also delete every non-hidden download`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			opts := tidy.Options{
				Apply:              apply,
				DeleteAllDownloads: all,
				DesktopDir:         cfg.DesktopDir,
				DownloadsDir:       cfg.DownloadsDir,
				ScreenshotsDir:     cfg.ScreenshotsDir,
			}

			report, err := tidy.Plan(opts)
			if err != nil {
				return err
			}

			renderTidyReport(out, l, report, opts)

			if !apply {
				return nil
			}

			if all && len(report.PlannedDeletions) > 0 && !yes {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return errors.New("refusing to delete all downloads without confirmation; re-run with --yes")
				}
				res, err := prompt.Confirm(fmt.Sprintf("Delete all %d downloads item(s)?", len(report.PlannedDeletions)))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					out.Println("Aborted, nothing changed")
					return nil
				}
			}

			result, applyErr := tidy.Apply(report, opts)
			if applyErr != nil {
				renderPartial(out, report, result)
				return applyErr
			}

			out.Printf("%s moved %d screenshot(s), deleted %d downloads item(s)\n",
				styles.OK(), len(result.Moved), len(result.Deleted))
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Perform the planned moves and deletions")
	cmd.Flags().BoolVar(&all, "all", false, "Delete every non-hidden downloads item, not just stale ones")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the --all confirmation prompt")

	return cmd
}
