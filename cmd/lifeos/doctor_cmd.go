package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvogt/lifeos/internal/doctor"
	"github.com/lvogt/lifeos/internal/log"
	"github.com/lvogt/lifeos/internal/output"
	"github.com/lvogt/lifeos/internal/spec"
	"github.com/lvogt/lifeos/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check the folder layout against the spec",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Check that every folder declared in the layout spec exists.

Nothing is created or changed; doctor only reports. A missing area root
is reported once, without listing the paths beneath it.

Examples:
  lifeos doctor       # Check the layout
  lifeos doctor -v    # Also list each area root as it is checked`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to resolve home directory: %w", err)
			}

			f, err := spec.Load(cfg.SpecFile)
			if err != nil {
				return err
			}

			report := doctor.Check(f, home)
			for _, root := range report.Roots {
				l.Detailf("checking %s\n", root)
			}

			out.Printf("%d area(s), %d required path(s)\n", report.Areas, report.Required)
			if report.Ok() {
				out.Printf("%s layout ok\n", styles.OK())
				return nil
			}

			for _, path := range report.Missing {
				out.Printf("%s missing: %s\n", styles.Missing(), path)
			}
			out.Println()
			out.Println("Run 'lifeos init' to create the missing folders")
			return fmt.Errorf("%d missing path(s)", len(report.Missing))
		},
	}

	return cmd
}
