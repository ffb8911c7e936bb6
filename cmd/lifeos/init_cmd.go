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

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create the folders the layout spec declares",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Create every folder declared in the layout spec that does not
exist yet. Existing folders and their contents are left untouched, so
running init repeatedly is safe.

Examples:
  lifeos init       # Create missing folders
  lifeos init -v    # List each created folder`,
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

			created, err := doctor.Ensure(f, home)
			for _, path := range created {
				l.Detailf("created: %s\n", path)
			}
			if err != nil {
				return err
			}

			if len(created) == 0 {
				out.Printf("%s nothing to create (layout already satisfied)\n", styles.OK())
				return nil
			}

			out.Printf("%s created %d folder(s)\n", styles.OK(), len(created))
			if !l.Verbose() {
				out.Println(styles.MutedText("Re-run with -v to list created folders"))
			}
			return nil
		},
	}

	return cmd
}
