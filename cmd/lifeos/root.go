package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lvogt/lifeos/internal/config"
	"github.com/lvogt/lifeos/internal/log"
	"github.com/lvogt/lifeos/internal/output"
	"github.com/lvogt/lifeos/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	plain   bool

	// Shared state injected into commands
	cfg config.Config
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "Keep a personal machine's folder layout and clutter in check",
	Long: `lifeos verifies that your machine follows a declared folder layout
and cleans up the clutter that accumulates on it.

doctor checks the layout, init creates what's missing, and tidy files
away desktop screenshots and stale downloads.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Color and unicode output only on an interactive stdout
		styles.SetPlain(plain || !isatty.IsTerminal(os.Stdout.Fd()))

		// Flags are parsed by now, so the logger sees --verbose
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lifeos: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "List every affected path, not just the summary")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colors and unicode symbols")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newTidyCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
}
