// Package cli implements the tracectl command-line interface using Cobra.
// It provides commands for managing tracing sessions, channels, event
// rules, and process-attribute trackers through the lttng client.
package cli

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/majorcontext/tracectl/internal/config"
	"github.com/majorcontext/tracectl/internal/log"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "tracectl",
	Short: "tracectl - Control plane for LTTng tracing sessions",
	Long: `tracectl manages tracing sessions through the lttng command-line client.

Sessions, channels, context fields, event rules, and process-attribute
trackers are created and driven with one client invocation per operation;
failures carry the client's own diagnostics.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Structured output when stderr is not a terminal, unless the
		// caller chose explicitly.
		if !cmd.Flags().Changed("json") && !isatty.IsTerminal(os.Stderr.Fd()) {
			jsonOut = true
		}

		cfg, _ := config.Load()
		debugDir := filepath.Join(config.Dir(), "debug")

		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      debugDir,
			RetentionDays: cfg.Debug.RetentionDays,
		}); err != nil {
			// Log init failure is non-fatal - fall back to the default logger
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Close()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output logs in JSON format")
}
