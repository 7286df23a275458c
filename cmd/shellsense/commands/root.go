// Package commands provides the CLI commands for shellsense.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellsense/shellsense/internal/config"
	"github.com/shellsense/shellsense/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	printLogs bool
	logLevel  string
)

// cfg is resolved once before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "shellsense",
	Short: "shellsense - tells shell commands apart from questions",
	Long: `shellsense classifies each line you type as either a shell command or
natural-language text. Commands are executed; everything else is flagged
instead of being handed to the operating system.

Run 'shellsense' or 'shellsense repl' for an interactive session, or
'shellsense check' to classify a single line from a script.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logging.Init(logging.Config{
			Level:  logging.ParseLevel(level),
			Pretty: printLogs,
		})
	},
	// No subcommand starts the REPL.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&printLogs, "print-logs", false, "Print human-readable logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "WARN", "Log level (DEBUG|INFO|WARN|ERROR)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("shellsense %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(suggestCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
