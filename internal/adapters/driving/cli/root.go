// Package cli implements the cobra command tree driving the run
// sheet builder.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pybay/runsheet-cli/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "runsheet",
	Short: "Generate conference run sheets from a Sessionize export",
	Long: `runsheet turns a flattened Sessionize session export into per-room
run sheet workbooks for the organiser and volunteer staff: a summary
tab plus print and mobile detail tabs for every room.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print pipeline diagnostics to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
