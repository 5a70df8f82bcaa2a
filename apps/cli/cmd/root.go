package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "speclog",
	Short: "Reduce and route browser test logs.",
	Long: `speclog processes the structured logs captured while browser tests
run: it compacts each test's log sequence around failures, prints it to
the terminal with per-category styling, and writes the accumulated run
to JSON, plain-text, or custom output files under a pass/fail policy.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(versionCmd)
}
