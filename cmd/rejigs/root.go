package main

import (
	"fmt"
	"io"

	"github.com/praetorian-inc/rejigs/pkg/scanner"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "rejigs",
	Short: "Rejigs - readable, composable regular expressions",
	Long: `Rejigs builds regular expressions from small readable steps.

The CLI works with a catalog of named pattern definitions: the built-in
ones and any YAML catalog passed with --file. Definitions can be listed,
checked against inputs, used to identify an unknown value, verified against
their own examples or served over NDJSON.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// stderrLogger writes scanner debug output as "[debug] ..." lines
type stderrLogger struct {
	w io.Writer
}

func (l stderrLogger) Log(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[debug] "+format+"\n", args...)
}

// newLogger returns a stderr logger under --verbose and a no-op otherwise.
func newLogger(cmd *cobra.Command) scanner.DebugLogger {
	if verbose && !quiet {
		return stderrLogger{w: cmd.ErrOrStderr()}
	}
	return scanner.NoopLogger{}
}

func warnf(cmd *cobra.Command, format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "[warn] "+format+"\n", args...)
}
