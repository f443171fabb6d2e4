package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	identifyPatternsPath string
	identifyFormat       string
)

var identifyCmd = &cobra.Command{
	Use:   "identify <input>",
	Short: "List the patterns an input satisfies",
	Long:  "Check an input against every pattern definition and list those that accept it",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().StringVar(&identifyPatternsPath, "file", "", "Path to a custom pattern catalog file or directory")
	identifyCmd.Flags().StringVar(&identifyFormat, "format", "table", "Output format: table, json")
}

func runIdentify(cmd *cobra.Command, args []string) error {
	core, err := newCore(cmd, identifyPatternsPath)
	if err != nil {
		return err
	}

	result := core.Identify(args[0])

	if identifyFormat == "json" {
		return outputJSON(cmd, result)
	}
	if identifyFormat != "table" {
		return fmt.Errorf("unknown output format: %s", identifyFormat)
	}

	if len(result.Matches) == 0 {
		warnf(cmd, "no pattern accepts %q", result.Input)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tName\n")
	fmt.Fprintf(w, "--\t----\n")
	for _, m := range result.Matches {
		fmt.Fprintf(w, "%s\t%s\n", m.ID, m.Name)
	}
	return nil
}
