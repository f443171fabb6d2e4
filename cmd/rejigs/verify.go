package main

import (
	"fmt"

	"github.com/praetorian-inc/rejigs/pkg/catalog"
	"github.com/spf13/cobra"
)

var verifyPatternsPath string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify pattern definitions against their examples",
	Long: `Compile every pattern definition and run its examples: each example
must validate and each negative example must be rejected.

Exits with a non-zero status when any definition fails.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyPatternsPath, "file", "", "Path to a custom pattern catalog file or directory")
}

func runVerify(cmd *cobra.Command, args []string) error {
	defs, err := loadDefinitions(verifyPatternsPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, d := range defs {
		if err := catalog.VerifyDefinition(d); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s\n%v\n", d.ID, err)
			continue
		}
		if !quiet {
			fmt.Fprintf(out, "ok   %s\n", d.ID)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d definitions failed verification", failed, len(defs))
	}
	if !quiet {
		fmt.Fprintf(out, "\n%d definitions verified\n", len(defs))
	}
	return nil
}
