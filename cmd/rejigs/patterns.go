package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/praetorian-inc/rejigs/pkg/catalog"
	"github.com/praetorian-inc/rejigs/pkg/types"
	"github.com/spf13/cobra"
)

var (
	patternsPath    string
	patternsFormat  string
	patternsInclude string
	patternsExclude string
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Inspect pattern definitions",
	Long:  "Commands for listing and inspecting pattern definitions",
}

var patternsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available patterns",
	Long:  "Display all available pattern definitions with their IDs and names",
	RunE:  runPatternsList,
}

var patternsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one pattern definition",
	Long:  "Display the regex, options, keywords and examples of a pattern definition",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatternsShow,
}

func init() {
	patternsCmd.AddCommand(patternsListCmd)
	patternsCmd.AddCommand(patternsShowCmd)

	patternsCmd.PersistentFlags().StringVar(&patternsPath, "file", "", "Path to a custom pattern catalog file or directory")
	patternsCmd.PersistentFlags().StringVar(&patternsFormat, "format", "table", "Output format: table, json")
	patternsListCmd.Flags().StringVar(&patternsInclude, "include", "", "Include patterns whose ID matches a regex (comma-separated)")
	patternsListCmd.Flags().StringVar(&patternsExclude, "exclude", "", "Exclude patterns whose ID matches a regex (comma-separated)")
}

func runPatternsList(cmd *cobra.Command, args []string) error {
	defs, err := loadDefinitions(patternsPath)
	if err != nil {
		return err
	}

	defs, err = catalog.Filter(defs, catalog.FilterConfig{
		Include: catalog.ParsePatterns(patternsInclude),
		Exclude: catalog.ParsePatterns(patternsExclude),
	})
	if err != nil {
		return fmt.Errorf("filtering patterns: %w", err)
	}

	switch patternsFormat {
	case "json":
		return outputJSON(cmd, defs)
	case "table":
		return outputPatternsTable(cmd, defs)
	default:
		return fmt.Errorf("unknown output format: %s", patternsFormat)
	}
}

func runPatternsShow(cmd *cobra.Command, args []string) error {
	defs, err := loadDefinitions(patternsPath)
	if err != nil {
		return err
	}

	id := args[0]
	for _, d := range defs {
		if d.ID != id {
			continue
		}
		switch patternsFormat {
		case "json":
			return outputJSON(cmd, d)
		case "table":
			return outputPatternDetail(cmd, d)
		default:
			return fmt.Errorf("unknown output format: %s", patternsFormat)
		}
	}
	return fmt.Errorf("unknown pattern: %s", id)
}

// =============================================================================
// HELPERS
// =============================================================================

func outputJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outputPatternsTable(cmd *cobra.Command, defs []*types.Definition) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tName\tCategories\n")
	fmt.Fprintf(w, "--\t----\t----------\n")

	for _, d := range defs {
		categories := ""
		if len(d.Categories) > 0 {
			categories = d.Categories[0]
			if len(d.Categories) > 1 {
				categories += fmt.Sprintf(" (+%d)", len(d.Categories)-1)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Name, categories)
	}

	return nil
}

func outputPatternDetail(cmd *cobra.Command, d *types.Definition) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID:\t%s\n", d.ID)
	fmt.Fprintf(w, "Name:\t%s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(w, "Description:\t%s\n", d.Description)
	}
	fmt.Fprintf(w, "Pattern:\t%s\n", d.Pattern)
	fmt.Fprintf(w, "Options:\t%s\n", d.Options)
	fmt.Fprintf(w, "Structural ID:\t%s\n", d.StructuralID)
	writeList(w, "Categories:", d.Categories)
	writeList(w, "Keywords:", d.Keywords)
	writeList(w, "Examples:", d.Examples)
	writeList(w, "Negative examples:", d.NegativeExamples)

	return nil
}

func writeList(w *tabwriter.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\t%s\n", label, strings.Join(items, ", "))
}
