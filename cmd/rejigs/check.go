package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/praetorian-inc/rejigs/pkg/scanner"
	"github.com/praetorian-inc/rejigs/pkg/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	checkPatternsPath string
	checkMessage      string
	checkFormat       string
	checkColor        string
)

var checkCmd = &cobra.Command{
	Use:   "check <id> <input>...",
	Short: "Validate inputs against a pattern",
	Long: `Validate each input against the pattern definition <id>.

Exits with a non-zero status when any input is rejected.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkPatternsPath, "file", "", "Path to a custom pattern catalog file or directory")
	checkCmd.Flags().StringVar(&checkMessage, "message", "", "Message reported for rejected inputs")
	checkCmd.Flags().StringVar(&checkFormat, "format", "human", "Output format: human, json")
	checkCmd.Flags().StringVar(&checkColor, "color", "auto", "Color output: auto, always, never")
}

// styles holds color formatters for human output
type styles struct {
	valid   *color.Color
	invalid *color.Color
	failed  *color.Color
	id      *color.Color
	detail  *color.Color
}

// newStyles creates color formatters
// enabled=false respects --color never and the NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		valid:   color.New(color.Bold, color.FgHiGreen),
		invalid: color.New(color.Bold, color.FgHiRed),
		failed:  color.New(color.Bold, color.FgYellow),
		id:      color.New(color.Bold, color.FgHiBlue),
		detail:  color.New(color.FgHiBlack),
	}

	if !enabled {
		s.valid.DisableColor()
		s.invalid.DisableColor()
		s.failed.DisableColor()
		s.id.DisableColor()
		s.detail.DisableColor()
	}

	return s
}

func runCheck(cmd *cobra.Command, args []string) error {
	id, inputs := args[0], args[1:]

	core, err := newCore(cmd, checkPatternsPath)
	if err != nil {
		return err
	}
	if _, ok := core.Definition(id); !ok {
		return fmt.Errorf("%w: %s", scanner.ErrUnknownDefinition, id)
	}

	items := make([]scanner.CheckItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, scanner.CheckItem{ID: id, Input: in, Message: checkMessage})
	}
	result := core.CheckBatch(items)

	switch checkFormat {
	case "json":
		if err := outputJSON(cmd, result); err != nil {
			return err
		}
	case "human":
		outputCheckHuman(cmd.OutOrStdout(), newStyles(colorEnabled(checkColor)), id, result)
	default:
		return fmt.Errorf("unknown output format: %s", checkFormat)
	}

	if rejected := result.Invalid + result.Errors; rejected > 0 {
		return fmt.Errorf("%d of %d inputs rejected by %s", rejected, len(inputs), id)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// colorEnabled resolves a --color mode. "auto" enables color only when
// stdout is a terminal and NO_COLOR is unset.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != ""
	}
	return !color.NoColor
}

func outputCheckHuman(out io.Writer, s *styles, id string, result *scanner.BatchCheckResult) {
	for _, r := range result.Results {
		switch r.Status {
		case types.StatusValid:
			s.valid.Fprint(out, "valid  ")
			fmt.Fprintf(out, " %q\n", r.Input)
		case types.StatusInvalid:
			s.invalid.Fprint(out, "invalid")
			fmt.Fprintf(out, " %q ", r.Input)
			s.detail.Fprintln(out, r.Message)
		default:
			s.failed.Fprint(out, "error  ")
			fmt.Fprintf(out, " %q ", r.Input)
			s.detail.Fprintln(out, r.Message)
		}
	}

	fmt.Fprintln(out)
	s.id.Fprint(out, id)
	fmt.Fprintf(out, ": %d valid, %d invalid, %d errors\n", result.Valid, result.Invalid, result.Errors)
}
