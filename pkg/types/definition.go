package types

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/praetorian-inc/rejigs"
)

// Definition is a named, documented pattern with example inputs.
type Definition struct {
	ID               string            `json:"id"`   // e.g., "builtin.email"
	Name             string            `json:"name"` // human-readable name
	Description      string            `json:"description,omitempty"`
	Expression       rejigs.Expression `json:"-"`
	Pattern          string            `json:"pattern"`       // rendered Expression
	Options          rejigs.Options    `json:"options"`       // rendered as "IgnoreCase|Compiled"
	StructuralID     string            `json:"structural_id"` // SHA-1 of pattern (computed)
	Keywords         []string          `json:"keywords,omitempty"`
	Examples         []string          `json:"examples,omitempty"`          // inputs that must validate
	NegativeExamples []string          `json:"negative_examples,omitempty"` // inputs that must not
	Categories       []string          `json:"categories,omitempty"`
}

// NewDefinition creates a definition for expr and computes its pattern,
// options and structural ID.
func NewDefinition(id, name string, expr rejigs.Expression) *Definition {
	d := &Definition{
		ID:         id,
		Name:       name,
		Expression: expr,
		Pattern:    expr.String(),
		Options:    expr.Options(),
	}
	d.StructuralID = d.ComputeStructuralID()
	return d
}

// namedGroup matches the opening of a named capture group in any of the
// (?<name>, (?'name' or (?P<name> spellings.
var namedGroup = rejigs.Create().
	Text("(?").
	Either(
		func(r rejigs.Expression) rejigs.Expression {
			// the first character rules out the (?<= and (?<! lookbehinds
			return r.OptionalText("P").Text("<").AnyExcept("=!>").AnyExcept(">").ZeroOrMore().Text(">")
		},
		func(r rejigs.Expression) rejigs.Expression { return r.Text("'").AnyExcept("'").OneOrMore().Text("'") },
	).
	MustCompile()

// ComputeStructuralID computes SHA-1 of the pattern with named capture groups
// normalized to plain groups, so that renaming a group keeps the ID.
func (d *Definition) ComputeStructuralID() string {
	normalized, err := namedGroup.Native().Replace(d.Pattern, "(", -1, -1)
	if err != nil {
		normalized = d.Pattern
	}
	h := sha1.New()
	h.Write([]byte(normalized))
	return hex.EncodeToString(h.Sum(nil))
}

// Compile compiles the definition's pattern with its options.
func (d *Definition) Compile(cfg rejigs.Config) (*rejigs.Regexp, error) {
	cfg.Options |= d.Options
	return rejigs.Create().Raw(d.Pattern).CompileWithConfig(cfg)
}
