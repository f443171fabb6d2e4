// Package rejigs provides a fluent builder for regular expressions.
//
// Instead of hand-writing regex syntax, a pattern is assembled by chaining
// semantic operations (literal text, character classes, quantifiers, groups,
// alternation and anchors) and then compiled with the regexp2 engine.
//
// # Basic Usage
//
// Build a pattern and compile it:
//
//	re, err := rejigs.Create().
//	    AtStart().
//	    AnyDigit().Exactly(3).
//	    Text("-").
//	    AnyDigit().Exactly(4).
//	    AtEnd().
//	    Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, _ := re.MatchString("555-1234") // true
//
// # Sub-patterns
//
// Groups, quantifiers and alternation take a Subpattern, a function that
// receives a fresh empty Expression and returns the built sub-pattern:
//
//	expr := rejigs.Create().
//	    Text("http").OptionalText("s").
//	    Text("://").
//	    OneOrMoreOf(func(r rejigs.Expression) rejigs.Expression {
//	        return r.AnyLetterOrDigit().Or().AnyOf(".-")
//	    })
//
// # Fragments
//
// Expressions are immutable values, so a fragment can be built once and
// spliced into any number of chains:
//
//	octet := rejigs.Fragment().AnyDigit().Between(1, 3)
//	ip := rejigs.Create().Use(octet).Text(".").Use(octet)
//
// # Validation
//
// Validate returns a *ValidationError for empty or non-matching input;
// TryValidate reports the same outcome as a ValidationResult:
//
//	if err := expr.Validate(input, "not a URL"); err != nil {
//	    return err
//	}
package rejigs

import (
	"fmt"
	"strings"
)

// Options is a set of matching-mode flags carried by an Expression.
type Options uint32

const (
	// OptNone is the empty flag set.
	OptNone Options = 0

	// OptIgnoreCase makes matching case-insensitive.
	OptIgnoreCase Options = 1 << 0

	// OptCompiled asks the engine to precompile the pattern.
	OptCompiled Options = 1 << 1

	// OptMultiline makes ^ and $ match at line boundaries.
	OptMultiline Options = 1 << 2

	// OptSingleline makes . match newlines.
	OptSingleline Options = 1 << 3
)

var optionNames = []struct {
	flag Options
	name string
}{
	{OptIgnoreCase, "IgnoreCase"},
	{OptCompiled, "Compiled"},
	{OptMultiline, "Multiline"},
	{OptSingleline, "Singleline"},
}

// Has reports whether every bit of flag is set in o.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// String renders the set as "IgnoreCase|Compiled", or "None" when empty.
func (o Options) String() string {
	if o == OptNone {
		return "None"
	}
	var names []string
	for _, n := range optionNames {
		if o.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseOptions parses the form produced by Options.String. Flag names are
// matched case-insensitively; "None" and "" yield OptNone.
func ParseOptions(s string) (Options, error) {
	var o Options
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "None") {
			continue
		}
		found := false
		for _, n := range optionNames {
			if strings.EqualFold(part, n.name) {
				o |= n.flag
				found = true
				break
			}
		}
		if !found {
			return OptNone, fmt.Errorf("rejigs: unknown option %q", part)
		}
	}
	return o, nil
}

// MarshalText implements encoding.TextMarshaler.
func (o Options) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Options) UnmarshalText(text []byte) error {
	parsed, err := ParseOptions(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Expression is an immutable regex pattern under construction.
//
// Every method returns a new Expression and leaves the receiver untouched,
// so an Expression can be shared freely between chains and goroutines. The
// zero value is an empty Expression.
type Expression struct {
	pattern string
	options Options
}

// Subpattern builds a sub-pattern. Combinators call it with a fresh empty
// Expression and splice the text of the returned Expression.
type Subpattern func(Expression) Expression

// Create starts a new empty Expression.
func Create() Expression {
	return Expression{}
}

// Fragment starts a new empty Expression meant to be reused through Use.
func Fragment() Expression {
	return Expression{}
}

// String returns the pattern text built so far.
func (e Expression) String() string {
	return e.pattern
}

// Options returns the accumulated option flags.
func (e Expression) Options() Options {
	return e.options
}

// IsEmpty reports whether no pattern text has been appended.
func (e Expression) IsEmpty() bool {
	return e.pattern == ""
}

// append returns a copy of e with text added to the pattern.
func (e Expression) append(text string) Expression {
	e.pattern += text
	return e
}

// merge returns a copy of e with text added and the flags of sub unioned in.
func (e Expression) merge(text string, sub Options) Expression {
	e.pattern += text
	e.options |= sub
	return e
}

// withOption returns a copy of e with flag set.
func (e Expression) withOption(flag Options) Expression {
	e.options |= flag
	return e
}

// expand evaluates p against a fresh Expression.
func expand(op string, p Subpattern) Expression {
	if p == nil {
		panic(newArgumentError(op, ErrInvalidArgument, "pattern cannot be nil"))
	}
	return p(Create())
}
