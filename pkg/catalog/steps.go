package catalog

import (
	"fmt"
	"strings"

	"github.com/praetorian-inc/rejigs"
)

type expr = rejigs.Expression

var classes = map[string]rejigs.Subpattern{
	"digit":     expr.AnyDigit,
	"non_digit": expr.AnyNonDigit,
	"word":      expr.AnyLetterOrDigit,
	"non_word":  expr.AnyNonLetterOrDigit,
	"space":     expr.AnySpace,
	"non_space": expr.AnyNonSpace,
	"any":       expr.AnyCharacter,
}

var anchors = map[string]rejigs.Subpattern{
	"start":             expr.AtStart,
	"end":               expr.AtEnd,
	"word_boundary":     expr.AtWordBoundary,
	"non_word_boundary": expr.NotAtWordBoundary,
}

// quantifier is the parsed quantifier of a step.
type quantifier struct {
	kind     string
	min, max int
}

// builder turns step lists into expressions, resolving fragment references
// within one catalog file.
type builder struct {
	fragments map[string]yamlFragment
	resolved  map[string]rejigs.Expression
	resolving map[string]bool
}

func newBuilder(fragments []yamlFragment) (*builder, error) {
	b := &builder{
		fragments: make(map[string]yamlFragment, len(fragments)),
		resolved:  make(map[string]rejigs.Expression),
		resolving: make(map[string]bool),
	}
	for i, f := range fragments {
		if f.ID == "" {
			return nil, fmt.Errorf("fragment %d: id is required", i+1)
		}
		if _, dup := b.fragments[f.ID]; dup {
			return nil, fmt.Errorf("duplicate fragment id: %s", f.ID)
		}
		b.fragments[f.ID] = f
	}
	return b, nil
}

// fragment returns the expression for a fragment id, building it on first use.
func (b *builder) fragment(id string) (rejigs.Expression, error) {
	if e, ok := b.resolved[id]; ok {
		return e, nil
	}
	f, ok := b.fragments[id]
	if !ok {
		return rejigs.Expression{}, fmt.Errorf("unknown fragment: %s", id)
	}
	if b.resolving[id] {
		return rejigs.Expression{}, fmt.Errorf("fragment cycle through %s", id)
	}

	b.resolving[id] = true
	e, err := b.build(f.Steps, "fragment "+id)
	delete(b.resolving, id)
	if err != nil {
		return rejigs.Expression{}, err
	}
	b.resolved[id] = e
	return e, nil
}

// build applies steps in order to a fresh Expression.
func (b *builder) build(steps []yamlStep, at string) (rejigs.Expression, error) {
	e := rejigs.Create()
	for i, s := range steps {
		var err error
		e, err = b.step(e, s)
		if err != nil {
			return rejigs.Expression{}, fmt.Errorf("%s: step %d: %w", at, i+1, err)
		}
	}
	return e, nil
}

func (b *builder) step(e rejigs.Expression, s yamlStep) (rejigs.Expression, error) {
	kind, err := s.kind()
	if err != nil {
		return e, err
	}
	q, err := s.quantifier()
	if err != nil {
		return e, err
	}

	// Steps that render several tokens go through the ...Of combinators so
	// that a quantifier covers the whole step.
	var sub rejigs.Subpattern
	var token rejigs.Subpattern

	switch kind {
	case "text":
		text := *s.Text
		sub = func(r expr) expr { return r.Text(text) }
	case "optional_text":
		if q != nil {
			return e, fmt.Errorf("optional_text cannot be quantified")
		}
		text := *s.OptionalText
		token = func(r expr) expr { return r.OptionalText(text) }
	case "raw":
		raw := *s.Raw
		sub = func(r expr) expr { return r.Raw(raw) }
	case "class":
		c, ok := classes[s.Class]
		if !ok {
			return e, fmt.Errorf("unknown class: %s", s.Class)
		}
		token = c
	case "any_of":
		chars := *s.AnyOf
		token = func(r expr) expr { return r.AnyOf(chars) }
	case "any_except":
		chars := *s.AnyExcept
		token = func(r expr) expr { return r.AnyExcept(chars) }
	case "range":
		from, to, err := parseRange(s.Range)
		if err != nil {
			return e, err
		}
		token = func(r expr) expr { return r.AnyInRange(from, to) }
	case "anchor":
		a, ok := anchors[s.Anchor]
		if !ok {
			return e, fmt.Errorf("unknown anchor: %s", s.Anchor)
		}
		if q != nil {
			return e, fmt.Errorf("anchor cannot be quantified")
		}
		token = a
	case "or":
		if q != nil {
			return e, fmt.Errorf("or cannot be quantified")
		}
		token = expr.Or
	case "use":
		f, err := b.fragment(s.Use)
		if err != nil {
			return e, err
		}
		sub = func(r expr) expr { return r.Use(f) }
	case "group":
		inner, err := b.build(s.Group, "group")
		if err != nil {
			return e, err
		}
		sub = func(r expr) expr { return r.Use(inner) }
		if q == nil {
			token = func(r expr) expr {
				return r.Grouping(func(g expr) expr { return g.Use(inner) })
			}
		}
	case "capture":
		inner, err := b.build(s.Capture, "capture")
		if err != nil {
			return e, err
		}
		token = func(r expr) expr {
			return r.Group(func(g expr) expr { return g.Use(inner) })
		}
	case "either":
		alternatives := make([]rejigs.Subpattern, 0, len(s.Either))
		for i, steps := range s.Either {
			inner, err := b.build(steps, fmt.Sprintf("either %d", i+1))
			if err != nil {
				return e, err
			}
			alternatives = append(alternatives, func(r expr) expr { return r.Use(inner) })
		}
		token = func(r expr) expr { return r.Either(alternatives...) }
	}

	return rejigs.Try(func() rejigs.Expression {
		switch {
		case token != nil:
			return q.apply(e.Apply(token))
		case q == nil:
			return e.Apply(sub)
		default:
			return q.applyOf(e, sub)
		}
	})
}

// kind returns the name of the single kind field set on s.
func (s yamlStep) kind() (string, error) {
	var kinds []string
	add := func(set bool, name string) {
		if set {
			kinds = append(kinds, name)
		}
	}
	add(s.Text != nil, "text")
	add(s.OptionalText != nil, "optional_text")
	add(s.Raw != nil, "raw")
	add(s.Class != "", "class")
	add(s.AnyOf != nil, "any_of")
	add(s.AnyExcept != nil, "any_except")
	add(s.Range != "", "range")
	add(s.Anchor != "", "anchor")
	add(s.Or, "or")
	add(s.Use != "", "use")
	add(s.Group != nil, "group")
	add(s.Capture != nil, "capture")
	add(s.Either != nil, "either")

	switch len(kinds) {
	case 0:
		return "", fmt.Errorf("step has no kind")
	case 1:
		return kinds[0], nil
	default:
		return "", fmt.Errorf("step has several kinds: %s", strings.Join(kinds, ", "))
	}
}

// quantifier returns the parsed quantifier of s, or nil if it has none.
func (s yamlStep) quantifier() (*quantifier, error) {
	var found []*quantifier
	if s.Exactly != nil {
		found = append(found, &quantifier{kind: "exactly", min: *s.Exactly})
	}
	if s.AtLeast != nil {
		found = append(found, &quantifier{kind: "at_least", min: *s.AtLeast})
	}
	if s.Between != nil {
		if len(s.Between) != 2 {
			return nil, fmt.Errorf("between needs [min, max], got %d values", len(s.Between))
		}
		found = append(found, &quantifier{kind: "between", min: s.Between[0], max: s.Between[1]})
	}
	if s.Optional {
		found = append(found, &quantifier{kind: "optional"})
	}
	if s.ZeroOrMore {
		found = append(found, &quantifier{kind: "zero_or_more"})
	}
	if s.OneOrMore {
		found = append(found, &quantifier{kind: "one_or_more"})
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("step has %d quantifiers, at most one is allowed", len(found))
	}
}

// apply quantifies the last token of e. A nil quantifier returns e.
func (q *quantifier) apply(e rejigs.Expression) rejigs.Expression {
	if q == nil {
		return e
	}
	switch q.kind {
	case "exactly":
		return e.Exactly(q.min)
	case "at_least":
		return e.AtLeast(q.min)
	case "between":
		return e.Between(q.min, q.max)
	case "optional":
		return e.Optional()
	case "zero_or_more":
		return e.ZeroOrMore()
	default:
		return e.OneOrMore()
	}
}

// applyOf appends p as a quantified non-capturing group.
func (q *quantifier) applyOf(e rejigs.Expression, p rejigs.Subpattern) rejigs.Expression {
	switch q.kind {
	case "exactly":
		return e.ExactlyOf(q.min, p)
	case "at_least":
		return e.AtLeastOf(q.min, p)
	case "between":
		return e.BetweenOf(q.min, q.max, p)
	case "optional":
		return e.OptionalOf(p)
	case "zero_or_more":
		return e.ZeroOrMoreOf(p)
	default:
		return e.OneOrMoreOf(p)
	}
}

// parseRange parses "a-z" into its bounds.
func parseRange(s string) (rune, rune, error) {
	r := []rune(s)
	if len(r) != 3 || r[1] != '-' {
		return 0, 0, fmt.Errorf("malformed range %q, want \"a-z\"", s)
	}
	return r[0], r[2], nil
}
