package rejigs

import (
	"fmt"
	"unicode/utf8"
)

// Quantifiers without a Subpattern apply to the single most recent token,
// exactly as the raw regex operator would: Text("ab").Exactly(2) renders
// ab{2}. Use the ...Of variants or Grouping to repeat several tokens.

// Exactly appends {count}. It panics with an *ArgumentError wrapping
// ErrOutOfRange if count is negative.
func (e Expression) Exactly(count int) Expression {
	return e.append(exactly("Exactly", count))
}

// AtLeast appends {count,}. It panics with an *ArgumentError wrapping
// ErrOutOfRange if count is negative.
func (e Expression) AtLeast(count int) Expression {
	return e.append(atLeast("AtLeast", count))
}

// Between appends {min,max}. It panics with an *ArgumentError wrapping
// ErrInvalidArgument if either bound is negative or min is greater than max.
func (e Expression) Between(min, max int) Expression {
	return e.append(between("Between", min, max))
}

// ExactlyOf appends (?:p){count}.
func (e Expression) ExactlyOf(count int, p Subpattern) Expression {
	return e.grouping("ExactlyOf", p, exactly("ExactlyOf", count))
}

// AtLeastOf appends (?:p){count,}.
func (e Expression) AtLeastOf(count int, p Subpattern) Expression {
	return e.grouping("AtLeastOf", p, atLeast("AtLeastOf", count))
}

// BetweenOf appends (?:p){min,max}.
func (e Expression) BetweenOf(min, max int, p Subpattern) Expression {
	return e.grouping("BetweenOf", p, between("BetweenOf", min, max))
}

// ZeroOrMore appends *.
func (e Expression) ZeroOrMore() Expression { return e.append(`*`) }

// OneOrMore appends +.
func (e Expression) OneOrMore() Expression { return e.append(`+`) }

// Optional appends ?.
func (e Expression) Optional() Expression { return e.append(`?`) }

// ZeroOrMoreOf appends (?:p)*.
func (e Expression) ZeroOrMoreOf(p Subpattern) Expression {
	return e.grouping("ZeroOrMoreOf", p, `*`)
}

// OneOrMoreOf appends (?:p)+.
func (e Expression) OneOrMoreOf(p Subpattern) Expression {
	return e.grouping("OneOrMoreOf", p, `+`)
}

// OptionalOf appends (?:p)?.
func (e Expression) OptionalOf(p Subpattern) Expression {
	return e.grouping("OptionalOf", p, `?`)
}

// OptionalText appends text, escaped, as an optional element. A single
// character is quantified directly (s?); longer text is grouped first
// ((?:abc)?) so the whole text is optional.
func (e Expression) OptionalText(text string) Expression {
	escaped := escapeText(text)
	if utf8.RuneCountInString(text) == 1 {
		return e.append(escaped + `?`)
	}
	return e.append("(?:" + escaped + ")?")
}

func exactly(op string, count int) string {
	if count < 0 {
		panic(newArgumentError(op, ErrOutOfRange, "count must be non-negative, got %d", count))
	}
	return fmt.Sprintf("{%d}", count)
}

func atLeast(op string, count int) string {
	if count < 0 {
		panic(newArgumentError(op, ErrOutOfRange, "count must be non-negative, got %d", count))
	}
	return fmt.Sprintf("{%d,}", count)
}

func between(op string, min, max int) string {
	if min < 0 || max < 0 {
		panic(newArgumentError(op, ErrInvalidArgument, "bounds must be non-negative, got {%d,%d}", min, max))
	}
	if min > max {
		panic(newArgumentError(op, ErrInvalidArgument, "min %d is greater than max %d", min, max))
	}
	return fmt.Sprintf("{%d,%d}", min, max)
}
