package rejigs

import "fmt"

// AnyDigit appends \d.
func (e Expression) AnyDigit() Expression { return e.append(`\d`) }

// AnyNonDigit appends \D.
func (e Expression) AnyNonDigit() Expression { return e.append(`\D`) }

// AnyLetterOrDigit appends \w.
func (e Expression) AnyLetterOrDigit() Expression { return e.append(`\w`) }

// AnyNonLetterOrDigit appends \W.
func (e Expression) AnyNonLetterOrDigit() Expression { return e.append(`\W`) }

// AnySpace appends \s.
func (e Expression) AnySpace() Expression { return e.append(`\s`) }

// AnyNonSpace appends \S.
func (e Expression) AnyNonSpace() Expression { return e.append(`\S`) }

// AnyCharacter appends ., which matches any character except newline
// (unless the Singleline option is set).
func (e Expression) AnyCharacter() Expression { return e.append(`.`) }

// AnyOf appends a character class matching any one of chars.
// The characters are escaped, so AnyOf("]-") matches ']' or '-'.
func (e Expression) AnyOf(chars string) Expression {
	return e.append("[" + escapeSet(chars) + "]")
}

// AnyExcept appends a negated character class matching any character not in chars.
func (e Expression) AnyExcept(chars string) Expression {
	return e.append("[^" + escapeSet(chars) + "]")
}

// AnyInRange appends a character class matching from through to inclusive.
// It panics with an *ArgumentError if from sorts after to.
func (e Expression) AnyInRange(from, to rune) Expression {
	if from > to {
		panic(newArgumentError("AnyInRange", ErrInvalidArgument, "invalid range: '%c'-'%c'", from, to))
	}
	return e.append(fmt.Sprintf("[%s-%s]", escapeSet(string(from)), escapeSet(string(to))))
}
