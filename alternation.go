package rejigs

import "strings"

// Or appends a bare |. Nothing is grouped: alternation keeps its low
// precedence, so Text("a").AnyDigit().Or().Text("b") means (a\d)|b.
func (e Expression) Or() Expression {
	return e.append(`|`)
}

// Either appends a non-capturing group matching any one of patterns:
// (?:p1|p2|...). Each pattern is built against a fresh Expression. With no
// patterns the receiver is returned unchanged. It panics with an
// *ArgumentError if any pattern is nil.
func (e Expression) Either(patterns ...Subpattern) Expression {
	if len(patterns) == 0 {
		return e
	}

	alts := make([]string, len(patterns))
	var options Options
	for i, p := range patterns {
		sub := expand("Either", p)
		alts[i] = sub.pattern
		options |= sub.options
	}

	return e.merge("(?:"+strings.Join(alts, "|")+")", options)
}
