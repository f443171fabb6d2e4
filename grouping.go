package rejigs

// Group appends the sub-pattern built by p as a capturing group (...).
func (e Expression) Group(p Subpattern) Expression {
	sub := expand("Group", p)
	return e.merge("("+sub.pattern+")", sub.options)
}

// Grouping appends the sub-pattern built by p as a non-capturing group (?:...).
func (e Expression) Grouping(p Subpattern) Expression {
	return e.grouping("Grouping", p, "")
}

// grouping appends (?:p) followed by suffix.
func (e Expression) grouping(op string, p Subpattern, suffix string) Expression {
	sub := expand(op, p)
	return e.merge("(?:"+sub.pattern+")"+suffix, sub.options)
}
