package rejigs

// Use appends the pattern text of fragment verbatim and unions its options.
// No group is added; a fragment that must stay atomic in every context
// should be built as a group itself.
func (e Expression) Use(fragment Expression) Expression {
	return e.merge(fragment.pattern, fragment.options)
}

// Apply passes the current Expression to p and returns the result. Unlike
// the combinators, p receives the chain itself rather than a fresh
// Expression, which lets reusable builders extend a chain in place:
//
//	rejigs.Create().Apply(patterns.Email)
func (e Expression) Apply(p Subpattern) Expression {
	if p == nil {
		panic(newArgumentError("Apply", ErrInvalidArgument, "pattern cannot be nil"))
	}
	return p(e)
}

// IgnoreCase sets OptIgnoreCase.
func (e Expression) IgnoreCase() Expression { return e.withOption(OptIgnoreCase) }

// Compiled sets OptCompiled.
func (e Expression) Compiled() Expression { return e.withOption(OptCompiled) }

// Multiline sets OptMultiline.
func (e Expression) Multiline() Expression { return e.withOption(OptMultiline) }

// Singleline sets OptSingleline.
func (e Expression) Singleline() Expression { return e.withOption(OptSingleline) }

// Compile compiles the pattern with the accumulated options.
// It returns a *SyntaxError if the engine rejects the pattern.
func (e Expression) Compile() (*Regexp, error) {
	return compile(e.pattern, e.options, DefaultMatchTimeout)
}

// CompileWith compiles the pattern with opts in place of the accumulated
// options. The Expression itself keeps its options.
func (e Expression) CompileWith(opts Options) (*Regexp, error) {
	return compile(e.pattern, opts, DefaultMatchTimeout)
}

// CompileWithConfig compiles the pattern with the accumulated options plus
// cfg.Options and the match timeout from cfg.
func (e Expression) CompileWithConfig(cfg Config) (*Regexp, error) {
	return compile(e.pattern, e.options|cfg.Options, cfg.MatchTimeout)
}

// MustCompile is like Compile but panics if the pattern is invalid.
// It simplifies initialization of package-level matchers.
func (e Expression) MustCompile() *Regexp {
	re, err := e.Compile()
	if err != nil {
		panic(err)
	}
	return re
}
