package rejigs

import (
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single match call so that a pathological
// pattern cannot backtrack forever.
const DefaultMatchTimeout = 5 * time.Second

// Config controls compilation.
type Config struct {
	// Options are unioned with the Expression's accumulated options.
	Options Options

	// MatchTimeout bounds each match call. Zero means DefaultMatchTimeout.
	MatchTimeout time.Duration
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{MatchTimeout: DefaultMatchTimeout}
}

// Regexp is a compiled Expression backed by a regexp2 matcher.
//
// A Regexp is safe for concurrent use.
type Regexp struct {
	pattern string
	options Options
	timeout time.Duration
	re      *regexp2.Regexp

	// whole is pattern anchored at both ends, built on first MatchWhole.
	wholeOnce sync.Once
	whole     *regexp2.Regexp
	wholeErr  error
}

func compile(pattern string, opts Options, timeout time.Duration) (*Regexp, error) {
	if timeout <= 0 {
		timeout = DefaultMatchTimeout
	}

	re, err := regexp2.Compile(pattern, opts.native())
	if err != nil {
		return nil, &SyntaxError{Pattern: pattern, Err: err}
	}
	re.MatchTimeout = timeout

	return &Regexp{
		pattern: pattern,
		options: opts,
		timeout: timeout,
		re:      re,
	}, nil
}

// native maps the flag set onto regexp2 options.
func (o Options) native() regexp2.RegexOptions {
	var native regexp2.RegexOptions
	if o.Has(OptIgnoreCase) {
		native |= regexp2.IgnoreCase
	}
	if o.Has(OptCompiled) {
		native |= regexp2.Compiled
	}
	if o.Has(OptMultiline) {
		native |= regexp2.Multiline
	}
	if o.Has(OptSingleline) {
		native |= regexp2.Singleline
	}
	return native
}

// String returns the source pattern.
func (r *Regexp) String() string {
	return r.pattern
}

// Options returns the options the pattern was compiled with.
func (r *Regexp) Options() Options {
	return r.options
}

// Native returns the underlying regexp2 matcher.
func (r *Regexp) Native() *regexp2.Regexp {
	return r.re
}

// MatchString reports whether the pattern matches anywhere in s.
// The error is non-nil only if the match timed out.
func (r *Regexp) MatchString(s string) (bool, error) {
	return r.re.MatchString(s)
}

// MatchWhole reports whether the pattern matches all of s.
func (r *Regexp) MatchWhole(s string) (bool, error) {
	r.wholeOnce.Do(func() {
		anchored := `\A(?:` + r.pattern + `)\z`
		r.whole, r.wholeErr = regexp2.Compile(anchored, r.options.native())
		if r.wholeErr != nil {
			r.wholeErr = &SyntaxError{Pattern: anchored, Err: r.wholeErr}
			return
		}
		r.whole.MatchTimeout = r.timeout
	})
	if r.wholeErr != nil {
		return false, r.wholeErr
	}
	return r.whole.MatchString(s)
}

// FindString returns the leftmost match in s, or "" if there is none.
func (r *Regexp) FindString(s string) (string, error) {
	m, err := r.re.FindStringMatch(s)
	if err != nil || m == nil {
		return "", err
	}
	return m.String(), nil
}

// FindAllString returns up to n successive matches in s; n < 0 means all.
func (r *Regexp) FindAllString(s string, n int) ([]string, error) {
	var out []string
	m, err := r.re.FindStringMatch(s)
	for m != nil && (n < 0 || len(out) < n) {
		out = append(out, m.String())
		m, err = r.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
