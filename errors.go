package rejigs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by argument errors for inverted ranges,
	// inverted or negative Between bounds and nil sub-patterns.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is wrapped by argument errors for negative repeat counts.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrEmptyInput is wrapped by a ValidationError for empty input.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoMatch is wrapped by a ValidationError for input that does not match.
	ErrNoMatch = errors.New("no match")
)

// ArgumentError reports a bad argument passed to a builder method.
//
// Builder methods panic with an *ArgumentError at the offending call; use
// Try to turn the panic into an error.
type ArgumentError struct {
	Op  string // builder method, e.g. "Between"
	Err error  // ErrInvalidArgument or ErrOutOfRange
	Msg string
}

func newArgumentError(op string, kind error, format string, args ...any) *ArgumentError {
	return &ArgumentError{Op: op, Err: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	return "rejigs: " + e.Op + ": " + e.Msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// SyntaxError reports a pattern the engine refused to compile.
type SyntaxError struct {
	Pattern string
	Err     error // diagnostic from regexp2
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("rejigs: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ValidationError reports input rejected by Validate.
type ValidationError struct {
	Input   string
	Message string
	Err     error // ErrEmptyInput or ErrNoMatch
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Try runs build and recovers an *ArgumentError panic into an error.
// Any other panic is propagated.
//
// Example:
//
//	expr, err := rejigs.Try(func() rejigs.Expression {
//	    return rejigs.Create().AnyDigit().Between(lo, hi)
//	})
func Try(build func() Expression) (expr Expression, err error) {
	defer func() {
		if r := recover(); r != nil {
			argErr, ok := r.(*ArgumentError)
			if !ok {
				panic(r)
			}
			expr, err = Expression{}, argErr
		}
	}()
	return build(), nil
}
