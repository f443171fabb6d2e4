package rejigs

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultEmptyMessage   = "input cannot be empty"
	defaultNoMatchMessage = "input '%s' does not match the required pattern"

	// validationCacheSize is the number of compiled matchers kept for
	// Expression.Validate and Expression.TryValidate.
	validationCacheSize = 256
)

// ValidationResult is the outcome of TryValidate.
type ValidationResult struct {
	IsValid      bool   `json:"is_valid"`
	ErrorMessage string `json:"error_message,omitempty"` // empty when IsValid
}

type cacheKey struct {
	pattern string
	options Options
}

// validationCache holds compiled matchers keyed by pattern and options.
// An Expression never changes, so a compiled matcher can be shared by every
// Expression with the same text and flags.
var validationCache = mustNewCache()

func mustNewCache() *lru.Cache[cacheKey, *Regexp] {
	c, err := lru.New[cacheKey, *Regexp](validationCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

// cachedCompile returns the compiled matcher for e, compiling it on a miss.
func (e Expression) cachedCompile() (*Regexp, error) {
	key := cacheKey{pattern: e.pattern, options: e.options}
	if re, ok := validationCache.Get(key); ok {
		return re, nil
	}
	re, err := e.Compile()
	if err != nil {
		return nil, err
	}
	validationCache.Add(key, re)
	return re, nil
}

// Validate checks input against the pattern.
//
// It returns nil if the pattern matches somewhere in input. Empty or
// non-matching input yields a *ValidationError whose message is message[0]
// when given and a default otherwise. An invalid pattern yields a
// *SyntaxError; empty input is rejected before the pattern is compiled.
//
// Example:
//
//	err := rejigs.Create().AtStart().AnyDigit().Exactly(5).AtEnd().
//	    Validate(zip, "ZIP code must be five digits")
func (e Expression) Validate(input string, message ...string) error {
	if input == "" {
		return emptyInputError(message)
	}
	re, err := e.cachedCompile()
	if err != nil {
		return err
	}
	return re.Validate(input, message...)
}

// TryValidate is like Validate but reports the outcome as a ValidationResult.
func (e Expression) TryValidate(input string) ValidationResult {
	if input == "" {
		return ValidationResult{ErrorMessage: defaultEmptyMessage}
	}
	re, err := e.cachedCompile()
	if err != nil {
		return ValidationResult{ErrorMessage: err.Error()}
	}
	return re.TryValidate(input)
}

// Validate checks input against r. See Expression.Validate.
func (r *Regexp) Validate(input string, message ...string) error {
	if input == "" {
		return emptyInputError(message)
	}
	custom := customMessage(message)

	ok, err := r.MatchString(input)
	if err != nil {
		return fmt.Errorf("rejigs: matching %q: %w", r.pattern, err)
	}
	if !ok {
		return &ValidationError{
			Input:   input,
			Message: pick(custom, fmt.Sprintf(defaultNoMatchMessage, input)),
			Err:     ErrNoMatch,
		}
	}
	return nil
}

// TryValidate checks input against r without returning an error.
func (r *Regexp) TryValidate(input string) ValidationResult {
	if err := r.Validate(input); err != nil {
		return ValidationResult{ErrorMessage: err.Error()}
	}
	return ValidationResult{IsValid: true}
}

func emptyInputError(message []string) error {
	return &ValidationError{Message: pick(customMessage(message), defaultEmptyMessage), Err: ErrEmptyInput}
}

func customMessage(message []string) string {
	if len(message) > 0 {
		return message[0]
	}
	return ""
}

func pick(custom, fallback string) string {
	if custom != "" {
		return custom
	}
	return fallback
}
