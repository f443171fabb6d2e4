package rejigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveDigits() Expression {
	return Create().AtStart().AnyDigit().Exactly(5).AtEnd()
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, fiveDigits().Validate("12345"))
}

func TestValidate_EmptyInput(t *testing.T) {
	err := fiveDigits().Validate("")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.EqualError(t, err, "input cannot be empty")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, vErr.Input)
}

func TestValidate_EmptyInputBeforeCompile(t *testing.T) {
	broken := Create().Raw("(")

	err := broken.Validate("")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.EqualError(t, err, "input cannot be empty")

	assert.EqualError(t, broken.Validate("", "required"), "required")
	assert.Equal(t, ValidationResult{ErrorMessage: "input cannot be empty"}, broken.TryValidate(""))

	var syntaxErr *SyntaxError
	assert.ErrorAs(t, broken.Validate("x"), &syntaxErr, "non-empty input still reports the syntax error")
}

func TestValidate_NoMatch(t *testing.T) {
	err := fiveDigits().Validate("1234")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrNoMatch)
	assert.EqualError(t, err, "input '1234' does not match the required pattern")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "1234", vErr.Input)
}

func TestValidate_WhitespaceIsNotEmpty(t *testing.T) {
	err := fiveDigits().Validate("   ")
	assert.ErrorIs(t, err, ErrNoMatch, "whitespace-only input goes through matching")

	assert.NoError(t, Create().AnySpace().Validate("   "))
}

func TestValidate_CustomMessage(t *testing.T) {
	err := fiveDigits().Validate("abc", "ZIP code must be five digits")
	assert.EqualError(t, err, "ZIP code must be five digits")
	assert.ErrorIs(t, err, ErrNoMatch)

	err = fiveDigits().Validate("", "ZIP code is required")
	assert.EqualError(t, err, "ZIP code is required")
	assert.ErrorIs(t, err, ErrEmptyInput)

	err = fiveDigits().Validate("abc", "")
	assert.EqualError(t, err, "input 'abc' does not match the required pattern", "an empty custom message uses the default")
}

func TestValidate_SyntaxError(t *testing.T) {
	err := Create().Raw("(unclosed").Validate("anything")

	var syntaxErr *SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
	assert.NotErrorIs(t, err, ErrNoMatch)
}

func TestValidate_UsesOptions(t *testing.T) {
	e := Create().AtStart().Text("abc").AtEnd()

	assert.ErrorIs(t, e.Validate("ABC"), ErrNoMatch)
	assert.NoError(t, e.IgnoreCase().Validate("ABC"), "options are part of the cached matcher key")
}

func TestTryValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{"Valid", "12345", true, ""},
		{"Empty", "", false, "input cannot be empty"},
		{"NoMatch", "12a45", false, "input '12a45' does not match the required pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := fiveDigits().TryValidate(tt.input)
			assert.Equal(t, tt.valid, res.IsValid)
			assert.Equal(t, tt.message, res.ErrorMessage)
		})
	}
}

func TestTryValidate_SyntaxError(t *testing.T) {
	res := Create().Raw("[a-").TryValidate("a")

	assert.False(t, res.IsValid)
	assert.Contains(t, res.ErrorMessage, "invalid pattern")
}

func TestRegexp_Validate(t *testing.T) {
	re := fiveDigits().MustCompile()

	assert.NoError(t, re.Validate("54321"))
	assert.ErrorIs(t, re.Validate("5432"), ErrNoMatch)
	assert.EqualError(t, re.Validate("", "required"), "required")
	assert.Equal(t, ValidationResult{IsValid: true}, re.TryValidate("00000"))
}

func TestValidate_CacheReuse(t *testing.T) {
	e := Create().AtStart().Text("cached").AtEnd()

	first, err := e.cachedCompile()
	require.NoError(t, err)

	second, err := Create().AtStart().Text("cached").AtEnd().cachedCompile()
	require.NoError(t, err)
	assert.Same(t, first, second, "equal expressions share one compiled matcher")

	other, err := e.IgnoreCase().cachedCompile()
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}
