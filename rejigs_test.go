package rejigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matches compiles expr and reports whether it matches anywhere in input.
func matches(t *testing.T, expr Expression, input string) bool {
	t.Helper()
	re, err := expr.Compile()
	require.NoError(t, err, "pattern %q should compile", expr.String())
	ok, err := re.MatchString(input)
	require.NoError(t, err)
	return ok
}

// matchesWhole compiles expr and reports whether it matches all of input.
func matchesWhole(t *testing.T, expr Expression, input string) bool {
	t.Helper()
	re, err := expr.Compile()
	require.NoError(t, err, "pattern %q should compile", expr.String())
	ok, err := re.MatchWhole(input)
	require.NoError(t, err)
	return ok
}

func TestCreate_IsEmpty(t *testing.T) {
	e := Create()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, "", e.String())
	assert.Equal(t, OptNone, e.Options())

	assert.Equal(t, Create(), Fragment())
	assert.Equal(t, Expression{}, Create(), "zero value is an empty expression")
}

func TestExpression_ValueSemantics(t *testing.T) {
	base := Create().Text("ab")
	withDigit := base.AnyDigit()
	withSpace := base.AnySpace()

	assert.Equal(t, "ab", base.String(), "appending must not modify the receiver")
	assert.Equal(t, `ab\d`, withDigit.String())
	assert.Equal(t, `ab\s`, withSpace.String())

	insensitive := base.IgnoreCase()
	assert.Equal(t, OptNone, base.Options())
	assert.Equal(t, OptIgnoreCase, insensitive.Options())
}

func TestOptions_String(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{OptNone, "None"},
		{OptIgnoreCase, "IgnoreCase"},
		{OptIgnoreCase | OptCompiled, "IgnoreCase|Compiled"},
		{OptMultiline | OptSingleline, "Multiline|Singleline"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.String())
		})
	}
}

func TestOptions_Has(t *testing.T) {
	opts := OptIgnoreCase | OptMultiline
	assert.True(t, opts.Has(OptIgnoreCase))
	assert.True(t, opts.Has(OptIgnoreCase|OptMultiline))
	assert.False(t, opts.Has(OptCompiled))
	assert.False(t, opts.Has(OptIgnoreCase|OptCompiled))
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		in   string
		want Options
	}{
		{"", OptNone},
		{"None", OptNone},
		{"IgnoreCase", OptIgnoreCase},
		{"ignorecase|MULTILINE", OptIgnoreCase | OptMultiline},
		{" Compiled | Singleline ", OptCompiled | OptSingleline},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOptions(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseOptions("IgnoreCase|Verbose")
	assert.EqualError(t, err, `rejigs: unknown option "Verbose"`)
}

func TestOptions_TextRoundTrip(t *testing.T) {
	opts := OptIgnoreCase | OptSingleline

	text, err := opts.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "IgnoreCase|Singleline", string(text))

	var back Options
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, opts, back)
}

func TestOptions_OnlyGrow(t *testing.T) {
	e := Create().IgnoreCase().Compiled().IgnoreCase()
	assert.Equal(t, OptIgnoreCase|OptCompiled, e.Options())

	grouped := Create().Multiline().Grouping(func(r Expression) Expression {
		return r.Text("a").IgnoreCase()
	})
	assert.Equal(t, OptMultiline|OptIgnoreCase, grouped.Options(), "sub-pattern flags are unioned in")

	fragment := Fragment().Text("x").Singleline()
	used := Create().IgnoreCase().Use(fragment)
	assert.Equal(t, OptIgnoreCase|OptSingleline, used.Options())
}

func TestFragment_Reuse(t *testing.T) {
	octet := Fragment().AnyDigit().Between(1, 3)

	first := Create().Use(octet).Text(".").Use(octet)
	second := Create().AtStart().Use(octet).AtEnd()

	assert.Equal(t, octet.String()+`\.`+octet.String(), first.String(),
		"use must splice the fragment text byte for byte")
	assert.Equal(t, "^"+octet.String()+"$", second.String())

	extended := first.Text("!").AnyDigit()
	assert.Equal(t, `\d{1,3}\.\d{1,3}`, first.String(), "extending a chain must not alter it")
	assert.Equal(t, `^\d{1,3}$`, second.String(), "extending one parent must not alter another")
	assert.Equal(t, `\d{1,3}`, octet.String(), "extending a parent must not alter the fragment")
	assert.Equal(t, `\d{1,3}\.\d{1,3}!\d`, extended.String())
}

func TestFragment_NoImplicitGrouping(t *testing.T) {
	ab := Fragment().Text("a").Or().Text("b")
	e := Create().AtStart().Use(ab).AtEnd()

	assert.Equal(t, "^a|b$", e.String())
	assert.True(t, matches(t, e, "ax"), "fragment alternation is not scoped by use")

	scoped := Create().AtStart().Grouping(func(r Expression) Expression { return r.Use(ab) }).AtEnd()
	assert.False(t, matches(t, scoped, "ax"))
	assert.True(t, matches(t, scoped, "a"))
}

func TestApply(t *testing.T) {
	zip := func(e Expression) Expression {
		return e.AnyDigit().Exactly(5)
	}

	e := Create().AtStart().Apply(zip).AtEnd()
	assert.Equal(t, `^\d{5}$`, e.String())
	assert.True(t, matches(t, e, "12345"))

	assert.PanicsWithError(t, "rejigs: Apply: pattern cannot be nil", func() {
		Create().Apply(nil)
	})
}

func TestTry(t *testing.T) {
	e, err := Try(func() Expression {
		return Create().AnyDigit().Between(1, 2)
	})
	require.NoError(t, err)
	assert.Equal(t, `\d{1,2}`, e.String())

	_, err = Try(func() Expression {
		return Create().AnyDigit().Between(3, 2)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "Between", argErr.Op)

	assert.Panics(t, func() {
		_, _ = Try(func() Expression { panic("unrelated") })
	}, "non-argument panics are propagated")
}
