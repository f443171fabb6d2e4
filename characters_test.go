package rejigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterClasses(t *testing.T) {
	tests := []struct {
		name     string
		build    func(Expression) Expression
		want     string
		accepted []string
		rejected []string
	}{
		{"AnyDigit", Expression.AnyDigit, `\d`, []string{"5", "0"}, []string{"a", " "}},
		{"AnyNonDigit", Expression.AnyNonDigit, `\D`, []string{"a", "-"}, []string{"5"}},
		{"AnyLetterOrDigit", Expression.AnyLetterOrDigit, `\w`, []string{"a", "Z", "5", "_"}, []string{"!", " "}},
		{"AnyNonLetterOrDigit", Expression.AnyNonLetterOrDigit, `\W`, []string{"!", " "}, []string{"a", "5"}},
		{"AnySpace", Expression.AnySpace, `\s`, []string{" ", "\t", "\n"}, []string{"a"}},
		{"AnyNonSpace", Expression.AnyNonSpace, `\S`, []string{"a", "1"}, []string{" ", "\t"}},
		{"AnyCharacter", Expression.AnyCharacter, `.`, []string{"a", "1", " "}, []string{"\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Create().AtStart().Apply(tt.build).AtEnd()
			assert.Equal(t, "^"+tt.want+"$", e.String())

			for _, in := range tt.accepted {
				assert.True(t, matchesWhole(t, e, in), "%s should accept %q", tt.name, in)
			}
			for _, in := range tt.rejected {
				assert.False(t, matchesWhole(t, e, in), "%s should reject %q", tt.name, in)
			}
		})
	}
}

func TestAnyCharacter_Singleline(t *testing.T) {
	e := Create().Text("a").AnyCharacter().Text("b")

	assert.False(t, matches(t, e, "a\nb"))
	assert.True(t, matches(t, e.Singleline(), "a\nb"))
}

func TestAnyOf(t *testing.T) {
	e := Create().AnyOf("abc")

	assert.Equal(t, "[abc]", e.String())
	assert.True(t, matches(t, e, "b"))
	assert.False(t, matches(t, e, "d"))
}

func TestAnyOf_EscapesSetMetacharacters(t *testing.T) {
	e := Create().AtStart().AnyOf(`]-^\.[`).AtEnd()

	for _, in := range []string{"]", "-", "^", `\`, ".", "["} {
		assert.True(t, matchesWhole(t, e, in), "should accept %q", in)
	}
	for _, in := range []string{"a", "b", ","} {
		assert.False(t, matchesWhole(t, e, in), "should reject %q", in)
	}
}

func TestAnyOf_NonPrintableRunes(t *testing.T) {
	e := Create().AtStart().AnyOf("\u0600\u061c\U000e0001").AtEnd()

	assert.Equal(t, "^[\\u0600\\u061c\U000e0001]$", e.String())
	for _, in := range []string{"\u0600", "\u061c", "\U000e0001"} {
		assert.True(t, matchesWhole(t, e, in), "should accept %q", in)
	}
	for _, in := range []string{"\u6000", "\u61cb", "\ue000", "1", "6"} {
		assert.False(t, matchesWhole(t, e, in), "should reject %q", in)
	}

	except := Create().AtStart().AnyExcept("\u0600").AtEnd()
	assert.False(t, matchesWhole(t, except, "\u0600"))
	assert.True(t, matchesWhole(t, except, "6"))
}

func TestAnyInRange_NonPrintableBounds(t *testing.T) {
	e := Create().AtStart().AnyInRange('\u0600', '\u0605').AtEnd()

	assert.Equal(t, `^[\u0600-\u0605]$`, e.String())
	assert.True(t, matchesWhole(t, e, "\u0603"))
	assert.False(t, matchesWhole(t, e, "\u0606"))
}

func TestAnyOf_DashIsLiteral(t *testing.T) {
	e := Create().AtStart().AnyOf("a-z").AtEnd()

	assert.True(t, matches(t, e, "a"))
	assert.True(t, matches(t, e, "-"))
	assert.True(t, matches(t, e, "z"))
	assert.False(t, matches(t, e, "m"), "a-z in AnyOf is three characters, not a range")
}

func TestAnyExcept(t *testing.T) {
	e := Create().AtStart().AnyExcept("abc").AtEnd()

	assert.Equal(t, "^[^abc]$", e.String())
	assert.True(t, matches(t, e, "d"))
	assert.False(t, matches(t, e, "a"))

	caret := Create().AtStart().AnyExcept("^").AtEnd()
	assert.False(t, matches(t, caret, "^"))
	assert.True(t, matches(t, caret, "x"))
}

func TestAnyInRange(t *testing.T) {
	e := Create().AtStart().AnyInRange('a', 'f').AtEnd()

	assert.Equal(t, "^[a-f]$", e.String())
	assert.True(t, matches(t, e, "a"))
	assert.True(t, matches(t, e, "f"))
	assert.False(t, matches(t, e, "g"))

	single := Create().AtStart().AnyInRange('x', 'x').AtEnd()
	assert.True(t, matches(t, single, "x"))
	assert.False(t, matches(t, single, "y"))
}

func TestAnyInRange_InvalidRange(t *testing.T) {
	assert.PanicsWithError(t, "rejigs: AnyInRange: invalid range: 'z'-'a'", func() {
		Create().AnyInRange('z', 'a')
	})

	_, err := Try(func() Expression { return Create().AnyInRange('9', '0') })
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
