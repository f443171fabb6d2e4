package rejigs

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// emptyText matches only the empty string.
const emptyText = "^$"

// Text appends text matched verbatim. Metacharacters are escaped with the
// engine's own escaping. An empty text appends ^$, which matches only the
// empty string.
func (e Expression) Text(text string) Expression {
	return e.append(escapeText(text))
}

// Raw appends pattern as-is. The caller is responsible for its syntax.
func (e Expression) Raw(pattern string) Expression {
	return e.append(pattern)
}

func escapeText(text string) string {
	if text == "" {
		return emptyText
	}
	var b strings.Builder
	for _, r := range text {
		escapeRune(&b, r)
	}
	return b.String()
}

// escapeRune writes r so that it matches itself. Non-printable runes above
// U+00FF become a four-digit \u escape, or stay raw beyond U+FFFF.
func escapeRune(b *strings.Builder, r rune) {
	switch {
	case r < 0x100 || unicode.IsPrint(r):
		b.WriteString(regexp2.Escape(string(r)))
	case r <= 0xFFFF:
		fmt.Fprintf(b, `\u%04x`, r)
	default:
		b.WriteRune(r)
	}
}

// escapeSet escapes characters for use between [ and ]. The class
// metacharacters are escaped here; everything else goes through escapeRune.
func escapeSet(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		switch r {
		case '\\', ']', '[', '^', '-':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			escapeRune(&b, r)
		}
	}
	return b.String()
}
