package pygments

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// escapeStructural escapes the three characters RTF itself is built
// from. Must run before any other escaping so inserted control words
// are not re-escaped.
func escapeStructural(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "{", `\{`)
	s = strings.ReplaceAll(s, "}", `\}`)
	return s
}

// escapeText encodes arbitrary text for the RTF body. ASCII passes
// through, code points up to U+FFFF become a single {\uN} group, and
// anything above is forced through a UTF-16 surrogate pair since RTF
// limits \u to 16 bits. Newlines become \par; the literal newline kept
// after each \par is cosmetic, viewers only honor the control word.
//
// Stateless and referentially transparent: it is called once per token
// and must not leak state between calls.
func escapeText(s string) string {
	// Empty strings, should give a small performance improvement.
	if s == "" {
		return ""
	}

	s = escapeStructural(s)

	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 1<<7:
			buf.WriteByte(byte(r))
		case r < 1<<16:
			fmt.Fprintf(&buf, `{\u%d}`, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&buf, `{\u%d}{\u%d}`, hi, lo)
		}
	}

	return strings.ReplaceAll(buf.String(), "\n", "\\par\n")
}
