package pygments

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// lineNumberState threads the line-column bookkeeping through the
// render loop: the current line number, the step grid, the fixed
// numeral column width, and whether a number slot is owed before the
// next emitted character.
type lineNumberState struct {
	lineno  int
	start   int
	step    int
	width   int
	pending bool
}

// newLineNumberState sizes the numeral column from the total line count
// learned in the pre-pass. The first slot is owed immediately.
func newLineNumberState(start, step, totalLines int) *lineNumberState {
	return &lineNumberState{
		lineno:  start,
		start:   start,
		step:    step,
		width:   len(strconv.Itoa(totalLines)),
		pending: true,
	}
}

// slot returns the next number-slot content: the right-justified
// numeral when the line lands on the step grid counted from the start
// line, blank padding of the same width otherwise.
func (s *lineNumberState) slot() string {
	if (s.lineno-s.start)%s.step == 0 {
		return fmt.Sprintf("%*d", s.width, s.lineno)
	}
	return strings.Repeat(" ", s.width)
}

// observe advances the state after a token's text has been emitted: a
// trailing newline ends the line, so the next character owes a slot.
func (s *lineNumberState) observe(value string) {
	if strings.HasSuffix(value, "\n") {
		s.pending = true
		s.lineno++
	}
}

// materialize drains the token stream into a re-iterable slice and
// returns the total line-boundary count. Multi-line doc-string tokens
// are split into one token per line so each line can carry its own
// number; a boundary is counted for each such fragment and for every
// token whose text is exactly a single newline.
func materialize(it chroma.Iterator) ([]chroma.Token, int) {
	var tokens []chroma.Token
	lines := 0

	for tok := it(); tok != chroma.EOF; tok = it() {
		switch {
		case tok.Type == chroma.LiteralStringDoc && strings.Contains(tok.Value, "\n"):
			for _, frag := range splitAfterLines(tok.Value) {
				lines++
				tokens = append(tokens, chroma.Token{Type: tok.Type, Value: frag})
			}
		case tok.Value == "\n":
			lines++
			tokens = append(tokens, tok)
		default:
			tokens = append(tokens, tok)
		}
	}
	return tokens, lines
}

// splitAfterLines splits after each newline, preserving total character
// content. A final fragment without a trailing newline still counts as
// a line; the empty fragment after a trailing newline does not.
func splitAfterLines(s string) []string {
	parts := strings.SplitAfter(s, "\n")
	if n := len(parts); parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}
