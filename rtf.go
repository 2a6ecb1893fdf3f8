package pygments

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// Formatter renders chroma token streams as complete RTF documents,
// colour table and all. Construct with New; the zero value renders with
// all defaults but skips option validation.
type Formatter struct {
	fontFamily         string
	fontSize           int
	lineNumbers        bool
	lineNumberFontSize int
	lineNumberStart    int
	lineNumberStep     int
}

// Formatter plugs into chroma's formatting contract.
var _ chroma.Formatter = (*Formatter)(nil)

// New creates a Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		lineNumberFontSize: DefaultLineNumberFontSize,
		lineNumberStart:    DefaultLineNumberStart,
		lineNumberStep:     DefaultLineNumberStep,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format writes one self-contained RTF document for the token stream.
// The colour table is built fully before any output; when line numbers
// are on, the stream is materialized in one pre-pass to learn the
// numeral column width, otherwise tokens stream through with O(1)
// working memory.
func (f *Formatter) Format(w io.Writer, style *chroma.Style, it chroma.Iterator) error {
	table := buildColorTable(style)

	if err := f.writeHeader(w, table); err != nil {
		return err
	}

	var state *lineNumberState
	tokens := it
	if f.lineNumbers {
		materialized, total := materialize(it)
		state = newLineNumberState(f.lineNumberStart, f.lineNumberStep, total)
		tokens = chroma.Literator(materialized...)
	}

	for tok := tokens(); tok != chroma.EOF; tok = tokens() {
		if err := f.writeToken(w, style, table, state, tok); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}")
	return err
}

// writeHeader emits the RTF 1 header: encoding directives, the
// single-entry fixed-pitch font table, the colour table, and the
// default font size when configured.
func (f *Formatter) writeHeader(w io.Writer, table *colorTable) error {
	fontFamily := ""
	if f.fontFamily != "" {
		fontFamily = " " + escapeStructural(f.fontFamily)
	}
	if _, err := fmt.Fprintf(w, `{\rtf1\ansi\uc0\deff0{\fonttbl{\f0\fmodern\fprq1\fcharset0%s;}}{\colortbl;`, fontFamily); err != nil {
		return err
	}
	if err := table.write(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `}\f0 `); err != nil {
		return err
	}
	if f.fontSize > 0 {
		if _, err := fmt.Fprintf(w, `\fs%d`, f.fontSize); err != nil {
			return err
		}
	}
	return nil
}

// writeToken emits the number slot owed at a line start, then the
// escaped token text, wrapped in a styled group only when some
// attribute differs from the default.
func (f *Formatter) writeToken(w io.Writer, style *chroma.Style, table *colorTable, state *lineNumberState, tok chroma.Token) error {
	entry := f.entryFor(style, tok.Type)

	if state != nil && state.pending {
		if _, err := fmt.Fprintf(w, "{\\fs%d \\cf1 %s  }", f.lineNumberFontSize, state.slot()); err != nil {
			return err
		}
		state.pending = false
	}

	prefix, err := stylePrefix(entry, table)
	if err != nil {
		return err
	}

	if prefix != "" {
		if _, err := fmt.Fprintf(w, "{%s ", prefix); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, escapeText(tok.Value)); err != nil {
		return err
	}
	if prefix != "" {
		if _, err := io.WriteString(w, "}"); err != nil {
			return err
		}
	}

	if state != nil {
		state.observe(tok.Value)
	}
	return nil
}

// entryFor walks the token-type hierarchy to the nearest ancestor the
// style has an explicit entry for, then resolves its minimal entry. The
// walk is bounded by the depth of the type tree. Exhausting the
// hierarchy means nothing up the chain is styled; the run renders bare.
// A match on a meta type (the negative range) must be backed by an
// explicit entry: Has synthesizes entries for some meta types, and a
// synthesized colour is absent from the table built over Types().
func (f *Formatter) entryFor(style *chroma.Style, tt chroma.TokenType) chroma.StyleEntry {
	for tt != 0 && !style.Has(tt) {
		tt = tt.Parent()
	}
	if tt == 0 || (tt < 0 && !hasExplicitEntry(style, tt)) {
		return chroma.StyleEntry{}
	}
	return minimalEntry(style, tt)
}

func hasExplicitEntry(style *chroma.Style, tt chroma.TokenType) bool {
	for _, t := range style.Types() {
		if t == tt {
			return true
		}
	}
	return false
}

// stylePrefix builds the run's control-word prefix in fixed order:
// background, foreground, bold, italic, underline, border. Empty when
// the entry carries nothing.
func stylePrefix(entry chroma.StyleEntry, table *colorTable) (string, error) {
	var buf strings.Builder

	if entry.Background.IsSet() {
		i, err := table.ref(entry.Background)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, `\cb%d`, i)
	}
	if entry.Colour.IsSet() {
		i, err := table.ref(entry.Colour)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, `\cf%d`, i)
	}
	if entry.Bold == chroma.Yes {
		buf.WriteString(`\b`)
	}
	if entry.Italic == chroma.Yes {
		buf.WriteString(`\i`)
	}
	if entry.Underline == chroma.Yes {
		buf.WriteString(`\ul`)
	}
	if entry.Border.IsSet() {
		i, err := table.ref(entry.Border)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, `\chbrdr\chcfpat%d`, i)
	}
	return buf.String(), nil
}
