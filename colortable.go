package pygments

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// colorTable is the deduplicated registry of every colour the style can
// reference, keyed to 1-based indices in assignment order. Index 0 is
// RTF's implicit default slot and is never assigned. The table is
// immutable once rendering starts.
type colorTable struct {
	index map[chroma.Colour]int
	order []chroma.Colour
}

// buildColorTable scans every styled token type once, in ascending
// token-type order, registering foreground, background, then border per
// entry. First sighting of a colour assigns the next index; repeats
// reuse it.
func buildColorTable(style *chroma.Style) *colorTable {
	t := &colorTable{index: map[chroma.Colour]int{}}

	types := style.Types()
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, tt := range types {
		entry := minimalEntry(style, tt)
		t.add(entry.Colour)
		t.add(entry.Background)
		t.add(entry.Border)
	}
	return t
}

// minimalEntry resolves a token type to the attributes that differ from
// the style's Background defaults. The builder and the renderer share
// it, so a colour the renderer references is always in the table.
func minimalEntry(style *chroma.Style, tt chroma.TokenType) chroma.StyleEntry {
	entry := style.Get(tt)
	if tt != chroma.Background {
		entry = entry.Sub(style.Get(chroma.Background))
	}
	return entry
}

func (t *colorTable) add(c chroma.Colour) {
	if !c.IsSet() {
		return
	}
	if _, ok := t.index[c]; ok {
		return
	}
	t.index[c] = len(t.order) + 1
	t.order = append(t.order, c)
}

// ref returns the 1-based table index for c.
func (t *colorTable) ref(c chroma.Colour) (int, error) {
	i, ok := t.index[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColorReference, c)
	}
	return i, nil
}

// write emits the \colortbl body in assignment order.
func (t *colorTable) write(w io.Writer) error {
	for _, c := range t.order {
		if _, err := fmt.Fprintf(w, `\red%d\green%d\blue%d;`, c.Red(), c.Green(), c.Blue()); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor parses a 6-hex-digit RGB triple, with or without a leading
// '#', into a chroma colour. Anything else (shorthand #rgb included)
// returns ErrInvalidColorFormat.
func ParseColor(s string) (chroma.Colour, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	r, g, b := c.RGB255()
	return chroma.NewColour(r, g, b), nil
}
