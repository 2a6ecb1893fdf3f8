package pygments

// Line numbering defaults.
const (
	// DefaultLineNumberFontSize is the numeral font size in half-points
	// (18 half-points, a 9pt font).
	DefaultLineNumberFontSize = 18

	// DefaultLineNumberStart is the number given to the first line.
	DefaultLineNumberStart = 1

	// DefaultLineNumberStep prints every line's number.
	DefaultLineNumberStep = 1
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithFontFamily sets the font family named in the font table, for
// example "Courier New". Empty keeps the generic fixed-pitch fallback
// (\fmodern) that RTF viewers supply.
func WithFontFamily(name string) Option {
	return func(f *Formatter) {
		f.fontFamily = name
	}
}

// WithFontSize sets the default font size in half-points (24 gives a
// 12pt font). Zero leaves the size to the consuming viewer.
func WithFontSize(halfPoints int) Option {
	return func(f *Formatter) {
		f.fontSize = halfPoints
	}
}

// WithLineNumbers toggles the line number column.
func WithLineNumbers(enabled bool) Option {
	return func(f *Formatter) {
		f.lineNumbers = enabled
	}
}

// WithLineNumberFontSize sets the numeral font size in half-points.
func WithLineNumberFontSize(halfPoints int) Option {
	return func(f *Formatter) {
		f.lineNumberFontSize = halfPoints
	}
}

// WithLineNumberStart sets the number of the first line.
// Panics if n < 1 (programmer error, similar to time.NewTicker).
func WithLineNumberStart(n int) Option {
	if n < 1 {
		panic("pygments: WithLineNumberStart value must be positive")
	}
	return func(f *Formatter) {
		f.lineNumberStart = n
	}
}

// WithLineNumberStep prints only every nth line number, counted from
// the start line; skipped lines keep blank padding of the same width.
// Panics if n < 1 (programmer error, similar to time.NewTicker).
func WithLineNumberStep(n int) Option {
	if n < 1 {
		panic("pygments: WithLineNumberStep value must be positive")
	}
	return func(f *Formatter) {
		f.lineNumberStep = n
	}
}
