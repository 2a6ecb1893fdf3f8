// Package pygments formats chroma token streams as RTF documents.
//
// The formatter emits complete, self-contained RTF with colour
// information, ready to paste into word processors. Output is pure
// ASCII: non-ASCII code points are written as \uN escape sequences, so
// the document survives any transport encoding.
//
// # Quick Start
//
// Tokenise source with a chroma lexer and format it:
//
//	lexer := chroma.Coalesce(lexers.Get("go"))
//	it, err := lexer.Tokenise(nil, source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f := pygments.New(pygments.WithFontFamily("Courier New"))
//	if err := f.Format(os.Stdout, styles.Get("monokai"), it); err != nil {
//	    log.Fatal(err)
//	}
//
// Formatter satisfies chroma.Formatter.
//
// # Rendering Pipeline
//
// Formatting runs in three stages:
//
//  1. Colour table: the distinct colours of the style are deduplicated
//     into a 1-indexed table emitted in the document header.
//  2. Line pre-pass (line numbers only): one pass over the token stream
//     to learn the total line count, which fixes the numeral column
//     width before any output is written.
//  3. Token rendering: one styled run per token, carrying only the
//     attributes that differ from the style's default.
//
// # Configuration
//
// Use functional options to customize the formatter:
//
//	f := pygments.New(
//	    pygments.WithFontSize(24), // half-points, 12pt
//	    pygments.WithLineNumbers(true),
//	    pygments.WithLineNumberStep(5),
//	)
package pygments
