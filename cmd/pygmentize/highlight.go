package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	pygments "github.com/alexanderstephan/pygments"
	"github.com/alexanderstephan/pygments/internal/config"
	"github.com/alexanderstephan/pygments/internal/fileutil"
	"github.com/alexanderstephan/pygments/internal/markdown"
)

// run executes the CLI: parse flags, merge in the config file, read the
// input, tokenise it, and render RTF to the output.
func run(args []string) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.config != "" {
		cfg, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		if err := cfg.RegisterStyles(); err != nil {
			return err
		}
		mergeConfig(flags, cfg)
	}

	if flags.listStyles {
		return printLines(os.Stdout, styles.Names())
	}
	if flags.listLexers {
		return printLines(os.Stdout, lexers.Names(false))
	}

	input := ""
	if len(positional) > 0 {
		input = positional[0]
	}
	src, err := fileutil.ReadSource(input)
	if err != nil {
		return err
	}

	style := styles.Get(flags.selection.style)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "style: %s\n", style.Name)
	}

	var it chroma.Iterator
	if flags.markdown {
		it, err = tokeniseMarkdown(src, flags.selection.lexer)
	} else {
		it, err = tokenise(src, flags.selection.lexer, input)
	}
	if err != nil {
		return err
	}

	formatter := newFormatter(flags)
	return fileutil.WriteOutput(flags.output, func(w io.Writer) error {
		return formatter.Format(w, style, it)
	})
}

// mergeConfig fills in config file values for flags the user left at
// their defaults. Explicit flags always win.
func mergeConfig(flags *cliFlags, cfg *config.Config) {
	if !flags.changed("style") && cfg.Style != "" {
		flags.selection.style = cfg.Style
	}
	if !flags.changed("font") && cfg.Font.Family != "" {
		flags.formatter.font = cfg.Font.Family
	}
	if !flags.changed("font-size") && cfg.Font.Size > 0 {
		flags.formatter.fontSize = cfg.Font.Size
	}
	if !flags.changed("line-numbers") {
		flags.formatter.lineNumbers = cfg.LineNumbers.Enabled
	}
	if !flags.changed("line-number-font-size") && cfg.LineNumbers.FontSize > 0 {
		flags.formatter.lineNumberFontSize = cfg.LineNumbers.FontSize
	}
	if !flags.changed("line-number-start") && cfg.LineNumbers.Start > 0 {
		flags.formatter.lineNumberStart = cfg.LineNumbers.Start
	}
	if !flags.changed("line-number-step") && cfg.LineNumbers.Step > 0 {
		flags.formatter.lineNumberStep = cfg.LineNumbers.Step
	}
}

// newFormatter maps flags onto formatter options.
func newFormatter(flags *cliFlags) *pygments.Formatter {
	opts := []pygments.Option{
		pygments.WithFontFamily(flags.formatter.font),
		pygments.WithFontSize(flags.formatter.fontSize),
		pygments.WithLineNumbers(flags.formatter.lineNumbers),
		pygments.WithLineNumberFontSize(flags.formatter.lineNumberFontSize),
		pygments.WithLineNumberStart(flags.formatter.lineNumberStart),
		pygments.WithLineNumberStep(flags.formatter.lineNumberStep),
	}
	return pygments.New(opts...)
}

// tokenise runs the selected lexer over the whole source.
func tokenise(src []byte, lexerName, path string) (chroma.Iterator, error) {
	return selectLexer(lexerName, path, src).Tokenise(nil, string(src))
}

// tokeniseMarkdown extracts every fenced code block of a Markdown
// document and concatenates their token streams, blocks separated by a
// blank line. Blocks without an info-string language fall back to the
// --lexer flag, then to detection.
func tokeniseMarkdown(src []byte, lexerName string) (chroma.Iterator, error) {
	blocks, err := markdown.ExtractCodeBlocks(src)
	if err != nil {
		return nil, err
	}

	var tokens []chroma.Token
	for i, block := range blocks {
		if i > 0 {
			tokens = append(tokens, chroma.Token{Type: chroma.Text, Value: "\n"})
		}
		name := block.Language
		if name == "" {
			name = lexerName
		}
		it, err := selectLexer(name, "", []byte(block.Code)).Tokenise(nil, block.Code)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, it.Tokens()...)
	}
	return chroma.Literator(tokens...), nil
}

// selectLexer picks a lexer: explicit name, then filename match, then
// content analysis, then the plain-text fallback. The result is always
// coalesced so runs of single-character tokens collapse.
func selectLexer(name, path string, src []byte) chroma.Lexer {
	var lexer chroma.Lexer
	switch {
	case name != "":
		lexer = lexers.Get(name)
	case path != "" && path != "-":
		lexer = lexers.Match(filepath.Base(path))
	}
	if lexer == nil {
		lexer = lexers.Analyse(string(src))
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
