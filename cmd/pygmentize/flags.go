package main

import (
	"os"

	flag "github.com/spf13/pflag"

	pygments "github.com/alexanderstephan/pygments"
)

// formatterFlags holds flags that map onto pygments options.
type formatterFlags struct {
	font               string
	fontSize           int
	lineNumbers        bool
	lineNumberFontSize int
	lineNumberStart    int
	lineNumberStep     int
}

// selectionFlags holds lexer and style selection flags.
type selectionFlags struct {
	lexer string
	style string
}

// cliFlags holds all flags for the pygmentize CLI.
type cliFlags struct {
	config     string
	output     string
	markdown   bool
	verbose    bool
	listStyles bool
	listLexers bool
	selection  selectionFlags
	formatter  formatterFlags

	set *flag.FlagSet
}

// parseFlags parses args (including the program name) and returns the
// parsed flags and positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(os.Stderr, fs) }

	fs.StringVarP(&flags.config, "config", "c", "", "YAML config file")
	fs.StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&flags.selection.lexer, "lexer", "l", "", "lexer name (default: detect from filename, then content)")
	fs.StringVarP(&flags.selection.style, "style", "s", "default", "style name, built-in or from config")
	fs.BoolVar(&flags.markdown, "markdown", false, "treat input as Markdown and highlight its fenced code blocks")

	fs.StringVar(&flags.formatter.font, "font", "", "font family (default: generic fixed-pitch)")
	fs.IntVar(&flags.formatter.fontSize, "font-size", 0, "font size in half-points (0 = viewer default)")
	fs.BoolVarP(&flags.formatter.lineNumbers, "line-numbers", "n", false, "number lines")
	fs.IntVar(&flags.formatter.lineNumberFontSize, "line-number-font-size", pygments.DefaultLineNumberFontSize, "line number font size in half-points")
	fs.IntVar(&flags.formatter.lineNumberStart, "line-number-start", pygments.DefaultLineNumberStart, "first line number")
	fs.IntVar(&flags.formatter.lineNumberStep, "line-number-step", pygments.DefaultLineNumberStep, "print only every nth line number")

	fs.BoolVar(&flags.listStyles, "list-styles", false, "list available styles and exit")
	fs.BoolVar(&flags.listLexers, "list-lexers", false, "list available lexers and exit")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output on stderr")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	flags.set = fs
	return flags, fs.Args(), nil
}

// changed reports whether the named flag was set on the command line,
// so config file values only fill in what the user left alone.
func (f *cliFlags) changed(name string) bool {
	return f.set != nil && f.set.Changed(name)
}
