package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// printUsage prints the usage message with all flags.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: pygmentize [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlight source code as a self-contained RTF document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Source file (\"-\" or omitted reads stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config file keys (YAML): style, font.family, font.size,")
	fmt.Fprintln(w, "lineNumbers.{enabled,fontSize,start,step}, and styles.<name>")
	fmt.Fprintln(w, "mapping token types to chroma entry strings, e.g.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  styles:")
	fmt.Fprintln(w, "    housestyle:")
	fmt.Fprintln(w, "      Keyword: \"bold #0000ff\"")
	fmt.Fprintln(w, "      Comment: \"italic #888888\"")
}
