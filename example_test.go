package pygments_test

import (
	"log"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	pygments "github.com/alexanderstephan/pygments"
)

// ExampleFormatter renders a snippet of Go source as an RTF document.
func ExampleFormatter() {
	lexer := chroma.Coalesce(lexers.Get("go"))
	it, err := lexer.Tokenise(nil, "package main\n")
	if err != nil {
		log.Fatal(err)
	}

	f := pygments.New(
		pygments.WithFontFamily("Courier New"),
		pygments.WithFontSize(24),
		pygments.WithLineNumbers(true),
	)
	if err := f.Format(os.Stdout, styles.Get("github"), it); err != nil {
		log.Fatal(err)
	}
}
