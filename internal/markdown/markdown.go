// Package markdown extracts fenced code blocks from Markdown documents.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlock is one fenced code block with its declared language.
type CodeBlock struct {
	Language string // Info-string language, may be empty
	Code     string
}

// ExtractCodeBlocks parses src and collects fenced code blocks in
// document order. Indented code blocks are ignored: they carry no
// language and are usually output samples, not source.
func ExtractCodeBlocks(src []byte) ([]CodeBlock, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []CodeBlock
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var code strings.Builder
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			code.Write(seg.Value(src))
		}

		blocks = append(blocks, CodeBlock{
			Language: string(fcb.Language(src)),
			Code:     code.String(),
		})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}
