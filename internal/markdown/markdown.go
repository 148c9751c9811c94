// Package markdown extracts document structure from markdown files for the
// workspace index.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is an ATX heading found in a document.
type Heading struct {
	Level int
	Text  string
	Line  int // 1-based line number
}

// Document is the extracted structure of one markdown file.
type Document struct {
	// Title is the first level-1 heading, or the first heading of any
	// level when no level-1 heading exists.
	Title    string
	Headings []Heading
}

// Parser wraps goldmark for markdown processing.
type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// Parse walks the goldmark AST and collects headings.
func (p *Parser) Parse(content []byte) *Document {
	reader := text.NewReader(content)
	root := p.md.Parser().Parse(reader)

	doc := &Document{}
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		lines := h.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		var buf bytes.Buffer
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(content))
		}
		heading := Heading{
			Level: h.Level,
			Text:  string(bytes.TrimSpace(buf.Bytes())),
			Line:  lineAt(content, lines.At(0).Start),
		}
		if heading.Text == "" {
			return ast.WalkSkipChildren, nil
		}
		doc.Headings = append(doc.Headings, heading)
		if heading.Level == 1 && doc.Title == "" {
			doc.Title = heading.Text
		}
		return ast.WalkSkipChildren, nil
	})

	if doc.Title == "" && len(doc.Headings) > 0 {
		doc.Title = doc.Headings[0].Text
	}
	return doc
}

// lineAt converts a byte offset into a 1-based line number.
func lineAt(content []byte, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return bytes.Count(content[:offset], []byte("\n")) + 1
}
