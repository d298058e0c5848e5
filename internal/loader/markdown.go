package loader

import (
	"bytes"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// extractMarkdownText parses a markdown file with goldmark and flattens it to
// plain text: headings become their own lines, block content is kept verbatim.
func extractMarkdownText(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		var block string
		if heading, ok := n.(*ast.Heading); ok {
			block = string(heading.Text(src))
		} else {
			block = nodeText(n, src)
		}
		if block = strings.TrimSpace(block); block != "" {
			blocks = append(blocks, block)
		}
	}

	return strings.Join(blocks, "\n\n"), nil
}

// nodeText collects the raw text content of a goldmark AST node.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok && n.Type() != ast.TypeBlock {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else if c.Type() == ast.TypeBlock {
			buf.WriteString(nodeText(c, src))
			buf.WriteByte('\n')
		}
	}
	return strings.TrimSpace(buf.String())
}
