package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

const (
	sectionHeadingLevel = 3
	shellBlockInfo      = "bash"
	commentPrefix       = "#"
)

// Section is one exam exercise: a level-3 heading and everything up to the
// next level-3 heading or end of file.
type Section struct {
	// Title is the trimmed heading text.
	Title string
	// Body is the section's raw text, code blocks included, used by the
	// namespace and resource heuristics.
	Body []byte
	// Commands lists the non-comment lines of every bash fenced block in the
	// section, in source order.
	Commands []string
}

// engine is stateless, so a single instance serves every Split call.
var engine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Split parses the markdown source and cuts it into sections at level-3
// headings. Content before the first section heading is discarded, matching
// the exercise-file convention where the preamble holds no questions.
func Split(source []byte) []Section {
	root := engine.Parser().Parse(text.NewReader(source))

	var sections []Section
	var current *Section
	var body bytes.Buffer

	flush := func() {
		if current != nil {
			current.Body = append([]byte(nil), body.Bytes()...)
			sections = append(sections, *current)
		}
		body.Reset()
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if heading, ok := n.(*ast.Heading); ok && heading.Level == sectionHeadingLevel {
			flush()
			current = &Section{
				Title: strings.TrimSpace(string(heading.Text(source))),
			}
			continue
		}
		if current == nil {
			continue
		}

		appendNodeText(&body, n, source)

		if block, ok := n.(*ast.FencedCodeBlock); ok {
			if string(block.Language(source)) == shellBlockInfo {
				current.Commands = append(current.Commands, commandLines(block, source)...)
			}
		}
	}
	flush()

	return sections
}

// appendNodeText reconstructs the raw text a node spans by concatenating its
// line segments, recursing into containers that carry no lines themselves
// (lists, block quotes).
func appendNodeText(buf *bytes.Buffer, n ast.Node, source []byte) {
	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
		buf.WriteByte('\n')
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		appendNodeText(buf, c, source)
	}
}

func commandLines(block *ast.FencedCodeBlock, source []byte) []string {
	lines := block.Lines()
	cmds := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimSpace(string(seg.Value(source)))
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		cmds = append(cmds, line)
	}
	return cmds
}
