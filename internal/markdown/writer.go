// Package markdown builds Markdown documents line by line.
package markdown

import (
	"bytes"
	"fmt"
	"strings"
)

// GeneratedComment marks files written by a generator.
const GeneratedComment = "<!-- Code generated by docguard. DO NOT EDIT. -->"

// Writer accumulates a Markdown document. Block-level methods end with a
// blank line so consecutive blocks stay separated.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Frontmatter writes a YAML front matter block with title and description.
func (w *Writer) Frontmatter(title, description string) {
	w.Line("---")
	w.Line("title: " + quoteYAML(title))
	if description != "" {
		w.Line("description: " + quoteYAML(description))
	}
	w.Line("---")
	w.Newline()
}

// GeneratedMarker writes the generated-file comment.
func (w *Writer) GeneratedMarker() {
	w.Line(GeneratedComment)
	w.Newline()
}

// Header writes a heading of the given level.
func (w *Writer) Header(level int, text string) {
	if level < 1 {
		level = 1
	}
	w.Line(strings.Repeat("#", level) + " " + text)
	w.Newline()
}

// Paragraph writes a block of text.
func (w *Writer) Paragraph(text string) {
	w.Line(text)
	w.Newline()
}

// BulletList writes a "- " list.
func (w *Writer) BulletList(items []string) {
	if len(items) == 0 {
		return
	}
	for _, item := range items {
		w.Line("- " + item)
	}
	w.Newline()
}

// NumberedList writes a "1. " list.
func (w *Writer) NumberedList(items []string) {
	if len(items) == 0 {
		return
	}
	for i, item := range items {
		w.Line(fmt.Sprintf("%d. %s", i+1, item))
	}
	w.Newline()
}

// CodeBlock writes a fenced code block. The fence grows past any backtick
// run inside code, so fenced examples can be nested.
func (w *Writer) CodeBlock(lang, code string) {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	w.Line(fence + lang)
	w.Line(strings.TrimRight(code, "\n"))
	w.Line(fence)
	w.Newline()
}

// Table writes a pipe table. Pipes inside cells are escaped.
func (w *Writer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	w.Line("| " + strings.Join(escapeCells(headers), " | ") + " |")

	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	w.Line("|" + strings.Join(sep, "|") + "|")

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		w.Line("| " + strings.Join(escapeCells(cells), " | ") + " |")
	}
	w.Newline()
}

// Line writes text followed by a newline.
func (w *Writer) Line(text string) {
	w.buf.WriteString(text)
	w.buf.WriteByte('\n')
}

// Newline writes an empty line.
func (w *Writer) Newline() {
	w.buf.WriteByte('\n')
}

// Bytes returns the document.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the document.
func (w *Writer) String() string {
	return w.buf.String()
}

// InlineCode wraps s in backticks.
func InlineCode(s string) string {
	return "`" + s + "`"
}

// Bold wraps s in double asterisks.
func Bold(s string) string {
	return "**" + s + "**"
}

// CleanDescription collapses whitespace and trims a trailing period for table cells.
func CleanDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSuffix(s, ".")
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

func quoteYAML(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
