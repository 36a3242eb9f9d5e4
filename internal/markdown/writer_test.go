package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	w := NewWriter()
	w.Frontmatter("Rules", `The "rules"`)
	w.Header(2, "Section")
	w.Paragraph("Text.")
	w.BulletList([]string{"a", "b"})
	w.NumberedList([]string{"one", "two"})
	w.CodeBlock("bash", "docguard check\n")
	w.Table([]string{"ID", "Description"}, [][]string{{"DS01", "a|b"}, {"DS02"}})

	want := "---\n" +
		"title: \"Rules\"\n" +
		"description: \"The \\\"rules\\\"\"\n" +
		"---\n\n" +
		"## Section\n\n" +
		"Text.\n\n" +
		"- a\n- b\n\n" +
		"1. one\n2. two\n\n" +
		"```bash\ndocguard check\n```\n\n" +
		"| ID | Description |\n" +
		"|---|---|\n" +
		"| DS01 | a\\|b |\n" +
		"| DS02 |  |\n\n"
	assert.Equal(t, want, w.String())
}

func TestWriter_NestedCodeBlock(t *testing.T) {
	w := NewWriter()
	w.CodeBlock("markdown", "```mermaid\ngraph TD\n```")
	assert.Equal(t, "````markdown\n```mermaid\ngraph TD\n```\n````\n\n", w.String())
}

func TestWriter_EmptyListsAreSkipped(t *testing.T) {
	w := NewWriter()
	w.BulletList(nil)
	w.NumberedList(nil)
	w.Table(nil, nil)
	assert.Empty(t, w.String())
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "`x`", InlineCode("x"))
	assert.Equal(t, "**x**", Bold("x"))
	assert.Equal(t, "Root document must contain it", CleanDescription("Root  document\nmust contain it."))
}
