package diagram

import (
	"strings"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

// Kind is a diagram type recognized from the first line of a block.
type Kind string

// Recognized diagram kinds.
const (
	KindUnknown   Kind = ""
	KindGraph     Kind = "graph"
	KindFlowchart Kind = "flowchart"
	KindSequence  Kind = "sequenceDiagram"
	KindClass     Kind = "classDiagram"
	KindPie       Kind = "pie"
	KindGantt     Kind = "gantt"
)

// kindPrefixes lists, in match order, the header prefixes of each kind.
var kindPrefixes = []struct {
	kind     Kind
	prefixes []string
}{
	{KindGraph, []string{"graph TD", "graph LR", "graph TB", "graph BT", "graph RL"}},
	{KindFlowchart, []string{"flowchart TD", "flowchart LR", "flowchart TB", "flowchart BT", "flowchart RL"}},
	{KindSequence, []string{"sequenceDiagram"}},
	{KindClass, []string{"classDiagram"}},
	{KindPie, []string{"pie"}},
	{KindGantt, []string{"gantt"}},
}

// DetectKind returns the kind whose header prefix starts the line.
func DetectKind(first string) Kind {
	for _, k := range kindPrefixes {
		for _, p := range k.prefixes {
			if strings.HasPrefix(first, p) {
				return k.kind
			}
		}
	}
	return KindUnknown
}

// IsFlowchart reports whether the kind is checked as a flowchart.
func (k Kind) IsFlowchart() bool {
	return k == KindGraph || k == KindFlowchart
}

// Line is a non-blank, trimmed line of a block with its 1-based document line number.
type Line struct {
	Text   string
	Number int
}

// Block is a fenced diagram block.
type Block struct {
	Index      int    // 1-based position among the document's blocks
	Start      int    // line number of the opening fence
	Lines      []Line // non-blank content lines, trimmed
	Terminated bool   // closed by a bare fence before end of file
}

// Empty reports whether the block has no content lines.
func (b Block) Empty() bool {
	return len(b.Lines) == 0
}

// Kind returns the diagram kind declared on the first content line.
func (b Block) Kind() Kind {
	if b.Empty() {
		return KindUnknown
	}
	return DetectKind(b.Lines[0].Text)
}

// Body returns the content lines after the type header.
func (b Block) Body() []Line {
	if b.Empty() {
		return nil
	}
	return b.Lines[1:]
}

// Extract scans document lines for blocks opened by a trimmed line equal to
// "```"+tag and closed by a trimmed line equal to "```".
func Extract(lines []string, tag string) []Block {
	open := "```" + tag

	var blocks []Block
	var cur *Block
	for i, raw := range lines {
		text := strings.TrimSpace(raw)
		switch {
		case text == open:
			if cur == nil {
				cur = &Block{Index: len(blocks) + 1, Start: i + 1}
			}
		case text == "```" && cur != nil:
			cur.Terminated = true
			blocks = append(blocks, *cur)
			cur = nil
		case cur != nil:
			if text != "" {
				cur.Lines = append(cur.Lines, Line{Text: text, Number: i + 1})
			}
		}
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}
	return blocks
}

// checkable returns the terminated blocks of the context's document whose
// kind is one of kinds.
func checkable(ctx *lint.Context, kinds ...Kind) []Block {
	var out []Block
	for _, b := range Extract(ctx.Document.Lines, ctx.Conventions.DiagramTag) {
		if !b.Terminated || b.Empty() {
			continue
		}
		k := b.Kind()
		for _, want := range kinds {
			if k == want {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// report creates a diagnostic tied to a block and line.
func report(ctx *lint.Context, ruleID string, severity lint.Severity, b Block, line int, message string) lint.Diagnostic {
	d := ctx.Report(ruleID, severity, message)
	d.Block = b.Index
	d.Line = line
	return d
}
