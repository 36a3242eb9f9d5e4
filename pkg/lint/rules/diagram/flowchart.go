package diagram

import (
	"regexp"
	"strings"
)

// word matches an identifier. Letters and digits of any script are accepted
// so node IDs written in CJK are recognized.
const word = `[\p{L}\p{N}_]+`

var (
	flowNode = regexp.MustCompile(`^(` + word + `)(\["[^"]+"\]|\([^)]+\)|\[[^\]]+\]|\{[^}]+\})?`)
	flowEdge = regexp.MustCompile(`(` + word + `)\s*(-->|--->|==>|===|-\.->|->)\s*(` + word + `)`)
)

// Edge is a reference between two identifiers found on a line.
type Edge struct {
	From string
	To   string
	Line int
}

// Flowchart is the shallow structure of a graph or flowchart block.
type Flowchart struct {
	Nodes     map[string]bool // identifiers leading a line
	Edges     []Edge          // first edge of each line
	Subgraphs int             // lines starting with "subgraph"
	Ends      int             // lines equal to "end"
}

// ParseFlowchart collects nodes, edges and subgraph counts from a block.
func ParseFlowchart(b Block) Flowchart {
	f := Flowchart{Nodes: make(map[string]bool)}
	for _, line := range b.Body() {
		if m := flowNode.FindStringSubmatch(line.Text); m != nil {
			f.Nodes[m[1]] = true
		}
		if m := flowEdge.FindStringSubmatch(line.Text); m != nil {
			f.Edges = append(f.Edges, Edge{From: m[1], To: m[3], Line: line.Number})
		}
	}
	for _, line := range b.Lines {
		if strings.HasPrefix(line.Text, "subgraph") {
			f.Subgraphs++
		}
		if line.Text == "end" {
			f.Ends++
		}
	}
	return f
}
