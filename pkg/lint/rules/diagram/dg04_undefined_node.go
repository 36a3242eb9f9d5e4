package diagram

import (
	"fmt"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(UndefinedNode)
}

// UndefinedNode flags flowchart edges whose endpoints never lead a line.
var UndefinedNode = lint.RuleDef{
	ID:          "DG04",
	Name:        "undefined-node",
	Group:       lint.GroupDiagram,
	Description: "Flowchart edges must reference nodes that are defined in the diagram.",
	Severity:    lint.SeverityError,
	Check:       checkUndefinedNode,

	Rationale: `A node counts as defined when its identifier starts a line, alone or followed by
a shape. Edge endpoints that are never defined are usually misspelled identifiers.`,

	BadExample: "```mermaid\ngraph TD\n    A[\"Start\"]\n    A --> B\n```",

	GoodExample: "```mermaid\ngraph TD\n    A[\"Start\"]\n    B[\"End\"]\n    A --> B\n```",

	Fix: "Define the node on its own line or fix the identifier.",
}

func checkUndefinedNode(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, b := range checkable(ctx, KindGraph, KindFlowchart) {
		f := ParseFlowchart(b)
		for _, e := range f.Edges {
			if !f.Nodes[e.From] {
				diagnostics = append(diagnostics, report(ctx, "DG04", lint.SeverityError, b, e.Line,
					fmt.Sprintf("flowchart %d references undefined source node '%s'", b.Index, e.From)))
			}
			if !f.Nodes[e.To] {
				diagnostics = append(diagnostics, report(ctx, "DG04", lint.SeverityError, b, e.Line,
					fmt.Sprintf("flowchart %d references undefined target node '%s'", b.Index, e.To)))
			}
		}
	}
	return diagnostics
}
