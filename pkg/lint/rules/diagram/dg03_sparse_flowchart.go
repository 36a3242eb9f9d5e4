package diagram

import (
	"fmt"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(SparseFlowchart)
}

// SparseFlowchart warns about flowcharts with fewer than two nodes.
var SparseFlowchart = lint.RuleDef{
	ID:          "DG03",
	Name:        "sparse-flowchart",
	Group:       lint.GroupDiagram,
	Description: "Flowcharts should define at least two nodes.",
	Severity:    lint.SeverityWarning,
	Check:       checkSparseFlowchart,

	BadExample: "```mermaid\ngraph TD\n    A[\"Only node\"]\n```",
	Fix:        "Add the missing nodes or replace the diagram with prose.",
}

func checkSparseFlowchart(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, b := range checkable(ctx, KindGraph, KindFlowchart) {
		f := ParseFlowchart(b)
		if len(f.Nodes) < 2 {
			diagnostics = append(diagnostics, report(ctx, "DG03", lint.SeverityWarning, b, b.Start,
				fmt.Sprintf("flowchart %d has few nodes (%d)", b.Index, len(f.Nodes))))
		}
	}
	return diagnostics
}
