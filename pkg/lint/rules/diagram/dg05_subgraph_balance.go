package diagram

import (
	"fmt"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(SubgraphBalance)
}

// SubgraphBalance flags flowcharts whose subgraph and end counts differ.
var SubgraphBalance = lint.RuleDef{
	ID:          "DG05",
	Name:        "subgraph-balance",
	Group:       lint.GroupDiagram,
	Description: "Every flowchart subgraph must be closed by an end line.",
	Severity:    lint.SeverityError,
	Check:       checkSubgraphBalance,

	BadExample: "```mermaid\ngraph TD\n    subgraph core\n    A --> B\n```",

	GoodExample: "```mermaid\ngraph TD\n    subgraph core\n    A --> B\n    end\n```",

	Fix: "Add the missing end line. Only totals are compared, nesting is not tracked.",
}

func checkSubgraphBalance(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, b := range checkable(ctx, KindGraph, KindFlowchart) {
		f := ParseFlowchart(b)
		if f.Subgraphs != f.Ends {
			diagnostics = append(diagnostics, report(ctx, "DG05", lint.SeverityError, b, b.Start,
				fmt.Sprintf("flowchart %d has mismatched subgraph/end (%d subgraph, %d end)", b.Index, f.Subgraphs, f.Ends)))
		}
	}
	return diagnostics
}
