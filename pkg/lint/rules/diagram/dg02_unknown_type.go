package diagram

import (
	"fmt"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(UnknownType)
}

// UnknownType flags blocks whose first line does not declare a known diagram type.
var UnknownType = lint.RuleDef{
	ID:          "DG02",
	Name:        "unknown-type",
	Group:       lint.GroupDiagram,
	Description: "Mermaid blocks must start with a recognized diagram type.",
	Severity:    lint.SeverityError,
	Check:       checkUnknownType,

	Rationale: `Only graph/flowchart (with TD, LR, TB, BT or RL), sequenceDiagram, classDiagram,
pie and gantt headers are recognized. Anything else usually means a typo in the header or a
missing direction.`,

	BadExample:  "```mermaid\ngraph\n    A --> B\n```",
	GoodExample: "```mermaid\ngraph TD\n    A --> B\n```",
	Fix:         "Declare the diagram type, including the direction for graphs and flowcharts.",
}

func checkUnknownType(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, b := range Extract(ctx.Document.Lines, ctx.Conventions.DiagramTag) {
		if !b.Terminated || b.Empty() || b.Kind() != KindUnknown {
			continue
		}
		diagnostics = append(diagnostics, report(ctx, "DG02", lint.SeverityError, b, b.Lines[0].Number,
			fmt.Sprintf("Mermaid diagram %d has an unrecognized type", b.Index)))
	}
	return diagnostics
}
