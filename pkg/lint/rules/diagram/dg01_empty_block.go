package diagram

import (
	"fmt"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(EmptyBlock)
}

// EmptyBlock warns about diagram blocks without content.
var EmptyBlock = lint.RuleDef{
	ID:          "DG01",
	Name:        "empty-block",
	Group:       lint.GroupDiagram,
	Description: "Mermaid blocks should not be empty.",
	Severity:    lint.SeverityWarning,
	Check:       checkEmptyBlock,

	BadExample: "```mermaid\n\n```",
	Fix:        "Fill in the diagram or remove the block.",
}

func checkEmptyBlock(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, b := range Extract(ctx.Document.Lines, ctx.Conventions.DiagramTag) {
		if b.Terminated && b.Empty() {
			diagnostics = append(diagnostics, report(ctx, "DG01", lint.SeverityWarning, b, b.Start,
				fmt.Sprintf("Mermaid diagram %d is empty", b.Index)))
		}
	}
	return diagnostics
}
