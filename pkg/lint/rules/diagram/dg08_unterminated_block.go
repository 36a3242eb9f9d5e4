package diagram

import (
	"fmt"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(UnterminatedBlock)
}

// UnterminatedBlock warns about a diagram block still open at end of file.
// Such a block is not checked by any other rule.
var UnterminatedBlock = lint.RuleDef{
	ID:          "DG08",
	Name:        "unterminated-block",
	Group:       lint.GroupDiagram,
	Description: "Mermaid blocks must be closed by a bare fence.",
	Severity:    lint.SeverityWarning,
	Check:       checkUnterminatedBlock,

	BadExample: "```mermaid\ngraph TD\n    A --> B",
	Fix:        "Close the block with a line containing only ```.",
}

func checkUnterminatedBlock(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, b := range Extract(ctx.Document.Lines, ctx.Conventions.DiagramTag) {
		if !b.Terminated {
			diagnostics = append(diagnostics, report(ctx, "DG08", lint.SeverityWarning, b, b.Start,
				fmt.Sprintf("Mermaid diagram %d is not closed", b.Index)))
		}
	}
	return diagnostics
}
