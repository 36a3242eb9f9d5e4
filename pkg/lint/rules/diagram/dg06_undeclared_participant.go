package diagram

import (
	"fmt"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(UndeclaredParticipant)
}

// UndeclaredParticipant warns about sequence messages between undeclared participants.
var UndeclaredParticipant = lint.RuleDef{
	ID:          "DG06",
	Name:        "undeclared-participant",
	Group:       lint.GroupDiagram,
	Description: "Sequence diagram messages should only involve declared participants.",
	Severity:    lint.SeverityWarning,
	Check:       checkUndeclaredParticipant,

	BadExample: "```mermaid\nsequenceDiagram\n    participant UI\n    UI->>Backend: sync\n```",

	GoodExample: "```mermaid\nsequenceDiagram\n    participant UI\n    participant Backend\n    UI->>Backend: sync\n```",

	Fix: "Declare every participant up front.",
}

func checkUndeclaredParticipant(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, b := range checkable(ctx, KindSequence) {
		s := ParseSequence(b)
		for _, m := range s.Messages {
			if !s.Declares(m.From) {
				diagnostics = append(diagnostics, report(ctx, "DG06", lint.SeverityWarning, b, m.Line,
					fmt.Sprintf("sequence diagram %d message source '%s' is not a declared participant", b.Index, m.From)))
			}
			if !s.Declares(m.To) {
				diagnostics = append(diagnostics, report(ctx, "DG06", lint.SeverityWarning, b, m.Line,
					fmt.Sprintf("sequence diagram %d message target '%s' is not a declared participant", b.Index, m.To)))
			}
		}
	}
	return diagnostics
}
