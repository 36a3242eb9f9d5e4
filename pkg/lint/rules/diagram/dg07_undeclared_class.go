package diagram

import (
	"fmt"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(UndeclaredClass)
}

// UndeclaredClass warns about class relationships between undeclared classes.
var UndeclaredClass = lint.RuleDef{
	ID:          "DG07",
	Name:        "undeclared-class",
	Group:       lint.GroupDiagram,
	Description: "Class diagram relationships should only involve declared classes.",
	Severity:    lint.SeverityWarning,
	Check:       checkUndeclaredClass,

	BadExample:  "```mermaid\nclassDiagram\n    class Collection\n    Collection --> Deck\n```",
	GoodExample: "```mermaid\nclassDiagram\n    class Collection\n    class Deck\n    Collection --> Deck\n```",
	Fix:         "Declare each class with a class line.",
}

func checkUndeclaredClass(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, b := range checkable(ctx, KindClass) {
		c := ParseClassDiagram(b)
		for _, r := range c.Relations {
			if !c.Classes[r.From] {
				diagnostics = append(diagnostics, report(ctx, "DG07", lint.SeverityWarning, b, r.Line,
					fmt.Sprintf("class diagram %d relationship source class '%s' is not defined", b.Index, r.From)))
			}
			if !c.Classes[r.To] {
				diagnostics = append(diagnostics, report(ctx, "DG07", lint.SeverityWarning, b, r.Line,
					fmt.Sprintf("class diagram %d relationship target class '%s' is not defined", b.Index, r.To)))
			}
		}
	}
	return diagnostics
}
