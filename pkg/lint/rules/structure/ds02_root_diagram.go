package structure

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(RootDiagram)
}

// RootDiagram requires a diagram block in the root document.
var RootDiagram = lint.RuleDef{
	ID:          "DS02",
	Name:        "root-diagram",
	Group:       lint.GroupStructure,
	Description: "Root document must contain a Mermaid module structure diagram.",
	Severity:    lint.SeverityError,
	Scope:       lint.ScopeRoot,
	Check:       checkRootDiagram,

	GoodExample: "## 模块结构图\n\n```mermaid\ngraph TD\n    A[\"root\"] --> B[\"rslib\"]\n```",

	Fix: "Add a fenced mermaid block describing the module structure.",
}

func checkRootDiagram(ctx *lint.Context) []lint.Diagnostic {
	if strings.Contains(ctx.Document.Content, ctx.Conventions.DiagramFence()) {
		return nil
	}
	return []lint.Diagnostic{ctx.Report("DS02", lint.SeverityError,
		fmt.Sprintf("root document is missing the %s module structure diagram", ctx.Conventions.DiagramTag))}
}
