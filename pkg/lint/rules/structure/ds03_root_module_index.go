package structure

import (
	"strings"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(RootModuleIndex)
}

// RootModuleIndex requires the module index table in the root document.
var RootModuleIndex = lint.RuleDef{
	ID:          "DS03",
	Name:        "root-module-index",
	Group:       lint.GroupStructure,
	Description: "Root document must contain the module index table.",
	Severity:    lint.SeverityError,
	Scope:       lint.ScopeRoot,
	Check:       checkRootModuleIndex,

	GoodExample: `| 模块路径 | 语言/技术栈 | 职责 |
|---|---|---|
| rslib | Rust | Core logic |`,

	Fix: "Add a table whose header row contains every configured column label.",
}

func checkRootModuleIndex(ctx *lint.Context) []lint.Diagnostic {
	for _, label := range ctx.Conventions.IndexTableLabels {
		if !strings.Contains(ctx.Document.Content, label) {
			return []lint.Diagnostic{ctx.Report("DS03", lint.SeverityError,
				"root document is missing the module index table")}
		}
	}
	return nil
}
