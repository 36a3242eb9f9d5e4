package structure

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(RootSections)
}

// RootSections requires every configured section heading in the root document.
var RootSections = lint.RuleDef{
	ID:          "DS01",
	Name:        "root-sections",
	Group:       lint.GroupStructure,
	Description: "Root document must contain each required section heading.",
	Severity:    lint.SeverityError,
	Scope:       lint.ScopeRoot,
	Check:       checkRootSections,

	Rationale: `The root document is the entry point for the whole project. Readers and tooling
rely on a fixed set of sections being present with their exact wording.`,

	BadExample: `# Project

## 项目愿景
...`,

	GoodExample: `# Project

## 项目愿景
## 架构概览
## 模块结构图
## 模块索引
## 运行和开发
## 更新日志`,

	Fix: "Add the missing section heading with the exact required text.",
}

func checkRootSections(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, section := range ctx.Conventions.RequiredSections {
		if !strings.Contains(ctx.Document.Content, section) {
			diagnostics = append(diagnostics, ctx.Report("DS01", lint.SeverityError,
				fmt.Sprintf("root document is missing required section: %s", section)))
		}
	}
	return diagnostics
}
