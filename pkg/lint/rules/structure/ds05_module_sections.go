package structure

import "github.com/leapstack-labs/docguard/pkg/lint"

func init() {
	lint.Register(ModuleSections)
}

// ModuleSections requires at least one section heading in module documents.
var ModuleSections = lint.RuleDef{
	ID:          "DS05",
	Name:        "module-sections",
	Group:       lint.GroupStructure,
	Description: "Module document must contain at least one second-level section heading.",
	Severity:    lint.SeverityError,
	Scope:       lint.ScopeModule,
	Check:       checkModuleSections,

	BadExample:  "# rslib\n\nSome text.",
	GoodExample: "# rslib\n\n## Responsibilities\n\nSome text.",
	Fix:         "Split the document into '## ' sections.",
}

func checkModuleSections(ctx *lint.Context) []lint.Diagnostic {
	if hasLinePrefix(ctx.Document.Lines, "## ") {
		return nil
	}
	return []lint.Diagnostic{ctx.Report("DS05", lint.SeverityError, "missing section headings")}
}
