package structure

import (
	"strings"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(ModuleBreadcrumb)
}

// ModuleBreadcrumb requires the navigation breadcrumb in module documents.
var ModuleBreadcrumb = lint.RuleDef{
	ID:          "DS06",
	Name:        "module-breadcrumb",
	Group:       lint.GroupStructure,
	Description: "Module document must contain the navigation breadcrumb.",
	Severity:    lint.SeverityError,
	Scope:       lint.ScopeModule,
	Check:       checkModuleBreadcrumb,

	GoodExample: "> 项目集合 > rslib",
	Fix:         "Add the breadcrumb line linking back to the root document.",
}

func checkModuleBreadcrumb(ctx *lint.Context) []lint.Diagnostic {
	if strings.Contains(ctx.Document.Content, ctx.Conventions.Breadcrumb) {
		return nil
	}
	return []lint.Diagnostic{ctx.Report("DS06", lint.SeverityError, "missing navigation breadcrumb")}
}
