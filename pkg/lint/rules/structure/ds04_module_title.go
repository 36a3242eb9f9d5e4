package structure

import (
	"strings"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(ModuleTitle)
}

// ModuleTitle requires a top-level heading in module documents.
var ModuleTitle = lint.RuleDef{
	ID:          "DS04",
	Name:        "module-title",
	Group:       lint.GroupStructure,
	Description: "Module document must contain a top-level title heading.",
	Severity:    lint.SeverityError,
	Scope:       lint.ScopeModule,
	Check:       checkModuleTitle,

	BadExample:  "## Overview",
	GoodExample: "# rslib\n\n## Overview",
	Fix:         "Start the document with a '# ' title line.",
}

func checkModuleTitle(ctx *lint.Context) []lint.Diagnostic {
	if hasLinePrefix(ctx.Document.Lines, "# ") {
		return nil
	}
	return []lint.Diagnostic{ctx.Report("DS04", lint.SeverityError, "missing document title")}
}

func hasLinePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
