package structure

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(BlankLines)
}

// BlankLines limits runs of consecutive blank lines.
var BlankLines = lint.RuleDef{
	ID:          "DS07",
	Name:        "blank-lines",
	Group:       lint.GroupStructure,
	Description: "Documents must not contain long runs of consecutive blank lines.",
	Severity:    lint.SeverityError,
	Check:       checkBlankLines,

	Fix: "Collapse the blank lines to a single separator.",
}

// checkBlankLines reports only the first offending run.
func checkBlankLines(ctx *lint.Context) []lint.Diagnostic {
	limit := ctx.Conventions.MaxBlankLines
	run := 0
	for i, line := range ctx.Document.Lines {
		if strings.TrimSpace(line) != "" {
			run = 0
			continue
		}
		run++
		if run > limit {
			d := ctx.Report("DS07", lint.SeverityError,
				fmt.Sprintf("too many consecutive blank lines (>%d)", limit))
			d.Line = i + 1
			return []lint.Diagnostic{d}
		}
	}
	return nil
}
