package structure

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

func init() {
	lint.Register(HeadingIncrement)
}

// HeadingIncrement flags headings that skip a level.
var HeadingIncrement = lint.RuleDef{
	ID:          "DS08",
	Name:        "heading-increment",
	Group:       lint.GroupStructure,
	Description: "Heading levels must only increase one step at a time.",
	Severity:    lint.SeverityError,
	Check:       checkHeadingIncrement,

	BadExample: `# Title
### Details`,

	GoodExample: `# Title
## Section
### Details`,

	Fix: "Insert the intermediate heading level or promote the nested heading.",
}

func checkHeadingIncrement(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	prev := 0
	for i, line := range ctx.Document.Lines {
		if !strings.HasPrefix(line, "#") {
			continue
		}
		level := len(line) - len(strings.TrimLeft(line, "#"))
		if level > prev+1 {
			d := ctx.Report("DS08", lint.SeverityError,
				fmt.Sprintf("heading level jumps from h%d to h%d", prev, level))
			d.Line = i + 1
			diagnostics = append(diagnostics, d)
		}
		prev = level
	}
	return diagnostics
}
