package commands

import (
	"path/filepath"

	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/leapstack-labs/docguard/pkg/lint"
	_ "github.com/leapstack-labs/docguard/pkg/lint/rules" // register all rules
)

// reportText holds the summary lines of one check.
type reportText struct {
	passed   string
	errors   string
	warnings string
}

var structureText = reportText{
	passed:   "All documentation structure checks passed",
	errors:   "Found the following documentation structure issues:",
	warnings: "Found the following documentation structure warnings:",
}

var diagramText = reportText{
	passed:   "All Mermaid diagram syntax checks passed",
	errors:   "Found the following Mermaid syntax errors:",
	warnings: "Found the following Mermaid syntax warnings:",
}

// CheckReport is the result of one check group, as printed in JSON mode.
type CheckReport struct {
	Check     string            `json:"check"`
	Passed    bool              `json:"passed"`
	Documents int               `json:"documents"`
	Errors    []lint.Diagnostic `json:"errors"`
	Warnings  []lint.Diagnostic `json:"warnings"`
}

// runGroup discovers the documentation under root and runs one rule group.
func runGroup(c *CommandContext, root, group string) (CheckReport, error) {
	docs, err := c.Registry.Discover(root)
	if err != nil {
		return CheckReport{}, err
	}
	rules, err := c.Cfg.LintRules()
	if err != nil {
		return CheckReport{}, err
	}

	inputs := make([]lint.Input, 0, len(docs))
	for _, d := range docs {
		inputs = append(inputs, lint.Input{Module: d.Module, Path: d.Path, Root: d.IsRoot()})
	}
	c.Logger.Debug("running checks", "group", group, "documents", len(inputs))

	result := lint.NewAnalyzer(rules, c.Cfg.Conventions()).Check(inputs, group)
	return newCheckReport(group, result), nil
}

func newCheckReport(group string, result *lint.Result) CheckReport {
	rep := CheckReport{
		Check:     group,
		Passed:    !result.HasErrors(),
		Documents: result.Documents,
		Errors:    result.Errors(),
		Warnings:  result.Warnings(),
	}
	if rep.Errors == nil {
		rep.Errors = []lint.Diagnostic{}
	}
	if rep.Warnings == nil {
		rep.Warnings = []lint.Diagnostic{}
	}
	return rep
}

// renderCheck prints the summary line and the numbered error and warning lists.
func renderCheck(r *output.Renderer, text reportText, rep CheckReport) {
	if len(rep.Errors) == 0 && len(rep.Warnings) == 0 {
		r.Success(text.passed)
		return
	}
	if len(rep.Errors) > 0 {
		r.Failure(text.errors)
		r.Println()
		r.NumberedList(diagnosticLines(rep.Errors))
	}
	if len(rep.Warnings) > 0 {
		if len(rep.Errors) > 0 {
			r.Println()
		}
		r.Warning(text.warnings)
		r.Println()
		r.NumberedList(diagnosticLines(rep.Warnings))
	}
}

func diagnosticLines(diags []lint.Diagnostic) []string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = d.String()
	}
	return lines
}

// absRoot resolves an optional root argument, falling back to the configured root.
func absRoot(c *CommandContext, args []string) string {
	if len(args) == 0 || args[0] == "" {
		return c.Cfg.Root
	}
	if abs, err := filepath.Abs(args[0]); err == nil {
		return abs
	}
	return args[0]
}
