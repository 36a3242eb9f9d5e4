package lint

import (
	"fmt"
	"os"
	"sort"
)

// Input identifies a documentation file to analyze.
type Input struct {
	Module string
	Path   string
	Root   bool
}

// Result holds the outcome of an analysis run.
type Result struct {
	Documents   int          // number of documents analyzed
	Diagnostics []Diagnostic // in document order, then block order
}

// Errors returns the diagnostics with error severity.
func (r *Result) Errors() []Diagnostic {
	return r.filter(func(s Severity) bool { return s == SeverityError })
}

// Warnings returns the diagnostics with any severity other than error.
func (r *Result) Warnings() []Diagnostic {
	return r.filter(func(s Severity) bool { return s != SeverityError })
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *Result) filter(keep func(Severity) bool) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if keep(d.Severity) {
			out = append(out, d)
		}
	}
	return out
}

// Analyzer runs registered lint rules against documentation files.
type Analyzer struct {
	config      *Config
	conventions Conventions
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config, conventions Conventions) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config, conventions: conventions}
}

// Check reads each input and runs the rules of group against it. An
// unreadable file produces the group's read-error diagnostic and analysis
// continues with the next input.
func (a *Analyzer) Check(inputs []Input, group string) *Result {
	rules := GetByGroup(group)
	result := &Result{}

	for _, in := range inputs {
		content, err := os.ReadFile(in.Path)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, a.readError(rules, in, err)...)
			continue
		}
		doc := NewDocument(in.Module, in.Path, in.Root, content)
		result.Diagnostics = append(result.Diagnostics, a.Analyze(doc, rules)...)
		result.Documents++
	}

	return result
}

// Analyze runs rules against a loaded document. Diagnostics are ordered by
// diagram block, then by rule ID.
func (a *Analyzer) Analyze(doc *Document, rules []RuleDef) []Diagnostic {
	if doc == nil {
		return nil
	}

	ctx := &Context{Document: doc, Conventions: a.conventions}
	var diagnostics []Diagnostic

	for _, rule := range rules {
		if rule.Check == nil || !rule.Scope.Applies(doc) {
			continue
		}
		// Skip disabled rules
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		diags := rule.Check(ctx)

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}

		diagnostics = append(diagnostics, diags...)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		return diagnostics[i].Block < diagnostics[j].Block
	})
	return diagnostics
}

func (a *Analyzer) readError(rules []RuleDef, in Input, err error) []Diagnostic {
	for _, rule := range rules {
		if !rule.ReadError || a.config.IsDisabled(rule.ID) {
			continue
		}
		return []Diagnostic{{
			RuleID:   rule.ID,
			Severity: a.config.GetSeverity(rule.ID, rule.Severity),
			Module:   in.Module,
			Path:     in.Path,
			Message:  fmt.Sprintf("cannot read file - %v", err),
		}}
	}
	return nil
}
