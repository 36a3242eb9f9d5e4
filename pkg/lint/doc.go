// Package lint provides the documentation linting framework.
//
// # Architecture
//
// The lint package is split into two layers:
//
//  1. Root package (pkg/lint/): shared types, the global rule registry, configuration and the Analyzer
//  2. Rule packages (pkg/lint/rules/...): rule implementations registered via init()
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/docguard/pkg/lint/rules"
//
// # Rule Categories
//
//   - DS (Structure): required sections, headings, blank lines and punctuation
//   - DG (Diagram): Mermaid block syntax (types, nodes, edges, participants, classes)
//
// Each group owns a read-error rule (DS00, DG00) which the Analyzer reports when
// a documentation file cannot be read.
//
// # Using the Registry
//
//	rules := lint.GetAll()
//	rule, ok := lint.GetByID("DS01")
//	diagramRules := lint.GetByGroup(lint.GroupDiagram)
//
// # Configuration
//
// Use Config to control which rules are enabled and their severity:
//
//	config := lint.NewConfig()
//	config.Disable("DS09")
//	config.SetSeverity("DG03", lint.SeverityInfo)
//
//	analyzer := lint.NewAnalyzer(config, lint.DefaultConventions())
//	result := analyzer.Check(inputs, lint.GroupStructure)
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:          "DS99",
//		Name:        "my-rule",
//		Group:       lint.GroupStructure,
//		Description: "My custom rule description",
//		Severity:    lint.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
