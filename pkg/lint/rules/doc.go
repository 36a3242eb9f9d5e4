// Package rules provides the documentation lint rule implementations.
//
// Rules are organized by category:
//   - structure: Rules about documentation file structure (DS00-DS09)
//   - diagram: Rules about Mermaid diagram syntax (DG00-DG08)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/docguard/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/docguard/pkg/lint/rules/diagram"
package rules
