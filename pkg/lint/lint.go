package lint

import (
	"fmt"
	"strings"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a finding that fails the check.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSeverity converts a severity name to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "hint":
		return SeverityHint, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", s)
	}
}

// Rule groups.
const (
	GroupStructure = "structure"
	GroupDiagram   = "diagram"
)

// Scope restricts which documents a rule is run against.
type Scope int

// Rule scopes.
const (
	// ScopeAll runs the rule against every document.
	ScopeAll Scope = iota
	// ScopeRoot runs the rule against the repository root document only.
	ScopeRoot
	// ScopeModule runs the rule against module documents only.
	ScopeModule
)

// String returns the string representation of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeRoot:
		return "root"
	case ScopeModule:
		return "module"
	default:
		return "all"
	}
}

// Applies reports whether a rule with this scope runs against doc.
func (s Scope) Applies(doc *Document) bool {
	switch s {
	case ScopeRoot:
		return doc.Root
	case ScopeModule:
		return !doc.Root
	default:
		return true
	}
}

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameter.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "DS01"
	Name        string    // Human-readable name, e.g., "root-sections"
	Group       string    // Category: "structure" or "diagram"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Scope       Scope     // Documents the rule applies to
	Check       CheckFunc // The check function; nil for analyzer-emitted rules

	// ReadError marks the rule the analyzer reports when a document in the
	// rule's group cannot be read. Such rules have no Check function.
	ReadError bool

	// Documentation
	Rationale   string
	BadExample  string
	GoodExample string
	Fix         string
}

// CheckFunc analyzes a document and returns diagnostics.
type CheckFunc func(ctx *Context) []Diagnostic
