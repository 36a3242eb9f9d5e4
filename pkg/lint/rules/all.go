package rules

// Import all rule subpackages to register them with the global registry.
import (
	// Blank imports trigger init() functions that register rules with the global registry.
	_ "github.com/leapstack-labs/docguard/pkg/lint/rules/diagram"   // registers DG* rules
	_ "github.com/leapstack-labs/docguard/pkg/lint/rules/structure" // registers DS* rules
)
