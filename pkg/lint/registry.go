package lint

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]RuleDef),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// GetAll returns all registered rules sorted by ID.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sortRules(rules)
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetByGroup returns all rules in a specific group sorted by ID.
func GetByGroup(group string) []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []RuleDef
	for _, rule := range globalRegistry.rules {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// Groups returns the distinct rule groups in sorted order.
func Groups() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	seen := make(map[string]bool)
	var groups []string
	for _, rule := range globalRegistry.rules {
		if !seen[rule.Group] {
			seen[rule.Group] = true
			groups = append(groups, rule.Group)
		}
	}
	sort.Strings(groups)
	return groups
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}

func sortRules(rules []RuleDef) {
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})
}
