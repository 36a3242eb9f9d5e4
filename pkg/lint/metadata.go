package lint

import (
	"fmt"
	"strings"
)

// DefaultDocsBaseURL is where the generated rule reference lives in the repository.
const DefaultDocsBaseURL = "docs/rules"

// DocsBaseURL can be overridden for a hosted documentation site.
var DocsBaseURL = DefaultDocsBaseURL

// BuildDocURL constructs a documentation link for a rule: the group page
// with the rule ID as anchor.
func BuildDocURL(rule RuleDef) string {
	return fmt.Sprintf("%s/%s.md#%s", DocsBaseURL, rule.Group, strings.ToLower(rule.ID))
}

// SetDocsBaseURL overrides the default documentation base URL.
func SetDocsBaseURL(url string) {
	DocsBaseURL = strings.TrimSuffix(url, "/")
}

// ResetDocsBaseURL resets to the default documentation URL.
func ResetDocsBaseURL() {
	DocsBaseURL = DefaultDocsBaseURL
}

// RuleInfo provides metadata about a rule for documentation and tooling.
type RuleInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Group           string `json:"group"`
	Description     string `json:"description"`
	DefaultSeverity string `json:"default_severity"`
	Severity        string `json:"severity"`
	Scope           string `json:"scope"`
	Enabled         bool   `json:"enabled"`
	DocURL          string `json:"doc_url"`
}

// Info extracts rule metadata, applying config overrides when config is non-nil.
func Info(rule RuleDef, config *Config) RuleInfo {
	return RuleInfo{
		ID:              rule.ID,
		Name:            rule.Name,
		Group:           rule.Group,
		Description:     rule.Description,
		DefaultSeverity: rule.Severity.String(),
		Severity:        config.GetSeverity(rule.ID, rule.Severity).String(),
		Scope:           rule.Scope.String(),
		Enabled:         !config.IsDisabled(rule.ID),
		DocURL:          BuildDocURL(rule),
	}
}
