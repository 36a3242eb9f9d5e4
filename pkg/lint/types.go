package lint

import (
	"strings"
)

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Module   string   `json:"module"`
	Path     string   `json:"path,omitempty"`
	Message  string   `json:"message"`
	Line     int      `json:"line,omitempty"`  // 1-based; 0 when not tied to a line
	Block    int      `json:"block,omitempty"` // 1-based diagram block; 0 when not tied to a block
}

// String formats the diagnostic the way reports list it: "module: message".
func (d Diagnostic) String() string {
	return d.Module + ": " + d.Message
}

// Document is a documentation file loaded for analysis.
type Document struct {
	Module  string
	Path    string
	Root    bool
	Content string
	Lines   []string
}

// NewDocument builds a Document from raw file content. Lines are split on
// "\n" with a trailing "\r" removed from each line.
func NewDocument(module, path string, root bool, content []byte) *Document {
	text := string(content)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &Document{
		Module:  module,
		Path:    path,
		Root:    root,
		Content: text,
		Lines:   lines,
	}
}

// Conventions are the documentation conventions rules check against.
type Conventions struct {
	// RequiredSections are heading lines the root document must contain verbatim.
	RequiredSections []string
	// DiagramTag is the fence language tag of diagram blocks, e.g. "mermaid".
	DiagramTag string
	// IndexTableLabels are column labels the root module index table must contain.
	IndexTableLabels []string
	// Breadcrumb is the navigation substring every module document must contain.
	Breadcrumb string
	// MaxBlankLines is the longest allowed run of blank lines.
	MaxBlankLines int
}

// DefaultConventions returns the stock documentation conventions.
func DefaultConventions() Conventions {
	return Conventions{
		RequiredSections: []string{
			"## 项目愿景",
			"## 架构概览",
			"## 模块结构图",
			"## 模块索引",
			"## 运行和开发",
			"## 更新日志",
		},
		DiagramTag:       "mermaid",
		IndexTableLabels: []string{"模块路径", "语言/技术栈"},
		Breadcrumb:       "> 项目集合",
		MaxBlankLines:    3,
	}
}

// DiagramFence returns the opening fence line for diagram blocks.
func (c Conventions) DiagramFence() string {
	return "```" + c.DiagramTag
}

// Context is passed to rule check functions.
type Context struct {
	Document    *Document
	Conventions Conventions
}

// Report creates a diagnostic attributed to the context's document.
func (c *Context) Report(ruleID string, severity Severity, message string) Diagnostic {
	return Diagnostic{
		RuleID:   ruleID,
		Severity: severity,
		Module:   c.Document.Module,
		Path:     c.Document.Path,
		Message:  message,
	}
}
