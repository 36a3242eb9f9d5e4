// Package config provides configuration management for the docguard CLI.
//
// Values are layered with koanf: built-in defaults, then .docguard.yaml in
// the repository root, then DOCGUARD_* environment variables, then flags
// that were set explicitly on the command line.
package config

import (
	"time"

	"github.com/leapstack-labs/docguard/internal/docsync"
	"github.com/leapstack-labs/docguard/internal/registry"
	"github.com/leapstack-labs/docguard/pkg/lint"
)

// Config holds all CLI configuration options.
type Config struct {
	Root    string     `koanf:"root" yaml:"root" json:"root"`
	Verbose bool       `koanf:"verbose" yaml:"verbose" json:"verbose"`
	Format  string     `koanf:"format" yaml:"format" json:"format"`
	Docs    DocsConfig `koanf:"docs" yaml:"docs" json:"docs"`
	Lint    LintConfig `koanf:"lint" yaml:"lint" json:"lint"`
	Sync    SyncConfig `koanf:"sync" yaml:"sync" json:"sync"`
}

// DocsConfig describes where documentation lives and what it must look like.
type DocsConfig struct {
	FileName         string   `koanf:"file_name" yaml:"file_name" json:"file_name"`
	// Modules are top-level directories; the only nested module allowed is
	// LauncherParent/LauncherName.
	Modules          []string `koanf:"modules" yaml:"modules" json:"modules"`
	LauncherParent   string   `koanf:"launcher_parent" yaml:"launcher_parent" json:"launcher_parent"`
	LauncherName     string   `koanf:"launcher_name" yaml:"launcher_name" json:"launcher_name"`
	RequiredSections []string `koanf:"required_sections" yaml:"required_sections" json:"required_sections"`
	DiagramTag       string   `koanf:"diagram_tag" yaml:"diagram_tag" json:"diagram_tag"`
	IndexTableLabels []string `koanf:"index_table_labels" yaml:"index_table_labels" json:"index_table_labels"`
	Breadcrumb       string   `koanf:"breadcrumb" yaml:"breadcrumb" json:"breadcrumb"`
	MaxBlankLines    int      `koanf:"max_blank_lines" yaml:"max_blank_lines" json:"max_blank_lines"`
}

// LintConfig disables rules or overrides their severity.
type LintConfig struct {
	Disabled []string          `koanf:"disabled" yaml:"disabled" json:"disabled"`
	Severity map[string]string `koanf:"severity" yaml:"severity" json:"severity"`
}

// SyncConfig configures the change-impact detector.
type SyncConfig struct {
	SentinelFile      string        `koanf:"sentinel_file" yaml:"sentinel_file" json:"sentinel_file"`
	LookbackDays      int           `koanf:"lookback_days" yaml:"lookback_days" json:"lookback_days"`
	GitTimeout        time.Duration `koanf:"git_timeout" yaml:"git_timeout" json:"git_timeout"`
	SourceExtensions  []string      `koanf:"source_extensions" yaml:"source_extensions" json:"source_extensions"`
	RootMarkers       []string      `koanf:"root_markers" yaml:"root_markers" json:"root_markers"`
	RootSampleLimit   int           `koanf:"root_sample_limit" yaml:"root_sample_limit" json:"root_sample_limit"`
	ModuleSampleLimit int           `koanf:"module_sample_limit" yaml:"module_sample_limit" json:"module_sample_limit"`
	Actions           []string      `koanf:"actions" yaml:"actions" json:"actions"`
}

// Default configuration values.
const (
	DefaultFormat     = "auto"
	DefaultGitTimeout = 30 * time.Second
)

// ConfigFileNames are looked up, in order, in the repository root.
var ConfigFileNames = []string{".docguard.yaml", ".docguard.yml"}

// Default returns the built-in configuration.
func Default() *Config {
	conv := lint.DefaultConventions()
	return &Config{
		Format: DefaultFormat,
		Docs: DocsConfig{
			FileName:         registry.DefaultDocFileName,
			Modules:          append([]string(nil), registry.DefaultModules...),
			LauncherParent:   registry.DefaultLauncherParent,
			LauncherName:     registry.DefaultLauncherName,
			RequiredSections: conv.RequiredSections,
			DiagramTag:       conv.DiagramTag,
			IndexTableLabels: conv.IndexTableLabels,
			Breadcrumb:       conv.Breadcrumb,
			MaxBlankLines:    conv.MaxBlankLines,
		},
		Lint: LintConfig{
			Disabled: []string{},
			Severity: map[string]string{},
		},
		Sync: SyncConfig{
			SentinelFile:      docsync.DefaultSentinelFile,
			LookbackDays:      docsync.DefaultLookbackDays,
			GitTimeout:        DefaultGitTimeout,
			SourceExtensions:  docsync.DefaultSourceExtensions(),
			RootMarkers:       docsync.DefaultRootMarkers(registry.DefaultDocFileName),
			RootSampleLimit:   docsync.DefaultRootSampleLimit,
			ModuleSampleLimit: docsync.DefaultModuleSampleLimit,
			Actions:           docsync.DefaultActions(),
		},
	}
}

// defaultMap is Default flattened for the confmap provider. root_markers is
// left out so it can follow a customized docs.file_name.
func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"format":                   d.Format,
		"verbose":                  false,
		"docs.file_name":           d.Docs.FileName,
		"docs.modules":             d.Docs.Modules,
		"docs.launcher_parent":     d.Docs.LauncherParent,
		"docs.launcher_name":       d.Docs.LauncherName,
		"docs.required_sections":   d.Docs.RequiredSections,
		"docs.diagram_tag":         d.Docs.DiagramTag,
		"docs.index_table_labels":  d.Docs.IndexTableLabels,
		"docs.breadcrumb":          d.Docs.Breadcrumb,
		"docs.max_blank_lines":     d.Docs.MaxBlankLines,
		"sync.sentinel_file":       d.Sync.SentinelFile,
		"sync.lookback_days":       d.Sync.LookbackDays,
		"sync.git_timeout":         d.Sync.GitTimeout.String(),
		"sync.source_extensions":   d.Sync.SourceExtensions,
		"sync.root_sample_limit":   d.Sync.RootSampleLimit,
		"sync.module_sample_limit": d.Sync.ModuleSampleLimit,
		"sync.actions":             d.Sync.Actions,
	}
}

// Registry builds the module registry described by the configuration.
func (c *Config) Registry() *registry.Registry {
	return registry.New(registry.Options{
		DocFileName:    c.Docs.FileName,
		Modules:        c.Docs.Modules,
		LauncherParent: c.Docs.LauncherParent,
		LauncherName:   c.Docs.LauncherName,
	})
}

// Conventions returns the documentation conventions the lint rules check.
func (c *Config) Conventions() lint.Conventions {
	conv := lint.DefaultConventions()
	if len(c.Docs.RequiredSections) > 0 {
		conv.RequiredSections = c.Docs.RequiredSections
	}
	if c.Docs.DiagramTag != "" {
		conv.DiagramTag = c.Docs.DiagramTag
	}
	if len(c.Docs.IndexTableLabels) > 0 {
		conv.IndexTableLabels = c.Docs.IndexTableLabels
	}
	if c.Docs.Breadcrumb != "" {
		conv.Breadcrumb = c.Docs.Breadcrumb
	}
	if c.Docs.MaxBlankLines > 0 {
		conv.MaxBlankLines = c.Docs.MaxBlankLines
	}
	return conv
}

// LintRules converts the lint section to a rule configuration.
func (c *Config) LintRules() (*lint.Config, error) {
	return lint.ConfigFrom(c.Lint.Disabled, c.Lint.Severity)
}

// ClassifyRules returns the change classification rules.
func (c *Config) ClassifyRules() docsync.Rules {
	return docsync.Rules{
		SourceExtensions: c.Sync.SourceExtensions,
		RootMarkers:      c.Sync.RootMarkers,
	}
}

// PlanOptions returns the update plan settings.
func (c *Config) PlanOptions(now time.Time) docsync.PlanOptions {
	return docsync.PlanOptions{
		DocFileName:       c.Docs.FileName,
		RootSampleLimit:   c.Sync.RootSampleLimit,
		ModuleSampleLimit: c.Sync.ModuleSampleLimit,
		Actions:           c.Sync.Actions,
		GeneratedAt:       now,
	}
}
