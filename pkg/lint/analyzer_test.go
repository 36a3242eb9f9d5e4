package lint_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/docguard/pkg/lint"
)

// registerTestRules replaces the global registry with a small fixed rule set.
func registerTestRules(t *testing.T) {
	t.Helper()
	lint.Clear()
	t.Cleanup(lint.Clear)

	lint.Register(lint.RuleDef{
		ID:        "TS00",
		Name:      "read-error",
		Group:     "test",
		Severity:  lint.SeverityError,
		ReadError: true,
	})
	lint.Register(lint.RuleDef{
		ID:       "TS01",
		Name:     "no-todo",
		Group:    "test",
		Severity: lint.SeverityError,
		Check: func(ctx *lint.Context) []lint.Diagnostic {
			var out []lint.Diagnostic
			for i, line := range ctx.Document.Lines {
				if strings.Contains(line, "TODO") {
					d := ctx.Report("TS01", lint.SeverityError, "todo found")
					d.Line = i + 1
					d.Block = 2
					out = append(out, d)
				}
			}
			return out
		},
	})
	lint.Register(lint.RuleDef{
		ID:       "TS02",
		Name:     "root-only",
		Group:    "test",
		Severity: lint.SeverityWarning,
		Scope:    lint.ScopeRoot,
		Check: func(ctx *lint.Context) []lint.Diagnostic {
			d := ctx.Report("TS02", lint.SeverityWarning, "root seen")
			d.Block = 1
			return []lint.Diagnostic{d}
		},
	})
	lint.Register(lint.RuleDef{
		ID:       "XX01",
		Name:     "other-group",
		Group:    "other",
		Severity: lint.SeverityError,
		Check: func(ctx *lint.Context) []lint.Diagnostic {
			return []lint.Diagnostic{ctx.Report("XX01", lint.SeverityError, "never in test group")}
		},
	})
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0600))
	return p
}

func TestAnalyzer_Check(t *testing.T) {
	registerTestRules(t)
	dir := t.TempDir()
	rootDoc := writeDoc(t, dir, "root.md", "# Root\nTODO\n")
	moduleDoc := writeDoc(t, dir, "module.md", "# Module\n")

	analyzer := lint.NewAnalyzer(nil, lint.DefaultConventions())
	result := analyzer.Check([]lint.Input{
		{Module: "root", Path: rootDoc, Root: true},
		{Module: "rslib", Path: moduleDoc},
	}, "test")

	assert.Equal(t, 2, result.Documents)
	require.Len(t, result.Diagnostics, 2)

	// Block order puts the root-only diagnostic first.
	assert.Equal(t, "TS02", result.Diagnostics[0].RuleID)
	assert.Equal(t, "TS01", result.Diagnostics[1].RuleID)
	assert.Equal(t, 2, result.Diagnostics[1].Line)
	assert.Equal(t, "root: todo found", result.Diagnostics[1].String())

	assert.True(t, result.HasErrors())
	assert.Len(t, result.Errors(), 1)
	assert.Len(t, result.Warnings(), 1)
}

func TestAnalyzer_ReadError(t *testing.T) {
	registerTestRules(t)
	dir := t.TempDir()
	good := writeDoc(t, dir, "good.md", "TODO\n")

	analyzer := lint.NewAnalyzer(lint.NewConfig(), lint.DefaultConventions())
	result := analyzer.Check([]lint.Input{
		{Module: "qt", Path: filepath.Join(dir, "missing.md")},
		{Module: "ts", Path: good},
	}, "test")

	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, "TS00", result.Diagnostics[0].RuleID)
	assert.Equal(t, "qt", result.Diagnostics[0].Module)
	assert.Contains(t, result.Diagnostics[0].Message, "cannot read file")
	assert.Equal(t, "TS01", result.Diagnostics[1].RuleID)
	assert.Equal(t, 1, result.Documents)
}

func TestAnalyzer_Config(t *testing.T) {
	registerTestRules(t)
	dir := t.TempDir()
	doc := writeDoc(t, dir, "root.md", "TODO\n")
	inputs := []lint.Input{{Module: "root", Path: doc, Root: true}}

	t.Run("disabled rule", func(t *testing.T) {
		cfg := lint.NewConfig().Disable("TS01")
		result := lint.NewAnalyzer(cfg, lint.DefaultConventions()).Check(inputs, "test")
		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, "TS02", result.Diagnostics[0].RuleID)
	})

	t.Run("severity override", func(t *testing.T) {
		cfg := lint.NewConfig().SetSeverity("TS01", lint.SeverityHint)
		result := lint.NewAnalyzer(cfg, lint.DefaultConventions()).Check(inputs, "test")
		assert.False(t, result.HasErrors())
		assert.Len(t, result.Warnings(), 2)
	})

	t.Run("disabled read error", func(t *testing.T) {
		cfg := lint.NewConfig().Disable("TS00")
		result := lint.NewAnalyzer(cfg, lint.DefaultConventions()).Check(
			[]lint.Input{{Module: "qt", Path: filepath.Join(dir, "missing.md")}}, "test")
		assert.Empty(t, result.Diagnostics)
	})
}

func TestConfigFrom(t *testing.T) {
	cfg, err := lint.ConfigFrom([]string{"DS09"}, map[string]string{"DG03": "info"})
	require.NoError(t, err)
	assert.True(t, cfg.IsDisabled("DS09"))
	assert.Equal(t, lint.SeverityInfo, cfg.GetSeverity("DG03", lint.SeverityWarning))
	assert.Equal(t, lint.SeverityError, cfg.GetSeverity("DG02", lint.SeverityError))

	_, err = lint.ConfigFrom(nil, map[string]string{"DG03": "loud"})
	assert.Error(t, err)
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    lint.Severity
		wantErr bool
	}{
		{in: "error", want: lint.SeverityError},
		{in: "Warning", want: lint.SeverityWarning},
		{in: "warn", want: lint.SeverityWarning},
		{in: " info ", want: lint.SeverityInfo},
		{in: "hint", want: lint.SeverityHint},
		{in: "fatal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := lint.ParseSeverity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry(t *testing.T) {
	registerTestRules(t)

	assert.Equal(t, 4, lint.Count())
	assert.Equal(t, []string{"other", "test"}, lint.Groups())

	rules := lint.GetByGroup("test")
	require.Len(t, rules, 3)
	assert.Equal(t, "TS00", rules[0].ID)
	assert.Equal(t, "TS02", rules[2].ID)

	rule, ok := lint.GetByID("TS02")
	require.True(t, ok)
	assert.Equal(t, lint.ScopeRoot, rule.Scope)

	info := lint.Info(rule, lint.NewConfig().Disable("TS02"))
	assert.False(t, info.Enabled)
	assert.Equal(t, "root", info.Scope)
	assert.Equal(t, "docs/rules/test.md#ts02", info.DocURL)

	_, ok = lint.GetByID("NOPE")
	assert.False(t, ok)
}

func TestDocument_Lines(t *testing.T) {
	doc := lint.NewDocument("root", "CLAUDE.md", true, []byte("a\r\nb\n\nc"))
	assert.Equal(t, []string{"a", "b", "", "c"}, doc.Lines)
	assert.Equal(t, "```mermaid", lint.DefaultConventions().DiagramFence())
}
