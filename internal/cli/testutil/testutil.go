// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/docguard/internal/cli/config"
	"github.com/leapstack-labs/docguard/internal/cli/output"
)

// ValidRootDoc passes every structure and diagram rule.
const ValidRootDoc = "# Project\n\n" +
	"## 项目愿景\n\nVision.\n\n" +
	"## 架构概览\n\nOverview.\n\n" +
	"## 模块结构图\n\n```mermaid\ngraph TD\n    A[Root]\n    B[rslib]\n    A --> B\n```\n\n" +
	"## 模块索引\n\n| 模块路径 | 语言/技术栈 |\n|---|---|\n| rslib | Rust |\n\n" +
	"## 运行和开发\n\nRun it.\n\n" +
	"## 更新日志\n\n- init\n"

// ValidModuleDoc returns a module document that passes every rule.
func ValidModuleDoc(module string) string {
	return "> 项目集合 > " + module + "\n\n# " + module + "\n\n## Responsibilities\n\nCore logic.\n"
}

// SetupTestRepo creates a temporary repository root with a .git directory
// and the given files (slash-separated relative path to content).
func SetupTestRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0750); err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}
	WriteFiles(t, root, files)
	return root
}

// WriteFiles writes files below root, creating directories as needed.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(p, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// LoadTestConfig loads configuration for root as the root command would,
// with an optional --format value. The loaded config becomes current.
func LoadTestConfig(t *testing.T, root, format string) *config.Config {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("root", "", "")
	flags.String("format", "", "")
	flags.BoolP("verbose", "v", false, "")
	if err := flags.Set("root", root); err != nil {
		t.Fatalf("failed to set root: %v", err)
	}
	if format != "" {
		if err := flags.Set("format", format); err != nil {
			t.Fatalf("failed to set format: %v", err)
		}
	}

	cfg, err := config.LoadConfig("", flags)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// RunCommand executes cmd with args and returns stdout and stderr.
func RunCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	// Match the root command, which never prints usage or errors itself.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown checks for balanced code fences and non-empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	if n := strings.Count(md, "```"); n%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", n)
	}
	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
