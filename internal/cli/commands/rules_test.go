package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/docguard/internal/cli/testutil"
	"github.com/leapstack-labs/docguard/pkg/lint"
)

func TestRulesCommand_Markdown(t *testing.T) {
	testutil.LoadTestConfig(t, t.TempDir(), "markdown")

	out, _, err := testutil.RunCommand(t, NewRulesCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "# Documentation Rules\n")
	assert.Contains(t, out, "## Diagram Rules")
	assert.Contains(t, out, "## Structure Rules")
	assert.Contains(t, out, "| DG04 | undefined-node |")
	assert.Contains(t, out, "| DS06 | module-breadcrumb |")
	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
}

func TestRulesCommand_JSON(t *testing.T) {
	testutil.LoadTestConfig(t, t.TempDir(), "json")

	out, _, err := testutil.RunCommand(t, NewRulesCommand())
	require.NoError(t, err)

	var got RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 19, got.Total)
	assert.Equal(t, 10, got.Count[lint.GroupStructure])
	assert.Equal(t, 9, got.Count[lint.GroupDiagram])
	require.Len(t, got.Rules, 19)
	assert.Equal(t, "DG00", got.Rules[0].ID)
	for _, info := range got.Rules {
		assert.True(t, info.Enabled, info.ID)
	}
}

func TestRulesCommand_Group(t *testing.T) {
	testutil.LoadTestConfig(t, t.TempDir(), "json")

	out, _, err := testutil.RunCommand(t, NewRulesCommand(), "--group", "diagram")
	require.NoError(t, err)

	var got RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 9, got.Total)
	assert.Equal(t, map[string]int{lint.GroupDiagram: 9}, got.Count)

	_, _, err = testutil.RunCommand(t, NewRulesCommand(), "--group", "sql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown rule group "sql"`)
}

func TestRulesCommand_Config(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFiles(t, root, map[string]string{
		".docguard.yaml": "lint:\n  disabled: [DS09]\n  severity:\n    DG03: error\n",
	})
	testutil.LoadTestConfig(t, root, "json")

	out, _, err := testutil.RunCommand(t, NewRulesCommand())
	require.NoError(t, err)

	var got RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	byID := make(map[string]lint.RuleInfo, len(got.Rules))
	for _, info := range got.Rules {
		byID[info.ID] = info
	}
	assert.False(t, byID["DS09"].Enabled)
	assert.Equal(t, "warning", byID["DG03"].DefaultSeverity)
	assert.Equal(t, "error", byID["DG03"].Severity)
}

func TestRulesCommand_Show(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		testutil.LoadTestConfig(t, t.TempDir(), "markdown")

		out, _, err := testutil.RunCommand(t, NewRulesCommand(), "dg04")
		require.NoError(t, err)
		assert.Contains(t, out, "# DG04 - undefined-node\n")
		assert.Contains(t, out, "**Group:** diagram")
		testutil.AssertValidMarkdown(t, out)
	})

	t.Run("json", func(t *testing.T) {
		testutil.LoadTestConfig(t, t.TempDir(), "json")

		out, _, err := testutil.RunCommand(t, NewRulesCommand(), "DS01")
		require.NoError(t, err)

		var info lint.RuleInfo
		require.NoError(t, json.Unmarshal([]byte(out), &info))
		assert.Equal(t, "root-sections", info.Name)
		assert.Equal(t, "root", info.Scope)
		assert.Equal(t, "docs/rules/structure.md#ds01", info.DocURL)
	})

	t.Run("not found", func(t *testing.T) {
		testutil.LoadTestConfig(t, t.TempDir(), "markdown")

		_, _, err := testutil.RunCommand(t, NewRulesCommand(), "XX99")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `rule "XX99" not found`)
	})
}
