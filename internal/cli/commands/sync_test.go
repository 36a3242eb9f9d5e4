package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/docguard/internal/cli/testutil"
	"github.com/leapstack-labs/docguard/internal/docsync"
	"github.com/leapstack-labs/docguard/internal/vcs"
)

type stubClient struct {
	changes []vcs.Change
	err     error
	called  bool
	since   time.Time
}

func (s *stubClient) ChangesSince(_ context.Context, since time.Time) ([]vcs.Change, error) {
	s.called = true
	s.since = since
	return s.changes, s.err
}

var syncNow = time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

// useStubClient swaps the git client and clock for the duration of the test.
func useStubClient(t *testing.T, client *stubClient) {
	t.Helper()
	origClient, origNow := newGitClient, now
	newGitClient = func(string, time.Duration, *slog.Logger) vcs.Client { return client }
	now = func() time.Time { return syncNow }
	t.Cleanup(func() {
		newGitClient, now = origClient, origNow
	})
}

func syncRepo(t *testing.T) string {
	t.Helper()
	return testutil.SetupTestRepo(t, map[string]string{
		"CLAUDE.md":       testutil.ValidRootDoc,
		"rslib/CLAUDE.md": testutil.ValidModuleDoc("rslib"),
		"qt/CLAUDE.md":    testutil.ValidModuleDoc("qt"),
	})
}

var staleChanges = []vcs.Change{
	{Status: vcs.StatusModified, Path: "rslib/src/lib.rs"},
	{Status: vcs.StatusAdded, Path: "qt/aqt/main.py"},
	{Status: vcs.StatusModified, Path: "Cargo.toml"},
	{Status: vcs.StatusModified, Path: "docs/notes.txt"},
}

func TestSync_Plan(t *testing.T) {
	root := syncRepo(t)
	client := &stubClient{changes: staleChanges}
	useStubClient(t, client)
	testutil.LoadTestConfig(t, root, "markdown")

	out, _, err := testutil.RunCommand(t, NewSyncCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "# Documentation Update Plan")
	assert.Contains(t, out, "Generated: 2024-03-10 15:04:05")
	assert.Contains(t, out, "## Root document needs updating (CLAUDE.md)\n- Reason: 1 changed files\n- Changes:\n  - Cargo.toml\n")
	assert.Contains(t, out, "### qt/CLAUDE.md\n- Changed files: 1\n- Main changes:\n  - qt/aqt/main.py\n")
	assert.Contains(t, out, "### rslib/CLAUDE.md\n")
	assert.Contains(t, out, "## New files (1)\n  - qt/aqt/main.py\n")
	assert.Contains(t, out, "## Suggested actions")
	assert.NotContains(t, out, "docs/notes.txt")
	assert.Less(t, strings.Index(out, "### qt/"), strings.Index(out, "### rslib/"))

	// Default baseline: start of the day seven days back.
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), client.since)
}

func TestSync_CheckOnly(t *testing.T) {
	tests := []struct {
		name     string
		changes  []vcs.Change
		want     string
		wantExit bool
	}{
		{
			name:     "stale",
			changes:  staleChanges,
			want:     docsync.StatusNeedsUpdate + "\n",
			wantExit: true,
		},
		{
			name:    "up to date",
			changes: []vcs.Change{{Status: vcs.StatusModified, Path: "docs/notes.txt"}},
			want:    docsync.StatusUpToDate + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := syncRepo(t)
			useStubClient(t, &stubClient{changes: tt.changes})
			testutil.LoadTestConfig(t, root, "markdown")

			out, _, err := testutil.RunCommand(t, NewSyncCommand(), "--check-only")
			assert.Equal(t, tt.want, out)
			if tt.wantExit {
				requireExit(t, err, 1)
				assert.ErrorIs(t, err, errNeedsUpdate)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSync_CIMode(t *testing.T) {
	root := syncRepo(t)
	useStubClient(t, &stubClient{changes: staleChanges})
	testutil.LoadTestConfig(t, root, "markdown")

	out, _, err := testutil.RunCommand(t, NewSyncCommand(), "--ci-mode", "--since", "2024-03-01")
	require.NoError(t, err)

	var summary docsync.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.True(t, summary.NeedsUpdate)
	assert.Equal(t, "2024-03-01T00:00:00Z", summary.Since)
	assert.Equal(t, "2024-03-10T15:04:05Z", summary.Timestamp)
	assert.Equal(t, []string{"Cargo.toml"}, summary.Changes.Root)
	assert.Equal(t, []string{"rslib/src/lib.rs"}, summary.Changes.Modules["rslib"])
	assert.Equal(t, []string{"qt/aqt/main.py"}, summary.Changes.NewFiles)
}

func TestSync_JSONFormat(t *testing.T) {
	root := syncRepo(t)
	useStubClient(t, &stubClient{})
	testutil.LoadTestConfig(t, root, "json")

	out, _, err := testutil.RunCommand(t, NewSyncCommand())
	require.NoError(t, err)

	var summary docsync.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.False(t, summary.NeedsUpdate)
	assert.Empty(t, summary.Changes.Modules)
}

func TestSync_InvalidSince(t *testing.T) {
	root := syncRepo(t)
	client := &stubClient{}
	useStubClient(t, client)
	testutil.LoadTestConfig(t, root, "markdown")

	out, _, err := testutil.RunCommand(t, NewSyncCommand(), "--since", "last tuesday")
	requireExit(t, err, 1)
	assert.ErrorIs(t, err, docsync.ErrInvalidSince)
	assert.Equal(t, "❌ Error: invalid date format last tuesday\n", out)
	assert.False(t, client.called)
}

func TestSync_GitFailure(t *testing.T) {
	root := syncRepo(t)
	useStubClient(t, &stubClient{err: errors.New("git log failed: exit status 128")})
	testutil.LoadTestConfig(t, root, "markdown")

	out, _, err := testutil.RunCommand(t, NewSyncCommand())
	requireExit(t, err, 1)
	assert.Contains(t, out, "❌ Error: failed to list changes since")
	assert.Contains(t, out, "exit status 128")
}

func TestSync_OutputFile(t *testing.T) {
	root := syncRepo(t)
	useStubClient(t, &stubClient{changes: staleChanges})
	testutil.LoadTestConfig(t, root, "markdown")
	planPath := filepath.Join(t.TempDir(), "plan.md")

	out, _, err := testutil.RunCommand(t, NewSyncCommand(), "--output", planPath)
	require.NoError(t, err)
	assert.Equal(t, "✅ Update plan saved to "+planPath+"\n", out)

	data, err := os.ReadFile(planPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Documentation Update Plan")
	assert.Contains(t, string(data), "### rslib/CLAUDE.md")

	// Same permissions as any world-readable file written under the current umask.
	ref := filepath.Join(t.TempDir(), "ref.md")
	require.NoError(t, os.WriteFile(ref, nil, 0o644))
	refInfo, err := os.Stat(ref)
	require.NoError(t, err)
	info, err := os.Stat(planPath)
	require.NoError(t, err)
	assert.Equal(t, refInfo.Mode().Perm(), info.Mode().Perm())
}

func TestSync_SentinelBaseline(t *testing.T) {
	root := syncRepo(t)
	testutil.WriteFiles(t, root, map[string]string{".last-doc-sync": "2024-02-20T08:30:00Z\n"})
	client := &stubClient{}
	useStubClient(t, client)
	testutil.LoadTestConfig(t, root, "markdown")

	out, _, err := testutil.RunCommand(t, NewSyncCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Result: no documentation update needed")
	assert.True(t, client.since.Equal(time.Date(2024, 2, 20, 8, 30, 0, 0, time.UTC)))
}

func TestSync_NotARepository(t *testing.T) {
	client := &stubClient{}
	useStubClient(t, client)
	testutil.LoadTestConfig(t, t.TempDir(), "markdown")

	out, _, err := testutil.RunCommand(t, NewSyncCommand())
	requireExit(t, err, 1)
	assert.Equal(t, "❌ Error: not in a Git repository\n", out)
	assert.False(t, client.called)
}
