package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/docguard/internal/testutil"
)

func TestParseNameStatus(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []Change
	}{
		{
			name:   "empty",
			output: "",
			want:   nil,
		},
		{
			name:   "statuses",
			output: "M\x00rslib/src/lib.rs\x00A\x00ts/new.ts\x00\nD\x00pylib/old.py\x00",
			want: []Change{
				{Status: StatusModified, Path: "rslib/src/lib.rs"},
				{Status: StatusAdded, Path: "ts/new.ts"},
				{Status: StatusDeleted, Path: "pylib/old.py"},
			},
		},
		{
			name:   "rename with score",
			output: "R087\x00qt/old.py\x00qt/launcher/new.py\x00",
			want: []Change{
				{Status: StatusRenamed, Path: "qt/launcher/new.py", OldPath: "qt/old.py"},
			},
		},
		{
			name:   "dedupe keeps first appearance",
			output: "M\x00rslib/a.rs\x00\n\nA\x00rslib/a.rs\x00M\x00ts/b.ts\x00",
			want: []Change{
				{Status: StatusModified, Path: "rslib/a.rs"},
				{Status: StatusModified, Path: "ts/b.ts"},
			},
		},
		{
			name:   "comments and bare paths",
			output: "# generated\x00Cargo.toml\x00   \x00M\x00Cargo.toml\x00",
			want: []Change{
				{Status: StatusModified, Path: "Cargo.toml"},
			},
		},
		{
			name:   "names are kept verbatim",
			output: "A\x00rslib/中文.rs\x00A\x00rslib/a b.rs\x00M\x00ts/tab\there.ts\x00A\x00M\x00",
			want: []Change{
				{Status: StatusAdded, Path: "rslib/中文.rs"},
				{Status: StatusAdded, Path: "rslib/a b.rs"},
				{Status: StatusModified, Path: "ts/tab\there.ts"},
				{Status: StatusAdded, Path: "M"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNameStatus(tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNameStatus_Truncated(t *testing.T) {
	_, err := ParseNameStatus("R100\x00qt/old.py")
	assert.ErrorContains(t, err, "truncated")
}

func TestLogArgs(t *testing.T) {
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{
		"-c", "core.quotePath=false",
		"log", "--since=2024-03-01T00:00:00Z", "--name-status", "--find-renames", "-z", "--pretty=format:",
	}, LogArgs(since))
}

func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-c", "user.name=Test", "-c", "user.email=test@example.com"}, args...)...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
}

func TestGitClient_ChangesSince(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	git(t, dir, "init", "-q")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rslib"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rslib", "lib.rs"), []byte("fn main() {}\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[workspace]\n"), 0600))
	git(t, dir, "add", ".")
	git(t, dir, "commit", "-q", "-m", "initial")

	client := NewGitClient(dir, 10*time.Second, testutil.NewTestLogger(t))
	changes, err := client.ChangesSince(context.Background(), time.Now().Add(-24*time.Hour))
	require.NoError(t, err)

	var paths []string
	for _, c := range changes {
		assert.Equal(t, StatusAdded, c.Status)
		paths = append(paths, c.Path)
	}
	assert.ElementsMatch(t, []string{"Cargo.toml", "rslib/lib.rs"}, paths)
}

func TestGitClient_ChangesSince_NonASCIIPaths(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	git(t, dir, "init", "-q")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rslib"), 0750))
	for _, name := range []string{"中文.rs", "a b.rs", "CLAUDE.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "rslib", name), []byte("x\n"), 0600))
	}
	git(t, dir, "add", ".")
	git(t, dir, "commit", "-q", "-m", "initial")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rslib", "中文.rs"), []byte("y\n"), 0600))
	git(t, dir, "commit", "-q", "-a", "-m", "edit")

	client := NewGitClient(dir, 10*time.Second, testutil.NewTestLogger(t))
	changes, err := client.ChangesSince(context.Background(), time.Now().Add(-24*time.Hour))
	require.NoError(t, err)

	byPath := make(map[string]Status, len(changes))
	for _, c := range changes {
		byPath[c.Path] = c.Status
	}
	assert.Equal(t, map[string]Status{
		"rslib/中文.rs":    StatusModified, // most recent commit wins
		"rslib/a b.rs":    StatusAdded,
		"rslib/CLAUDE.md": StatusAdded,
	}, byPath)
}

func TestGitClient_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())
	client := NewGitClient(t.TempDir(), 0, nil)
	_, err := client.ChangesSince(context.Background(), time.Now())
	assert.Error(t, err)
}
