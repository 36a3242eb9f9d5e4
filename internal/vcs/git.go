// Package vcs lists repository changes by querying git.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single git invocation.
const DefaultTimeout = 30 * time.Second

// Status is the git status letter of a change.
type Status string

// Change statuses reported by git --name-status.
const (
	StatusAdded       Status = "A"
	StatusModified    Status = "M"
	StatusDeleted     Status = "D"
	StatusRenamed     Status = "R"
	StatusCopied      Status = "C"
	StatusTypeChanged Status = "T"
)

// Change is a path touched by a commit.
type Change struct {
	Status  Status
	Path    string // slash-separated, relative to the repository root
	OldPath string // previous path for renames and copies
}

// Client lists changes recorded in version control.
type Client interface {
	// ChangesSince returns every path touched by a commit since the given
	// time, deduplicated by first appearance (most recent commit first).
	ChangesSince(ctx context.Context, since time.Time) ([]Change, error)
}

// GitClient runs git in a repository working tree.
type GitClient struct {
	repoPath string
	timeout  time.Duration
	logger   *slog.Logger
}

var _ Client = (*GitClient)(nil)

// NewGitClient creates a client for the repository at repoPath. A zero
// timeout uses DefaultTimeout.
func NewGitClient(repoPath string, timeout time.Duration, logger *slog.Logger) *GitClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GitClient{repoPath: repoPath, timeout: timeout, logger: logger}
}

// LogArgs returns the git arguments listing changes since a time. Paths are
// printed verbatim and NUL-terminated, so non-ASCII bytes, tabs and newlines
// in file names survive.
func LogArgs(since time.Time) []string {
	return []string{
		"-c", "core.quotePath=false",
		"log",
		"--since=" + since.Format(time.RFC3339),
		"--name-status",
		"--find-renames",
		"-z",
		"--pretty=format:",
	}
}

// ChangesSince implements Client.
func (g *GitClient) ChangesSince(ctx context.Context, since time.Time) ([]Change, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	args := LogArgs(since)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.repoPath

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	g.logger.Debug("running git", "dir", g.repoPath, "args", args)
	start := time.Now()

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("git log timed out after %s: %w", g.timeout, ctx.Err())
		}
		return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	changes, err := ParseNameStatus(stdout.String())
	if err != nil {
		return nil, err
	}
	g.logger.Debug("git changes listed", "count", len(changes), "duration", time.Since(start))
	return changes, nil
}

// ParseNameStatus parses git log -z --name-status output: NUL-terminated
// fields, a status followed by one path, or two for renames and copies
// (R100\0old/path.rs\0new/path.rs\0). Commit boundaries show up as newlines
// before a status field. Empty fields and fields starting with '#' are
// skipped where a status is expected; any other non-status field is taken as
// a bare modified path. Paths are deduplicated by first appearance.
func ParseNameStatus(output string) ([]Change, error) {
	var result []Change
	seen := make(map[string]bool)

	fields := strings.Split(output, "\x00")
	next := func(i *int) (string, bool) {
		if *i >= len(fields) {
			return "", false
		}
		f := fields[*i]
		*i++
		return f, true
	}

	for i := 0; i < len(fields); {
		field, _ := next(&i)
		field = strings.TrimLeft(field, "\r\n")
		if strings.TrimSpace(field) == "" || strings.HasPrefix(field, "#") {
			continue
		}

		var c Change
		status, ok := parseStatus(field)
		switch {
		case !ok:
			c = Change{Status: StatusModified, Path: field}
		case status == StatusRenamed || status == StatusCopied:
			oldPath, ok1 := next(&i)
			newPath, ok2 := next(&i)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("parsing git output: truncated %s record", field)
			}
			c = Change{Status: status, Path: newPath, OldPath: filepath.ToSlash(oldPath)}
		default:
			p, ok := next(&i)
			if !ok {
				return nil, fmt.Errorf("parsing git output: truncated %s record", field)
			}
			c = Change{Status: status, Path: p}
		}

		c.Path = filepath.ToSlash(c.Path)
		if c.Path == "" || seen[c.Path] {
			continue
		}
		seen[c.Path] = true
		result = append(result, c)
	}
	return result, nil
}

// parseStatus recognizes a status field: one letter, optionally followed by a
// similarity score (R087).
func parseStatus(field string) (Status, bool) {
	if field == "" || !strings.ContainsRune("ACDMRTUXB", rune(field[0])) {
		return "", false
	}
	for _, r := range field[1:] {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return Status(field[:1]), true
}
