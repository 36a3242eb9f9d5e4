package commands

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/leapstack-labs/docguard/internal/docsync"
	"github.com/leapstack-labs/docguard/internal/vcs"
	"github.com/spf13/cobra"
)

// SyncOptions holds options for the sync command.
type SyncOptions struct {
	CheckOnly bool   // print a status line and exit 1 when docs are stale
	CIMode    bool   // print the JSON summary
	Since     string // baseline override
	Output    string // write the plan to a file
}

// newGitClient and now are replaced in tests.
var (
	newGitClient = func(root string, timeout time.Duration, logger *slog.Logger) vcs.Client {
		return vcs.NewGitClient(root, timeout, logger)
	}
	now = time.Now
)

// NewSyncCommand creates the sync command.
func NewSyncCommand() *cobra.Command {
	opts := &SyncOptions{}
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Detect documentation made stale by recent changes",
		Long: `List the files changed in git since a baseline and map them to the
documentation they affect.

The baseline is --since when given, otherwise the timestamp stored in the
sync sentinel file (.last-doc-sync), otherwise the start of the day seven
days ago. A changed source file affects the document of its module; changes
to build files, protocol definitions or documentation affect the root
document.

By default a Markdown update plan is printed. --check-only prints a status
line and exits 1 when any document needs updating. --ci-mode prints a JSON
summary.`,
		Example: `  # Print the update plan
  docguard sync

  # Gate a CI job on up-to-date documentation
  docguard sync --check-only

  # Changes since a date, as JSON
  docguard sync --since 2024-03-01 --ci-mode

  # Save the plan
  docguard sync --output doc-update-plan.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.CheckOnly, "check-only", false, "Only report whether documentation needs updating")
	cmd.Flags().BoolVar(&opts.CIMode, "ci-mode", false, "Print a JSON summary")
	cmd.Flags().StringVar(&opts.Since, "since", "", "Baseline date or timestamp (YYYY-MM-DD or ISO 8601)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the update plan to this file")

	return cmd
}

func runSync(cmd *cobra.Command, opts *SyncOptions) error {
	c := NewCommandContext(cmd)
	r := c.Renderer
	root := c.Cfg.Root
	if err := c.RequireRepository(root); err != nil {
		return err
	}

	started := now()
	baseline, err := docsync.ResolveBaseline(docsync.BaselineOptions{
		Since:        opts.Since,
		SentinelPath: filepath.Join(root, c.Cfg.Sync.SentinelFile),
		LookbackDays: c.Cfg.Sync.LookbackDays,
		Now:          started,
		Logger:       c.Logger,
	})
	if err != nil {
		if errors.Is(err, docsync.ErrInvalidSince) {
			r.Error(fmt.Sprintf("invalid date format %s", opts.Since))
			return silentExit(1, err)
		}
		return err
	}
	c.Logger.Debug("baseline resolved", "since", baseline.Time, "source", string(baseline.Source))

	detector := docsync.NewDetector(root, docsync.Options{
		Registry: c.Registry,
		Client:   newGitClient(root, c.Cfg.Sync.GitTimeout, c.Logger),
		Rules:    c.Cfg.ClassifyRules(),
		Logger:   c.Logger,
	})
	report, err := detector.Detect(cmd.Context(), baseline.Time)
	if err != nil {
		r.Error(err.Error())
		return silentExit(1, err)
	}
	changes := report.Changes

	switch {
	case opts.CheckOnly:
		r.Println(docsync.StatusLine(changes))
		if changes.NeedsUpdate() {
			return silentExit(1, errNeedsUpdate)
		}
		return nil

	case opts.CIMode || r.Mode() == output.ModeJSON:
		return docsync.WriteSummary(r.Writer(), docsync.NewSummary(changes, baseline.Time, now()))

	case opts.Output != "":
		var buf bytes.Buffer
		if err := docsync.RenderPlan(&buf, changes, c.Cfg.PlanOptions(started)); err != nil {
			return err
		}
		//nolint:gosec // the plan is a shareable report
		if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
		r.Success("Update plan saved to " + opts.Output)
		return nil

	default:
		return docsync.RenderPlan(r.Writer(), changes, c.Cfg.PlanOptions(started))
	}
}
