package docsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leapstack-labs/docguard/internal/registry"
	"github.com/leapstack-labs/docguard/internal/vcs"
)

// Detector runs the change-impact analysis for a repository.
type Detector struct {
	root     string
	registry *registry.Registry
	client   vcs.Client
	rules    Rules
	logger   *slog.Logger
}

// Options configures a Detector.
type Options struct {
	Registry *registry.Registry
	Client   vcs.Client
	Rules    Rules
	Logger   *slog.Logger
}

// Report is the outcome of a detection run.
type Report struct {
	Since     time.Time
	Documents []registry.Document
	Paths     int // distinct paths reported by version control
	Changes   *Changes
}

// NewDetector creates a detector for the repository at root. A nil client
// queries git in root.
func NewDetector(root string, opts Options) *Detector {
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Client == nil {
		opts.Client = vcs.NewGitClient(root, vcs.DefaultTimeout, opts.Logger)
	}
	return &Detector{
		root:     root,
		registry: opts.Registry,
		client:   opts.Client,
		rules:    opts.Rules,
		logger:   opts.Logger,
	}
}

// Detect discovers documentation, lists changes since the baseline and
// classifies them. A version control failure is returned as an error.
func (d *Detector) Detect(ctx context.Context, since time.Time) (*Report, error) {
	docs, err := d.registry.Discover(d.root)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("documentation discovered", "count", len(docs))

	changes, err := d.client.ChangesSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list changes since %s: %w", since.Format(time.RFC3339), err)
	}

	classifier := NewClassifier(d.registry, registry.DocumentMap(docs), d.rules)
	result := classifier.Classify(changes)

	d.logger.Debug("changes classified",
		"paths", len(changes),
		"root", len(result.Root),
		"modules", len(result.Modules))

	return &Report{
		Since:     since,
		Documents: docs,
		Paths:     len(changes),
		Changes:   result,
	}, nil
}
