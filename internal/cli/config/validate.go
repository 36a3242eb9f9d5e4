package config

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/leapstack-labs/docguard/pkg/lint"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Docs.FileName == "" {
		errs = append(errs, errors.New("docs.file_name is required"))
	}
	if _, err := output.ParseMode(c.Format); err != nil {
		errs = append(errs, err)
	}

	positive := []struct {
		key   string
		value int
	}{
		{"docs.max_blank_lines", c.Docs.MaxBlankLines},
		{"sync.lookback_days", c.Sync.LookbackDays},
		{"sync.root_sample_limit", c.Sync.RootSampleLimit},
		{"sync.module_sample_limit", c.Sync.ModuleSampleLimit},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.key, p.value))
		}
	}
	if c.Sync.GitTimeout <= 0 {
		errs = append(errs, fmt.Errorf("sync.git_timeout must be positive, got %s", c.Sync.GitTimeout))
	}

	// Documents are matched by their directory, so a nested entry other than
	// the launcher pair would never be discovered.
	if c.Docs.FileName != "" {
		reg := c.Registry()
		for _, m := range reg.Modules() {
			if reg.ModuleFor(reg.DocPath(m)) != m {
				errs = append(errs, fmt.Errorf("docs.modules: %q is nested; only top-level directories and %s/%s are supported",
					m, c.Docs.LauncherParent, c.Docs.LauncherName))
			}
		}
	}

	for id, sev := range c.Lint.Severity {
		if _, err := lint.ParseSeverity(sev); err != nil {
			errs = append(errs, fmt.Errorf("lint.severity.%s: %w", id, err))
		}
	}

	return errors.Join(errs...)
}
