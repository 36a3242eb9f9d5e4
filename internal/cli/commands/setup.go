package commands

import (
	"errors"
	"log/slog"
	"os"

	"github.com/leapstack-labs/docguard/internal/cli/config"
	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/leapstack-labs/docguard/internal/registry"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Registry *registry.Registry
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	mode, err := output.ParseMode(cfg.Format)
	if err != nil {
		mode = output.ModeAuto
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
		Registry: cfg.Registry(),
	}
}

// RequireRepository reports the environment error for a root without .git.
func (c *CommandContext) RequireRepository(root string) error {
	err := registry.EnsureRepository(root)
	if err == nil {
		return nil
	}
	if errors.Is(err, registry.ErrNotRepository) {
		c.Renderer.Error(registry.ErrNotRepository.Error())
		return silentExit(1, err)
	}
	return err
}

// getConfig returns the current configuration, or the defaults rooted at the
// working directory when the command runs without the root command.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	cfg := config.Default()
	if cwd, err := os.Getwd(); err == nil {
		cfg.Root = cwd
	} else {
		cfg.Root = "."
	}
	return cfg
}
