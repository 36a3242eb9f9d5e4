package commands

import (
	"fmt"

	"github.com/leapstack-labs/docguard/internal/cli/config"
	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after defaults, .docguard.yaml, DOCGUARD_*
environment variables and flags have been applied.

The output is valid .docguard.yaml content and can be used as a starting
point for a project configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd)
		},
	}
}

func runConfig(cmd *cobra.Command) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(c.Cfg)
	}

	data, err := yaml.Marshal(c.Cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if file := config.GetConfigFileUsed(); file != "" {
		r.Printf("# config file: %s\n", file)
	}
	r.Printf("%s", data)
	return nil
}
