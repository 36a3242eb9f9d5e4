package commands

import (
	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/leapstack-labs/docguard/pkg/lint"
	"github.com/spf13/cobra"
)

// NewCheckStructureCommand creates the check-structure command.
func NewCheckStructureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-structure",
		Short: "Validate documentation structure conventions",
		Long: `Check every documentation file of the root and the registered modules
against the structure rules (DS01-DS09).

The root document must carry the required sections, a module structure
diagram and the module index table. Module documents need a title, at least
one section heading and the navigation breadcrumb. Every document is checked
for runs of blank lines, heading level jumps and mixed punctuation.

Exits 1 when any issue is found.`,
		Example: `  # Check the repository in the current directory
  docguard check-structure

  # Machine-readable output
  docguard check-structure --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckStructure(cmd)
		},
	}
}

func runCheckStructure(cmd *cobra.Command) error {
	c := NewCommandContext(cmd)
	root := c.Cfg.Root
	if err := c.RequireRepository(root); err != nil {
		return err
	}

	rep, err := runGroup(c, root, lint.GroupStructure)
	if err != nil {
		return err
	}

	if c.Renderer.EffectiveMode() == output.ModeJSON {
		if err := c.Renderer.JSON(rep); err != nil {
			return err
		}
	} else {
		renderCheck(c.Renderer, structureText, rep)
	}

	if !rep.Passed {
		return silentExit(1, errChecksFailed)
	}
	return nil
}
