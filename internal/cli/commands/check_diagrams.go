package commands

import (
	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/leapstack-labs/docguard/pkg/lint"
	"github.com/spf13/cobra"
)

// NewCheckDiagramsCommand creates the check-diagrams command.
func NewCheckDiagramsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-diagrams [root]",
		Short: "Validate Mermaid diagram syntax in documentation",
		Long: `Extract every Mermaid block from the documentation files and run
lightweight syntax checks per diagram type (DG01-DG08).

Flowcharts are checked for undefined nodes and unbalanced subgraphs,
sequence diagrams for undeclared participants and class diagrams for
undeclared classes. Errors fail the run; warnings are reported only.`,
		Example: `  # Check the repository in the current directory
  docguard check-diagrams

  # Check another checkout
  docguard check-diagrams ../other-repo`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckDiagrams(cmd, args)
		},
	}
}

func runCheckDiagrams(cmd *cobra.Command, args []string) error {
	c := NewCommandContext(cmd)
	root := absRoot(c, args)
	if err := c.RequireRepository(root); err != nil {
		return err
	}

	rep, err := runGroup(c, root, lint.GroupDiagram)
	if err != nil {
		return err
	}

	if c.Renderer.EffectiveMode() == output.ModeJSON {
		if err := c.Renderer.JSON(rep); err != nil {
			return err
		}
	} else {
		renderCheck(c.Renderer, diagramText, rep)
	}

	if !rep.Passed {
		return silentExit(1, errChecksFailed)
	}
	return nil
}
