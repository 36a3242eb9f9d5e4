package commands

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/leapstack-labs/docguard/internal/watch"
	"github.com/leapstack-labs/docguard/pkg/lint"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Watch    bool
	Debounce time.Duration
}

// CheckOutput is the JSON output of the check command.
type CheckOutput struct {
	Structure CheckReport `json:"structure"`
	Diagrams  CheckReport `json:"diagrams"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the structure and diagram checks",
		Long: `Run check-structure and check-diagrams in one pass.

With --watch the checks run again whenever a documentation file changes,
until interrupted.`,
		Example: `  # Run all checks once
  docguard check

  # Re-run on every documentation edit
  docguard check --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run the checks when documentation changes")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-running in watch mode")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	c := NewCommandContext(cmd)
	root := c.Cfg.Root
	if err := c.RequireRepository(root); err != nil {
		return err
	}

	passed, err := checkOnce(c, root)
	if err != nil {
		return err
	}
	if !opts.Watch {
		if !passed {
			return silentExit(1, errChecksFailed)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dirs := []string{root}
	for _, m := range c.Registry.Modules() {
		dirs = append(dirs, filepath.Join(root, filepath.FromSlash(m)))
	}
	docName := c.Registry.DocFileName()

	c.Renderer.Println()
	c.Renderer.Println(c.Renderer.Styles().Muted.Render("Watching for documentation changes. Press Ctrl+C to stop."))

	return watch.Run(ctx, watch.Options{
		Dirs:     dirs,
		Match:    func(name string) bool { return name == docName },
		Debounce: opts.Debounce,
		Logger:   c.Logger,
	}, func() {
		c.Renderer.Println()
		c.Renderer.Println(c.Renderer.Styles().Muted.Render("Change detected at " + time.Now().Format("15:04:05")))
		if _, err := checkOnce(c, root); err != nil {
			c.Logger.Warn("check failed", "error", err)
		}
	})
}

// checkOnce runs both groups and renders them. It reports whether both passed.
func checkOnce(c *CommandContext, root string) (bool, error) {
	// The groups share no state; each discovers and reads the documents itself.
	var structure, diagrams CheckReport
	var g errgroup.Group
	g.Go(func() (err error) {
		structure, err = runGroup(c, root, lint.GroupStructure)
		return err
	})
	g.Go(func() (err error) {
		diagrams, err = runGroup(c, root, lint.GroupDiagram)
		return err
	})
	if err := g.Wait(); err != nil {
		return false, err
	}

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(CheckOutput{Structure: structure, Diagrams: diagrams}); err != nil {
			return false, err
		}
	} else {
		r.Header(2, "Structure")
		renderCheck(r, structureText, structure)
		r.Println()
		r.Header(2, "Diagrams")
		renderCheck(r, diagramText, diagrams)
	}
	return structure.Passed && diagrams.Passed, nil
}
