package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/docguard/internal/cli/output"
	"github.com/leapstack-labs/docguard/internal/registry"
	"github.com/spf13/cobra"
)

// ModuleStatus reports whether a registered module has documentation.
type ModuleStatus struct {
	Module     string `json:"module"`
	Document   string `json:"document"`
	Documented bool   `json:"documented"`
}

// NewModulesCommand creates the modules command.
func NewModulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List registered modules and their documentation",
		Long: `List the repository root and every registered module directory with the
path of its documentation file and whether that file exists.

Only documents listed here are checked by check-structure and
check-diagrams, and only these modules are tracked by sync.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModules(cmd)
		},
	}
}

func moduleStatuses(reg *registry.Registry, docs []registry.Document) []ModuleStatus {
	found := registry.DocumentMap(docs)
	modules := append([]string{registry.RootModule}, reg.Modules()...)

	out := make([]ModuleStatus, 0, len(modules))
	for _, m := range modules {
		_, ok := found[m]
		out = append(out, ModuleStatus{Module: m, Document: reg.DocPath(m), Documented: ok})
	}
	return out
}

func runModules(cmd *cobra.Command) error {
	c := NewCommandContext(cmd)
	r := c.Renderer
	root := c.Cfg.Root
	if err := c.RequireRepository(root); err != nil {
		return err
	}

	docs, err := c.Registry.Discover(root)
	if err != nil {
		return err
	}
	statuses := moduleStatuses(c.Registry, docs)

	mode := r.EffectiveMode()
	if mode == output.ModeJSON {
		return r.JSON(statuses)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Module", "Document", "Status"})
	missing := 0
	for _, s := range statuses {
		status := "documented"
		if !s.Documented {
			status = "missing"
			missing++
		}
		t.AppendRow(table.Row{s.Module, s.Document, status})
	}

	if mode == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Modules"))
		r.Println()
		r.Println(t.RenderMarkdown())
	} else {
		t.SetStyle(table.StyleLight)
		r.Header(1, "Modules")
		r.Println(t.Render())
	}
	r.Println()
	r.Printf("%d of %d modules documented\n", len(statuses)-missing, len(statuses))
	return nil
}
