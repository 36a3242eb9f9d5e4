package docsync

import (
	"fmt"
	"io"
	"time"

	"github.com/leapstack-labs/docguard/internal/markdown"
	"github.com/leapstack-labs/docguard/internal/registry"
)

// Default sample limits of the update plan.
const (
	DefaultRootSampleLimit   = 5
	DefaultModuleSampleLimit = 3
)

// DefaultActions returns the follow-up steps listed at the end of every plan.
func DefaultActions() []string {
	return []string{
		"Run `./tools/update-docs.sh` to update automatically",
		"Or update manually: root document with `python3 tools/update-root-doc.py`, module documents with `python3 tools/generate-module-docs.py`",
		"Verify the update: `docguard check`",
	}
}

// PlanOptions configures RenderPlan.
type PlanOptions struct {
	DocFileName       string
	RootSampleLimit   int
	ModuleSampleLimit int
	Actions           []string
	GeneratedAt       time.Time
}

func (o PlanOptions) withDefaults() PlanOptions {
	if o.DocFileName == "" {
		o.DocFileName = registry.DefaultDocFileName
	}
	if o.RootSampleLimit <= 0 {
		o.RootSampleLimit = DefaultRootSampleLimit
	}
	if o.ModuleSampleLimit <= 0 {
		o.ModuleSampleLimit = DefaultModuleSampleLimit
	}
	if o.Actions == nil {
		o.Actions = DefaultActions()
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	return o
}

// RenderPlan writes the Markdown update plan for ch.
func RenderPlan(out io.Writer, ch *Changes, opts PlanOptions) error {
	opts = opts.withDefaults()
	w := markdown.NewWriter()

	w.Header(1, "Documentation Update Plan")
	w.Paragraph("Generated: " + opts.GeneratedAt.Format("2006-01-02 15:04:05"))

	if len(ch.Root) > 0 {
		w.Line(fmt.Sprintf("## Root document needs updating (%s)", opts.DocFileName))
		w.Line(fmt.Sprintf("- Reason: %d changed files", len(ch.Root)))
		w.Line("- Changes:")
		writeSamples(w, ch.Root, opts.RootSampleLimit)
		w.Newline()
	}

	if len(ch.Modules) > 0 {
		w.Line("## Module documents needing updates")
		for _, module := range ch.AffectedModules() {
			files := ch.Modules[module]
			w.Line(fmt.Sprintf("### %s/%s", module, opts.DocFileName))
			w.Line(fmt.Sprintf("- Changed files: %d", len(files)))
			w.Line("- Main changes:")
			writeSamples(w, files, opts.ModuleSampleLimit)
			w.Newline()
		}
	}

	if !ch.NeedsUpdate() {
		w.Paragraph("✅ Result: no documentation update needed")
	}

	writeLifecycle(w, "New files", ch.NewFiles, opts.RootSampleLimit)
	writeLifecycle(w, "Deleted files", ch.DeletedFiles, opts.RootSampleLimit)
	writeLifecycle(w, "Moved files", ch.MovedFiles, opts.RootSampleLimit)

	w.Line("## Suggested actions")
	w.NumberedList(opts.Actions)

	_, err := out.Write(w.Bytes())
	return err
}

func writeSamples(w *markdown.Writer, files []string, limit int) {
	for i, f := range files {
		if i == limit {
			w.Line(fmt.Sprintf("  - ... and %d more files", len(files)-limit))
			break
		}
		w.Line("  - " + f)
	}
}

func writeLifecycle(w *markdown.Writer, title string, files []string, limit int) {
	if len(files) == 0 {
		return
	}
	w.Line(fmt.Sprintf("## %s (%d)", title, len(files)))
	writeSamples(w, files, limit)
	w.Newline()
}
