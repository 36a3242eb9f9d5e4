package docsync

import (
	"path"
	"sort"
	"strings"

	"github.com/leapstack-labs/docguard/internal/registry"
	"github.com/leapstack-labs/docguard/internal/vcs"
)

// DefaultSourceExtensions returns the extensions whose changes affect module docs.
func DefaultSourceExtensions() []string {
	return []string{".rs", ".py", ".ts", ".js", ".svelte", ".proto", ".md"}
}

// DefaultRootMarkers returns the path substrings whose changes affect the root doc.
func DefaultRootMarkers(docFileName string) []string {
	if docFileName == "" {
		docFileName = registry.DefaultDocFileName
	}
	return []string{
		docFileName,
		"proto/",
		"build/",
		"Cargo.toml",
		"package.json",
		"pyproject.toml",
		"requirements.txt",
		"ninja",
		"workspace",
	}
}

// Changes groups changed paths by the documentation they affect.
type Changes struct {
	Root         []string            `json:"root"`
	Modules      map[string][]string `json:"modules"`
	NewFiles     []string            `json:"new_files"`
	DeletedFiles []string            `json:"deleted_files"`
	MovedFiles   []string            `json:"moved_files"`
}

// NewChanges returns an empty Changes with non-nil collections.
func NewChanges() *Changes {
	return &Changes{
		Root:         []string{},
		Modules:      make(map[string][]string),
		NewFiles:     []string{},
		DeletedFiles: []string{},
		MovedFiles:   []string{},
	}
}

// NeedsUpdate reports whether the root or any module document is affected.
func (c *Changes) NeedsUpdate() bool {
	return len(c.Root) > 0 || len(c.Modules) > 0
}

// AffectedModules returns the affected module names in sorted order.
func (c *Changes) AffectedModules() []string {
	modules := make([]string, 0, len(c.Modules))
	for m := range c.Modules {
		modules = append(modules, m)
	}
	sort.Strings(modules)
	return modules
}

// Rules configures classification.
type Rules struct {
	SourceExtensions []string
	RootMarkers      []string
}

// Classifier maps changed paths to affected documentation.
type Classifier struct {
	reg     *registry.Registry
	docs    map[string]string
	exts    map[string]bool
	markers []string
}

// NewClassifier creates a classifier. docs maps module name to documentation
// path, as returned by registry.DocumentMap. Empty rules use the defaults.
func NewClassifier(reg *registry.Registry, docs map[string]string, rules Rules) *Classifier {
	exts := rules.SourceExtensions
	if len(exts) == 0 {
		exts = DefaultSourceExtensions()
	}
	markers := rules.RootMarkers
	if len(markers) == 0 {
		markers = DefaultRootMarkers(reg.DocFileName())
	}

	c := &Classifier{
		reg:     reg,
		docs:    docs,
		exts:    make(map[string]bool, len(exts)),
		markers: markers,
	}
	for _, e := range exts {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		c.exts[e] = true
	}
	return c
}

// Classify groups changes by affected documentation. A path may be recorded
// under both its module and the root, or under neither.
func (c *Classifier) Classify(changes []vcs.Change) *Changes {
	out := NewChanges()
	for _, ch := range changes {
		tracked := false

		if c.IsSource(ch.Path) {
			module := c.reg.ModuleFor(ch.Path)
			if _, ok := c.docs[module]; ok && module != registry.RootModule {
				out.Modules[module] = append(out.Modules[module], ch.Path)
				tracked = true
			}
		}

		if c.AffectsRoot(ch.Path) {
			out.Root = append(out.Root, ch.Path)
			tracked = true
		}

		if !tracked {
			continue
		}
		switch ch.Status {
		case vcs.StatusAdded:
			out.NewFiles = append(out.NewFiles, ch.Path)
		case vcs.StatusDeleted:
			out.DeletedFiles = append(out.DeletedFiles, ch.Path)
		case vcs.StatusRenamed:
			out.MovedFiles = append(out.MovedFiles, ch.OldPath+" -> "+ch.Path)
		}
	}
	return out
}

// ClassifyPaths classifies bare paths as modifications.
func (c *Classifier) ClassifyPaths(paths []string) *Changes {
	changes := make([]vcs.Change, 0, len(paths))
	for _, p := range paths {
		changes = append(changes, vcs.Change{Status: vcs.StatusModified, Path: p})
	}
	return c.Classify(changes)
}

// IsSource reports whether the path's extension is in the source set.
func (c *Classifier) IsSource(p string) bool {
	return c.exts[path.Ext(p)]
}

// AffectsRoot reports whether the path contains a root marker.
func (c *Classifier) AffectsRoot(p string) bool {
	for _, m := range c.markers {
		if m != "" && strings.Contains(p, m) {
			return true
		}
	}
	return false
}
