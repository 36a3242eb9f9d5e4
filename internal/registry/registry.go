// Package registry maps documentation files to the module directories they describe.
// It owns the fixed set of recognized modules and the path-to-module inference rule,
// so discovery and change classification agree on what a module is.
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// RootModule is the module name of the repository root document.
const RootModule = "root"

// Default registry values.
const (
	DefaultDocFileName    = "CLAUDE.md"
	DefaultLauncherParent = "qt"
	DefaultLauncherName   = "launcher"
)

// DefaultModules lists the module directories that carry their own documentation.
var DefaultModules = []string{"ts", "qt", "pylib", "rslib", "build", "ftl", "proto", "qt/launcher"}

// ErrNotRepository is returned when the checked directory is not a git working tree.
var ErrNotRepository = errors.New("not in a Git repository")

// Options configures a Registry. Zero values fall back to the defaults.
type Options struct {
	DocFileName    string
	Modules        []string
	LauncherParent string
	LauncherName   string
}

// Registry holds the recognized module directories.
type Registry struct {
	docFileName    string
	modules        map[string]struct{}
	order          []string
	launcherParent string
	launcherName   string
}

// Document is a discovered documentation file.
type Document struct {
	Module  string // "root" or a registry module such as "qt/launcher"
	Path    string // absolute path
	RelPath string // slash-separated path relative to the repository root
}

// IsRoot reports whether the document is the repository root document.
func (d Document) IsRoot() bool {
	return d.Module == RootModule
}

// New creates a registry from options.
func New(opts Options) *Registry {
	r := &Registry{
		docFileName:    opts.DocFileName,
		launcherParent: opts.LauncherParent,
		launcherName:   opts.LauncherName,
		modules:        make(map[string]struct{}),
	}
	if r.docFileName == "" {
		r.docFileName = DefaultDocFileName
	}
	if r.launcherParent == "" {
		r.launcherParent = DefaultLauncherParent
	}
	if r.launcherName == "" {
		r.launcherName = DefaultLauncherName
	}

	modules := opts.Modules
	if len(modules) == 0 {
		modules = DefaultModules
	}
	for _, m := range modules {
		m = strings.Trim(path.Clean(filepath.ToSlash(strings.TrimSpace(m))), "/")
		if m == "" || m == "." {
			continue
		}
		if _, dup := r.modules[m]; dup {
			continue
		}
		r.modules[m] = struct{}{}
		r.order = append(r.order, m)
	}
	return r
}

// Default returns a registry with the default module list.
func Default() *Registry {
	return New(Options{})
}

// DocFileName returns the documentation file name convention, e.g. "CLAUDE.md".
func (r *Registry) DocFileName() string {
	return r.docFileName
}

// Modules returns the registered module directories in registration order.
func (r *Registry) Modules() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether module is the root or a registered module.
func (r *Registry) Has(module string) bool {
	if module == RootModule {
		return true
	}
	_, ok := r.modules[module]
	return ok
}

// ModuleFor returns the module owning a repository-relative path: its first
// segment, except that <launcher parent>/<launcher name>/... collapses to the
// combined launcher module. Returns "" for an empty path.
func (r *Registry) ModuleFor(p string) string {
	p = strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(p)), "./")
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return ""
	}
	parts := strings.Split(p, "/")
	if parts[0] == r.launcherParent && len(parts) >= 2 && parts[1] == r.launcherName {
		return r.launcherParent + "/" + r.launcherName
	}
	return parts[0]
}

// DocPath returns the repository-relative documentation path for a module.
func (r *Registry) DocPath(module string) string {
	if module == RootModule {
		return r.docFileName
	}
	return module + "/" + r.docFileName
}

// Discover walks root for files named by the documentation convention and
// returns those belonging to the root or a registered module. Documents are
// sorted with the root first, then by module name.
func (r *Registry) Discover(root string) ([]Document, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	var docs []Document
	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable subtrees are skipped; only the root itself is fatal.
			if p == absRoot {
				return walkErr
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() != r.docFileName {
			return nil
		}

		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		module, ok := r.moduleForDoc(rel)
		if !ok {
			return nil
		}
		docs = append(docs, Document{Module: module, Path: p, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", absRoot, err)
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].IsRoot() != docs[j].IsRoot() {
			return docs[i].IsRoot()
		}
		return docs[i].Module < docs[j].Module
	})
	return docs, nil
}

// moduleForDoc maps a documentation file's relative path to its module. A file
// counts only when its directory is exactly the root or a registered module.
func (r *Registry) moduleForDoc(rel string) (string, bool) {
	dir := path.Dir(rel)
	if dir == "." {
		return RootModule, true
	}
	module := r.ModuleFor(rel)
	if module != dir || !r.Has(module) {
		return "", false
	}
	return module, true
}

// DocumentMap indexes documents by module name.
func DocumentMap(docs []Document) map[string]string {
	m := make(map[string]string, len(docs))
	for _, d := range docs {
		m[d.Module] = d.Path
	}
	return m
}

// EnsureRepository returns ErrNotRepository unless root contains a .git entry.
// A .git file (worktrees, submodules) counts as well as a directory.
func EnsureRepository(root string) error {
	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotRepository
		}
		return fmt.Errorf("failed to inspect %s: %w", root, err)
	}
	return nil
}
