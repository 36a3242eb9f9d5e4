package docsync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/docguard/internal/registry"
	"github.com/leapstack-labs/docguard/internal/vcs"
)

func newTestClassifier(modules ...string) *Classifier {
	docs := map[string]string{registry.RootModule: "/repo/CLAUDE.md"}
	for _, m := range modules {
		docs[m] = "/repo/" + m + "/CLAUDE.md"
	}
	return NewClassifier(registry.Default(), docs, Rules{})
}

func TestClassifier_ClassifyPaths(t *testing.T) {
	c := newTestClassifier("rslib", "proto")

	got := c.ClassifyPaths([]string{"rslib/foo.rs", "proto/sync.proto", "docs/notes.txt"})

	assert.Equal(t, []string{"rslib/foo.rs"}, got.Modules["rslib"])
	assert.Equal(t, []string{"proto/sync.proto"}, got.Modules["proto"])
	assert.Equal(t, []string{"proto/sync.proto"}, got.Root)
	for _, files := range got.Modules {
		assert.NotContains(t, files, "docs/notes.txt")
	}
	assert.NotContains(t, got.Root, "docs/notes.txt")
	assert.True(t, got.NeedsUpdate())
}

func TestClassifier_Rules(t *testing.T) {
	tests := []struct {
		name        string
		modules     []string
		path        string
		wantModule  string
		wantRoot    bool
		wantNowhere bool
	}{
		{name: "source in documented module", modules: []string{"pylib"}, path: "pylib/anki/x.py", wantModule: "pylib"},
		{name: "source in undocumented module", path: "pylib/anki/x.py", wantNowhere: true},
		{name: "launcher collapses", modules: []string{"qt", "qt/launcher"}, path: "qt/launcher/main.py", wantModule: "qt/launcher"},
		{name: "qt without launcher doc", modules: []string{"qt"}, path: "qt/launcher/main.py", wantNowhere: true},
		{name: "markdown counts as source", modules: []string{"ftl"}, path: "ftl/README.md", wantModule: "ftl"},
		{name: "doc file affects both", modules: []string{"ts"}, path: "ts/CLAUDE.md", wantModule: "ts", wantRoot: true},
		{name: "marker without source extension", path: "Cargo.toml", wantRoot: true},
		{name: "marker substring anywhere", path: "rslib/Cargo.toml", wantRoot: true},
		{name: "build directory", modules: []string{"build"}, path: "build/ninja_gen/src/lib.rs", wantModule: "build", wantRoot: true},
		{name: "extension must match exactly", modules: []string{"ts"}, path: "ts/lib/x.tsx", wantNowhere: true},
		{name: "no extension", modules: []string{"rslib"}, path: "rslib/Makefile", wantNowhere: true},
		{name: "top-level source file", path: "setup.py", wantNowhere: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestClassifier(tt.modules...).ClassifyPaths([]string{tt.path})

			if tt.wantModule != "" {
				assert.Equal(t, []string{tt.path}, got.Modules[tt.wantModule])
				assert.Len(t, got.Modules, 1)
			} else {
				assert.Empty(t, got.Modules)
			}
			if tt.wantRoot {
				assert.Equal(t, []string{tt.path}, got.Root)
			} else {
				assert.Empty(t, got.Root)
			}
			assert.Equal(t, !tt.wantNowhere, got.NeedsUpdate())
		})
	}
}

func TestClassifier_NeedsUpdateProperty(t *testing.T) {
	c := newTestClassifier("rslib", "ts")
	inputs := [][]string{
		nil,
		{"docs/a.txt"},
		{"rslib/a.rs"},
		{"package.json"},
		{"ts/a.ts", "pyproject.toml", "other/x.go"},
	}

	for _, paths := range inputs {
		got := c.ClassifyPaths(paths)
		assert.Equal(t, len(got.Root) > 0 || len(got.Modules) > 0, got.NeedsUpdate(), "paths %v", paths)
	}
}

func TestClassifier_Lifecycle(t *testing.T) {
	c := newTestClassifier("rslib", "pylib")

	got := c.Classify([]vcs.Change{
		{Status: vcs.StatusAdded, Path: "rslib/new.rs"},
		{Status: vcs.StatusDeleted, Path: "pylib/old.py"},
		{Status: vcs.StatusRenamed, Path: "rslib/b.rs", OldPath: "rslib/a.rs"},
		{Status: vcs.StatusAdded, Path: "docs/untracked.txt"},
		{Status: vcs.StatusModified, Path: "rslib/c.rs"},
	})

	assert.Equal(t, []string{"rslib/new.rs"}, got.NewFiles)
	assert.Equal(t, []string{"pylib/old.py"}, got.DeletedFiles)
	assert.Equal(t, []string{"rslib/a.rs -> rslib/b.rs"}, got.MovedFiles)
	assert.Equal(t, []string{"rslib/new.rs", "rslib/b.rs", "rslib/c.rs"}, got.Modules["rslib"])
	assert.Equal(t, []string{"pylib", "rslib"}, got.AffectedModules())
}

func TestClassifier_CustomRules(t *testing.T) {
	reg := registry.New(registry.Options{Modules: []string{"api"}})
	docs := map[string]string{"api": "/repo/api/CLAUDE.md"}
	c := NewClassifier(reg, docs, Rules{
		SourceExtensions: []string{"go", ".sql"},
		RootMarkers:      []string{"go.mod"},
	})

	got := c.ClassifyPaths([]string{"api/server.go", "api/schema.sql", "api/x.rs", "go.mod"})
	assert.Equal(t, []string{"api/server.go", "api/schema.sql"}, got.Modules["api"])
	assert.Equal(t, []string{"go.mod"}, got.Root)
}

func TestNewChanges_EmptyCollections(t *testing.T) {
	ch := NewChanges()
	assert.NotNil(t, ch.Root)
	assert.NotNil(t, ch.Modules)
	assert.False(t, ch.NeedsUpdate())
	assert.Empty(t, ch.AffectedModules())
}
