package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Extractor.Run:
// - A mixed-language tree produces the expected records, config, and docs
// - Excluded directories leak nothing into the model at any depth
// - Every record's provenance appears in the file list
// - Two runs over an unchanged tree are byte-identical, the second cached
// - Per-file failures (unreadable, oversized) skip locally, never abort
// - Cancellation returns the context error and no model
// - New rejects bad roots and bad patterns

// writeTree materializes a map of relative path -> content under a temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return root
}

const pyFixture = `import os
from collections import OrderedDict


class Foo(Bar):
    def baz(x, y) -> int:
        pass
`

const jsAppFixture = `import merge from 'lodash';
const fs = require('fs');

class App extends Base {
  render() {
    return merge({}, {});
  }
}
`

const jsUtilFixture = `import pick from 'lodash';

function pickOne(list) {
  return pick(list, 1);
}
`

func newTestExtractor(t *testing.T, root string, mutate func(*Options)) *Extractor {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	e, err := New(root, opts)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestRunMixedTree(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"README.md":                 "# demo\n",
		"app.py":                    pyFixture,
		"config.json":               `{"name":"demo"}`,
		"main.go":                   "package main\n",
		"node_modules/pkg/index.js": "import hidden from 'hidden-dep';\n",
		"web/app.js":                jsAppFixture,
		"web/util.js":               jsUtilFixture,
	})
	e := newTestExtractor(t, root, nil)

	m, stats, err := e.Run(context.Background())
	require.NoError(t, err)

	// Files in traversal order; main.go contributes no records and is
	// not listed.
	var paths []string
	for _, f := range m.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"README.md", "app.py", "config.json", "web/app.js", "web/util.js"}, paths)

	// Test: raw imports keep all occurrences, dependencies dedup in
	// first-occurrence order.
	require.Len(t, m.Imports, 5)
	assert.Equal(t, []string{"os", "collections", "lodash", "fs"}, m.Dependencies.List())

	require.Len(t, m.Classes, 2)
	assert.Equal(t, "Foo", m.Classes[0].Name)
	assert.Equal(t, "Bar", m.Classes[0].Inheritance)
	assert.Equal(t, "App", m.Classes[1].Name)

	require.Len(t, m.Functions, 4)
	assert.Equal(t, "baz", m.Functions[0].Name)
	assert.Equal(t, "int", m.Functions[0].ReturnType)
	assert.Equal(t, "render", m.Functions[1].Name)
	assert.Equal(t, "pickOne", m.Functions[2].Name)
	assert.Equal(t, "pickOne", m.Functions[3].Name)

	require.Len(t, m.Variables, 1)
	assert.Equal(t, "fs", m.Variables[0].Name)

	require.Len(t, m.ConfigFiles, 1)
	assert.Equal(t, "config.json", m.ConfigFiles[0].File)
	assert.Equal(t, `{"name":"demo"}`, m.ConfigFiles[0].Content)
	assert.Equal(t, []string{"README.md"}, m.Documentation)

	assert.Equal(t, 6, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.FilesAnalyzed)
	assert.Equal(t, 1, stats.ConfigFiles)
	assert.Equal(t, 1, stats.DocFiles)
	assert.Equal(t, 0, stats.FilesSkipped)
	assert.Equal(t, 12, stats.Records)
	assert.Equal(t, 4, stats.Dependencies)
	assert.NotEmpty(t, stats.RunID)

	// Test: nothing under node_modules reaches the model.
	blob, err := json.Marshal(m)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "hidden-dep")
	assert.NotContains(t, string(blob), "node_modules")

	// Test: provenance completeness over every category.
	known := make(map[string]struct{}, len(m.Files))
	for _, f := range m.Files {
		known[f.Path] = struct{}{}
	}
	for _, r := range m.Imports {
		assert.Contains(t, known, r.File)
	}
	for _, r := range m.Classes {
		assert.Contains(t, known, r.File)
	}
	for _, r := range m.Functions {
		assert.Contains(t, known, r.File)
	}
	for _, r := range m.Variables {
		assert.Contains(t, known, r.File)
	}
	for _, r := range m.ConfigFiles {
		assert.Contains(t, known, r.File)
	}
}

func TestRunDeterministicUnderConcurrency(t *testing.T) {
	t.Parallel()

	files := make(map[string]string, 30)
	wantDeps := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		files[fmt.Sprintf("pkg%02d/mod.py", i)] = fmt.Sprintf(
			"import dep%02d\n\nclass C%02d:\n    pass\n", i, i)
		wantDeps = append(wantDeps, fmt.Sprintf("dep%02d", i))
	}
	root := writeTree(t, files)
	e := newTestExtractor(t, root, func(o *Options) { o.Workers = 8 })

	m1, s1, err := e.Run(context.Background())
	require.NoError(t, err)
	m2, s2, err := e.Run(context.Background())
	require.NoError(t, err)

	// Test: merge order is traversal order, not completion order.
	assert.Equal(t, wantDeps, m1.Dependencies.List())

	b1, err := json.Marshal(m1)
	require.NoError(t, err)
	b2, err := json.Marshal(m2)
	require.NoError(t, err)
	assert.Equal(t, string(b1), string(b2))

	// Test: the second run over an unchanged tree is fully cache-served.
	assert.Equal(t, 0, s1.CacheHits)
	assert.Equal(t, 30, s2.CacheHits)
	assert.Equal(t, 30, s2.FilesAnalyzed)
}

func TestRunSkipsOversizedFiles(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"big.py":   "import os\n# padding padding padding padding padding\n",
		"small.py": "import sys\n",
	})
	e := newTestExtractor(t, root, func(o *Options) { o.MaxFileSize = 16 })

	m, stats, err := e.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, m.Files, 1)
	assert.Equal(t, "small.py", m.Files[0].Path)
	assert.Equal(t, []string{"sys"}, m.Dependencies.List())

	assert.Equal(t, 1, stats.FilesSkipped)
	require.Len(t, stats.Diagnostics, 1)
	assert.Equal(t, SkipFileTooLarge, stats.Diagnostics[0].Reason)
	assert.Equal(t, "big.py", stats.Diagnostics[0].Path)
}

func TestRunIsolatesUnreadableFiles(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	t.Parallel()

	root := writeTree(t, map[string]string{
		"a.py": "import os\n",
		"b.py": "import sys\n",
		"c.py": "import json\n",
	})
	require.NoError(t, os.Chmod(filepath.Join(root, "b.py"), 0o000))
	e := newTestExtractor(t, root, nil)

	m, stats, err := e.Run(context.Background())
	require.NoError(t, err)

	// Test: the unreadable file contributes nothing and its neighbors
	// keep their records and order.
	var paths []string
	for _, f := range m.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"a.py", "c.py"}, paths)
	assert.Equal(t, []string{"os", "json"}, m.Dependencies.List())

	assert.Equal(t, 1, stats.FilesSkipped)
	require.Len(t, stats.Diagnostics, 1)
	assert.Equal(t, SkipFileUnreadable, stats.Diagnostics[0].Reason)
}

func TestRunRetainContent(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.py": "import os\n"})

	e := newTestExtractor(t, root, nil)
	m, _, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", m.Files[0].Content)

	e = newTestExtractor(t, root, func(o *Options) { o.RetainContent = true })
	m, _, err = e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "import os\n", m.Files[0].Content)
}

func TestRunRespectsGitignore(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		".gitignore": "*.js\n",
		"a.py":       "import os\n",
		"b.js":       "const x = require('left-pad');\n",
	})
	e := newTestExtractor(t, root, func(o *Options) { o.RespectGitignore = true })

	m, _, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"os"}, m.Dependencies.List())
	for _, f := range m.Files {
		assert.NotEqual(t, "b.js", f.Path)
	}
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.py": "import os\n"})
	e := newTestExtractor(t, root, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, stats, err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, m)
	assert.Nil(t, stats)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New("", DefaultOptions())
	assert.ErrorIs(t, err, ErrRootEmpty)

	_, err = New(filepath.Join(t.TempDir(), "missing"), DefaultOptions())
	assert.ErrorIs(t, err, ErrRootNotFound)

	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = New(file, DefaultOptions())
	assert.ErrorIs(t, err, ErrRootNotDir)

	opts := DefaultOptions()
	opts.IgnoredFiles = append(opts.IgnoredFiles, "[")
	_, err = New(t.TempDir(), opts)
	assert.ErrorIs(t, err, ErrBadPattern)
}
