// Package extractor walks a project tree and distills it into a structural
// model: per-file import, class, function, and auxiliary records extracted
// by lexical per-language rules, plus config and documentation
// classification. The file system is its only I/O; consumers receive the
// finished model in memory.
package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mvp-joe/project-prism/internal/extractor/analyzers"
)

// DefaultMaxFileSize is the read guard applied when Options does not set one.
const DefaultMaxFileSize = 10 << 20 // 10 MB

// Options configure a scan. The zero value is not usable directly; start
// from DefaultOptions and override.
type Options struct {
	// IgnoredDirs are directory names pruned wherever they appear as a
	// path segment, case-sensitively.
	IgnoredDirs []string

	// IgnoredFiles are base-name patterns, exact or glob, never analyzed.
	IgnoredFiles []string

	// BinaryExtensions are skipped before any read.
	BinaryExtensions []string

	// ConfigExtensions classify files whose raw content is captured.
	ConfigExtensions []string

	// DocExtensions classify files recorded by path only.
	DocExtensions []string

	// Workers bounds the analysis pool; <= 0 means runtime.NumCPU().
	Workers int

	// MaxDepth limits traversal depth; 0 means unlimited.
	MaxDepth int

	// MaxFileSize skips files larger than this many bytes; 0 means
	// unlimited.
	MaxFileSize int64

	// RetainContent keeps raw file content on each FileRecord. Off by
	// default to bound memory on large trees.
	RetainContent bool

	// RespectGitignore additionally filters files against the root
	// .gitignore, when one exists.
	RespectGitignore bool

	// CacheCapacity bounds the cross-run analysis cache; <= 0 uses the
	// package default.
	CacheCapacity int

	// Progress receives run callbacks; nil means silent.
	Progress ProgressReporter
}

// DefaultOptions returns the stock exclusion sets and limits.
func DefaultOptions() Options {
	return Options{
		IgnoredDirs: []string{
			"__pycache__", "node_modules", "venv", ".git", ".idea",
			".vscode", "dist", "build", "vendor", "target",
		},
		IgnoredFiles:     []string{".DS_Store", "*.pyc", "*.pyo"},
		BinaryExtensions: []string{".png", ".jpg", ".jpeg", ".gif", ".ico", ".pdf", ".exe", ".bin"},
		ConfigExtensions: []string{".json", ".yaml", ".ini", ".conf"},
		DocExtensions:    []string{".md", ".rst"},
		MaxFileSize:      DefaultMaxFileSize,
	}
}

// Extractor runs structural scans over one project root. It is safe to call
// Run repeatedly; each run builds a fresh model while the analysis cache
// carries over so unchanged files are not re-analyzed.
type Extractor struct {
	root       string
	opts       Options
	walker     *walker
	classifier *secondaryClassifier
	registry   *analyzers.Registry
	cache      *analysisCache
	progress   ProgressReporter
}

// New validates the root, compiles the exclusion patterns, and returns an
// extractor. Construction is the only fatal boundary: a bad root or an
// uncompilable pattern fails here, everything later is a diagnostic.
func New(root string, opts Options) (*Extractor, error) {
	if root == "" {
		return nil, ErrRootEmpty
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, abs)
		}
		return nil, fmt.Errorf("stat root %q: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, abs)
	}

	filter, err := NewPathFilter(opts.IgnoredDirs, opts.IgnoredFiles, opts.BinaryExtensions)
	if err != nil {
		return nil, err
	}
	cache, err := newAnalysisCache(opts.CacheCapacity)
	if err != nil {
		return nil, err
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	progress := opts.Progress
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	return &Extractor{
		root:       abs,
		opts:       opts,
		walker:     newWalker(abs, filter, opts.MaxDepth, opts.RespectGitignore),
		classifier: newSecondaryClassifier(opts.ConfigExtensions, opts.DocExtensions),
		registry:   analyzers.DefaultRegistry(),
		cache:      cache,
		progress:   progress,
	}, nil
}

// Run scans the tree once and returns the finished model with its run
// stats. On cancellation the partial model is discarded and the context
// error returned.
func (e *Extractor) Run(ctx context.Context) (*StructuralModel, *Stats, error) {
	return e.run(ctx)
}

// Close releases the analysis cache. The extractor is not usable afterward.
func (e *Extractor) Close() {
	e.cache.close()
}
