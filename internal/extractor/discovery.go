package extractor

import (
	"context"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// candidate is one file emitted by the walker. The sequence number records
// its position in traversal order; merges happen in that order no matter
// when each file finishes analysis.
type candidate struct {
	seq     int
	relPath string // slash-separated, relative to the scan root
	absPath string
	size    int64
}

// walker streams analyzable file candidates under root. Traversal is
// filepath.WalkDir's lexical order, so for a fixed tree snapshot and fixed
// exclusions the candidate sequence is deterministic.
type walker struct {
	root     string
	filter   *PathFilter
	maxDepth int // 0 = unlimited
	gitign   *ignore.GitIgnore
}

func newWalker(root string, filter *PathFilter, maxDepth int, respectGitignore bool) *walker {
	w := &walker{root: root, filter: filter, maxDepth: maxDepth}
	if respectGitignore {
		// Only the root .gitignore is honored; nested ignore files are a
		// VCS concern, not a traversal one.
		if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
			w.gitign = gi
		}
	}
	return w
}

// walk emits candidates on out until the tree is exhausted or ctx is
// cancelled. Excluded paths are pruned silently; unreadable directories are
// reported through diag and skipped. The walk itself only fails on
// cancellation or an unreadable root.
func (w *walker) walk(ctx context.Context, out chan<- candidate, diag func(Diagnostic)) error {
	seq := 0
	err := filepath.WalkDir(w.root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return filepath.SkipAll
		default:
		}

		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if err != nil {
			if path == w.root {
				return err
			}
			diag(Diagnostic{Path: rel, Reason: SkipDirUnreadable, Err: err})
			return nil
		}

		if d.IsDir() {
			if path == w.root {
				return nil
			}
			if !w.filter.ShouldDescend(rel) {
				return filepath.SkipDir
			}
			if w.maxDepth > 0 && pathDepth(rel) >= w.maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		if w.maxDepth > 0 && pathDepth(rel) > w.maxDepth {
			return nil
		}
		if !w.filter.ShouldAnalyze(d.Name()) {
			return nil
		}
		if w.gitign != nil && w.gitign.MatchesPath(rel) {
			return nil
		}

		size := int64(-1)
		if info, infoErr := d.Info(); infoErr == nil {
			size = info.Size()
		}

		c := candidate{seq: seq, relPath: rel, absPath: path, size: size}
		select {
		case out <- c:
			seq++
		case <-ctx.Done():
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return err
	}
	return ctx.Err()
}

// pathDepth counts the segments of a slash-separated relative path: a file
// directly under the root has depth 1.
func pathDepth(rel string) int {
	if rel == "" || rel == "." {
		return 0
	}
	depth := 1
	for i := 0; i < len(rel); i++ {
		if rel[i] == '/' {
			depth++
		}
	}
	return depth
}
