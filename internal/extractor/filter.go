package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern keeps the source text next to its compiled glob for
// diagnostics.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// PathFilter decides which directories are descended into and which files
// are analyzed. Directory exclusion is by case-sensitive path-segment
// equality; file exclusion is by base-name glob. Both checks are pure
// booleans: exclusion is never an error.
type PathFilter struct {
	ignoredDirs  map[string]struct{}
	ignoredFiles []compiledPattern
	binaryExts   map[string]struct{}
}

// NewPathFilter compiles the file patterns and returns the filter. Patterns
// are matched against base names only, so `*.pyc` and exact names like
// `.DS_Store` are both valid; an uncompilable pattern is a configuration
// defect reported up front.
func NewPathFilter(ignoredDirs, ignoredFilePatterns, binaryExtensions []string) (*PathFilter, error) {
	f := &PathFilter{
		ignoredDirs: make(map[string]struct{}, len(ignoredDirs)),
		binaryExts:  make(map[string]struct{}, len(binaryExtensions)),
	}
	for _, dir := range ignoredDirs {
		if dir == "" {
			continue
		}
		f.ignoredDirs[dir] = struct{}{}
	}
	for _, ext := range binaryExtensions {
		f.binaryExts[strings.ToLower(ext)] = struct{}{}
	}
	for _, pattern := range ignoredFilePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, pattern, err)
		}
		f.ignoredFiles = append(f.ignoredFiles, compiledPattern{pattern: pattern, glob: g})
	}
	return f, nil
}

// ShouldDescend reports whether the walker may enter relDir (slash-separated,
// relative to the scan root). Any segment equal to an ignored directory name
// excludes the whole subtree.
func (f *PathFilter) ShouldDescend(relDir string) bool {
	if relDir == "" || relDir == "." {
		return true
	}
	for _, segment := range strings.Split(relDir, "/") {
		if _, ok := f.ignoredDirs[segment]; ok {
			return false
		}
	}
	return true
}

// ShouldAnalyze reports whether a file may be read and analyzed, based on
// its base name alone. Binary extensions and ignored-file patterns exclude.
func (f *PathFilter) ShouldAnalyze(fileName string) bool {
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		if _, ok := f.binaryExts[ext]; ok {
			return false
		}
	}
	for _, cp := range f.ignoredFiles {
		if cp.glob.Match(fileName) {
			return false
		}
	}
	return true
}
