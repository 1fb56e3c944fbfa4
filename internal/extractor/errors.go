package extractor

import (
	"errors"
	"fmt"
)

// Validation errors returned before any traversal starts.
var (
	ErrRootEmpty    = errors.New("scan root is empty")
	ErrRootNotFound = errors.New("scan root does not exist")
	ErrRootNotDir   = errors.New("scan root is not a directory")
	ErrBadPattern   = errors.New("invalid exclusion pattern")
)

// SkipReason classifies why a discovered path was skipped. Skips are local:
// they produce a diagnostic and the run continues.
type SkipReason string

const (
	// SkipDirUnreadable marks a directory the walker could not open. Its
	// subtree is skipped; nothing else is lost.
	SkipDirUnreadable SkipReason = "directory_unreadable"

	// SkipFileUnreadable marks a file whose content read failed.
	SkipFileUnreadable SkipReason = "file_unreadable"

	// SkipFileTooLarge marks a file over the configured size limit,
	// skipped before any read.
	SkipFileTooLarge SkipReason = "file_too_large"

	// SkipNoAnalyzer marks a file whose language tag has no registered
	// patterns. Treated as unsupported, not fatal.
	SkipNoAnalyzer SkipReason = "no_analyzer"

	// SkipBadProvenance marks records dropped because they did not carry
	// their own file's path. This indicates an analyzer defect; the drop
	// keeps the model internally consistent.
	SkipBadProvenance SkipReason = "aggregation_invariant_violation"
)

// Diagnostic is one non-fatal skip recorded during a run.
type Diagnostic struct {
	Path   string
	Reason SkipReason
	Err    error
}

func (d Diagnostic) String() string {
	if d.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", d.Path, d.Reason, d.Err)
	}
	return fmt.Sprintf("%s: %s", d.Path, d.Reason)
}
