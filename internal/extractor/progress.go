package extractor

// ProgressReporter provides callbacks for reporting scan progress.
// Implementations can display progress bars, log messages, or remain silent.
type ProgressReporter interface {
	// OnWalkStart is called when tree traversal begins.
	OnWalkStart(root string)

	// OnFileResult is called after each discovered file's result is merged,
	// including skipped files.
	OnFileResult(relPath string)

	// OnComplete is called when the run finishes successfully.
	OnComplete(stats *Stats)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnWalkStart(root string)     {}
func (n *NoOpProgressReporter) OnFileResult(relPath string) {}
func (n *NoOpProgressReporter) OnComplete(stats *Stats)     {}
