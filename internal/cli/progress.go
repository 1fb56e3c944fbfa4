package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/project-prism/internal/extractor"
)

// ScanProgressReporter implements progress reporting with a progress bar.
// The walker streams candidates, so the file total is unknown until the run
// finishes; the bar runs in spinner mode with a live count instead.
type ScanProgressReporter struct {
	quiet     bool
	bar       *progressbar.ProgressBar
	startTime time.Time
}

// NewScanProgressReporter creates a new CLI progress reporter.
func NewScanProgressReporter(quiet bool) *ScanProgressReporter {
	return &ScanProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *ScanProgressReporter) OnWalkStart(root string) {
	if c.quiet {
		return
	}
	log.Printf("Scanning %s\n", root)

	c.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Analyzing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *ScanProgressReporter) OnFileResult(relPath string) {
	if c.quiet {
		return
	}
	if c.bar != nil {
		c.bar.Add(1)
	}
}

func (c *ScanProgressReporter) OnComplete(stats *extractor.Stats) {
	if c.quiet {
		return
	}
	if c.bar != nil {
		c.bar.Finish()
		c.bar = nil
	}
}
