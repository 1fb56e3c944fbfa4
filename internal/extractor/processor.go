package extractor

import (
	"context"
	"log"
	"os"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvp-joe/project-prism/internal/extractor/analyzers"
)

// Stats tracks what one run processed.
type Stats struct {
	RunID           string
	Root            string
	FilesDiscovered int
	FilesAnalyzed   int
	FilesSkipped    int
	ConfigFiles     int
	DocFiles        int
	Records         int
	Dependencies    int
	CacheHits       int
	Duration        time.Duration
	Diagnostics     []Diagnostic
}

// fileResult is what a worker produced for one candidate: a record batch for
// analyzable code, a secondary classification, a skip diagnostic, or nothing
// at all for files no pass applies to. Exactly one result exists per
// candidate so the sequencing buffer can release merges strictly in
// traversal order.
type fileResult struct {
	seq      int
	relPath  string
	language string
	class    FileClass
	content  string
	batch    *analyzers.Batch
	diag     *Diagnostic
	cacheHit bool
}

// run executes the scan pipeline: the walker feeds candidates to a bounded
// worker pool, workers read and analyze, and this goroutine alone merges
// results into the model in emission order. A cancelled run returns the
// context error and discards the partial model.
func (e *Extractor) run(ctx context.Context) (*StructuralModel, *Stats, error) {
	start := time.Now()
	stats := &Stats{RunID: uuid.New().String(), Root: e.root}

	workers := e.opts.Workers
	work := make(chan candidate, workers*2)
	results := make(chan fileResult, workers*2)

	// The walker reports unreadable directories from its own goroutine,
	// so collection is guarded; logging is already serialized by the log
	// package.
	var walkMu sync.Mutex
	var walkDiags []Diagnostic
	walkDiag := func(d Diagnostic) {
		log.Printf("Warning: skipping %s: %v\n", d.Path, d.Err)
		walkMu.Lock()
		walkDiags = append(walkDiags, d)
		walkMu.Unlock()
	}

	e.progress.OnWalkStart(e.root)

	var walkErr error
	go func() {
		defer close(work)
		walkErr = e.walker.walk(ctx, work, walkDiag)
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range work {
				select {
				case results <- e.processFile(c):
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	agg := newAggregator(e.root, func(d Diagnostic) {
		log.Printf("Warning: dropping record from %s: %v\n", d.Path, d.Err)
		stats.Diagnostics = append(stats.Diagnostics, d)
	})

	// Sequencing buffer: results arrive in completion order, merges happen
	// in traversal order.
	pending := make(map[int]fileResult)
	next := 0
	for r := range results {
		pending[r.seq] = r
		for {
			pr, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			e.apply(agg, stats, pr)
			next++
		}
	}

	if walkErr != nil {
		return nil, nil, walkErr
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	stats.Records = agg.model.RecordCount()
	stats.Dependencies = agg.model.Dependencies.Len()
	stats.Duration = time.Since(start)
	// Directory-level skips are diagnostics but not file skips.
	stats.Diagnostics = append(stats.Diagnostics, walkDiags...)

	e.progress.OnComplete(stats)
	return agg.model, stats, nil
}

// apply merges one released result into the model and the run stats.
func (e *Extractor) apply(agg *aggregator, stats *Stats, r fileResult) {
	stats.FilesDiscovered++
	defer e.progress.OnFileResult(r.relPath)

	if r.diag != nil {
		log.Printf("Warning: skipping %s: %s\n", r.relPath, r.diag.Reason)
		stats.FilesSkipped++
		stats.Diagnostics = append(stats.Diagnostics, *r.diag)
		return
	}

	switch {
	case r.language != "":
		agg.addCodeFile(r.relPath, r.language, r.content, r.batch)
		stats.FilesAnalyzed++
		if r.cacheHit {
			stats.CacheHits++
		}
	case r.class == ClassConfig:
		agg.addConfigFile(r.relPath, r.content)
		stats.ConfigFiles++
	case r.class == ClassDoc:
		agg.addDocFile(r.relPath)
		stats.DocFiles++
	}
}

// processFile turns one candidate into its result. It never fails the run:
// read errors, oversized files, and unregistered languages all come back as
// skip diagnostics.
func (e *Extractor) processFile(c candidate) fileResult {
	r := fileResult{seq: c.seq, relPath: c.relPath}

	base := path.Base(c.relPath)
	lang := analyzers.DetectLanguage(base)

	if lang == "" {
		// Not analyzable as code; the secondary classifier may still
		// want it.
		switch e.classifier.Classify(base) {
		case ClassDoc:
			// Documentation is recorded by path alone, no read.
			r.class = ClassDoc
			return r
		case ClassConfig:
			if d := e.tooLarge(c); d != nil {
				r.diag = d
				return r
			}
			content, err := os.ReadFile(c.absPath)
			if err != nil {
				r.diag = &Diagnostic{Path: c.relPath, Reason: SkipFileUnreadable, Err: err}
				return r
			}
			r.class = ClassConfig
			r.content = string(content)
			return r
		default:
			return r
		}
	}

	analyzer, ok := e.registry.Lookup(lang)
	if !ok {
		r.diag = &Diagnostic{Path: c.relPath, Reason: SkipNoAnalyzer}
		return r
	}
	if d := e.tooLarge(c); d != nil {
		r.diag = d
		return r
	}

	raw, err := os.ReadFile(c.absPath)
	if err != nil {
		r.diag = &Diagnostic{Path: c.relPath, Reason: SkipFileUnreadable, Err: err}
		return r
	}
	content := string(raw)

	r.language = lang
	key := cacheKey(c.relPath, content)
	if cached, hit := e.cache.get(key); hit {
		r.batch = cached
		r.cacheHit = true
	} else {
		r.batch = analyzer.Analyze(content, c.relPath)
		e.cache.put(key, r.batch)
	}
	if e.opts.RetainContent {
		r.content = content
	}
	return r
}

// tooLarge returns the oversize diagnostic for a candidate, or nil when it
// may be read.
func (e *Extractor) tooLarge(c candidate) *Diagnostic {
	if e.opts.MaxFileSize > 0 && c.size > e.opts.MaxFileSize {
		return &Diagnostic{Path: c.relPath, Reason: SkipFileTooLarge}
	}
	return nil
}
