package extractor

import (
	"fmt"

	"github.com/mvp-joe/project-prism/internal/extractor/analyzers"
)

// aggregator is the only writer of a run's StructuralModel. It appends
// per-file results in the order the sequencing buffer releases them, so the
// model's category slices end up in (file visitation order, within-file
// match order) without any locking.
type aggregator struct {
	model *StructuralModel
	diag  func(Diagnostic)
}

func newAggregator(root string, diag func(Diagnostic)) *aggregator {
	return &aggregator{model: NewStructuralModel(root), diag: diag}
}

// addCodeFile records an analyzed file and merges its batch. Records that do
// not carry the file's own path violate the provenance invariant: they are
// dropped with a diagnostic rather than merged, keeping the model internally
// consistent even against a defective analyzer.
func (a *aggregator) addCodeFile(relPath, language, content string, b *analyzers.Batch) {
	a.model.Files = append(a.model.Files, FileRecord{
		Path:     relPath,
		Language: language,
		Content:  content,
	})
	if b == nil {
		return
	}

	for _, r := range b.Imports {
		if a.foreign(relPath, r.File) {
			continue
		}
		a.model.Imports = append(a.model.Imports, r)
		a.model.Dependencies.Add(r.Module)
	}
	for _, r := range b.Classes {
		if a.foreign(relPath, r.File) {
			continue
		}
		a.model.Classes = append(a.model.Classes, r)
	}
	for _, r := range b.Functions {
		if a.foreign(relPath, r.File) {
			continue
		}
		a.model.Functions = append(a.model.Functions, r)
	}
	for _, r := range b.Variables {
		if a.foreign(relPath, r.File) {
			continue
		}
		a.model.Variables = append(a.model.Variables, r)
	}
	for _, r := range b.ErrorHandling {
		if a.foreign(relPath, r.File) {
			continue
		}
		a.model.ErrorHandling = append(a.model.ErrorHandling, r)
	}
	for _, r := range b.Organization {
		if a.foreign(relPath, r.File) {
			continue
		}
		a.model.Organization = append(a.model.Organization, r)
	}
	for _, r := range b.Performance {
		if a.foreign(relPath, r.File) {
			continue
		}
		a.model.Performance = append(a.model.Performance, r)
	}
}

// addConfigFile records a config file and its raw content.
func (a *aggregator) addConfigFile(relPath, content string) {
	a.model.Files = append(a.model.Files, FileRecord{Path: relPath})
	a.model.ConfigFiles = append(a.model.ConfigFiles, ConfigRecord{File: relPath, Content: content})
}

// addDocFile records a documentation file by path.
func (a *aggregator) addDocFile(relPath string) {
	a.model.Files = append(a.model.Files, FileRecord{Path: relPath})
	a.model.Documentation = append(a.model.Documentation, relPath)
}

// foreign reports whether a record's file field disagrees with the file it
// arrived under, emitting the invariant-violation diagnostic when it does.
func (a *aggregator) foreign(relPath, recFile string) bool {
	if recFile == relPath {
		return false
	}
	a.diag(Diagnostic{
		Path:   relPath,
		Reason: SkipBadProvenance,
		Err:    fmt.Errorf("record carries provenance %q", recFile),
	})
	return true
}
