package extractor

import (
	"bytes"
	"encoding/json"

	"github.com/mvp-joe/project-prism/internal/extractor/analyzers"
)

// FileRecord is one discovered source file: its path relative to the scan
// root and the language tag it was analyzed under. Content is kept only when
// the run opts into retention; by default it is dropped after analysis to
// bound memory on large trees.
type FileRecord struct {
	Path     string `json:"path"`
	Language string `json:"language,omitempty"`
	Content  string `json:"content,omitempty"`
}

// ConfigRecord is a recognized configuration file with its raw content.
type ConfigRecord struct {
	File    string `json:"file"`
	Content string `json:"content"`
}

// DependencySet is an insertion-ordered presence set of import identifiers.
// The first occurrence of an identifier fixes its position; later adds are
// no-ops. It serializes as an ordered JSON object of identifier -> true.
type DependencySet struct {
	order []string
	seen  map[string]struct{}
}

// NewDependencySet returns an empty set.
func NewDependencySet() *DependencySet {
	return &DependencySet{seen: make(map[string]struct{})}
}

// Add records an identifier and reports whether it was new. Empty
// identifiers are ignored.
func (s *DependencySet) Add(module string) bool {
	if module == "" {
		return false
	}
	if _, ok := s.seen[module]; ok {
		return false
	}
	s.seen[module] = struct{}{}
	s.order = append(s.order, module)
	return true
}

// Has reports whether an identifier is present.
func (s *DependencySet) Has(module string) bool {
	_, ok := s.seen[module]
	return ok
}

// Len returns the number of distinct identifiers.
func (s *DependencySet) Len() int { return len(s.order) }

// List returns the identifiers in first-occurrence order.
func (s *DependencySet) List() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// MarshalJSON writes the set as an object with insertion-ordered keys, the
// shape downstream consumers of the model expect.
func (s *DependencySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, module := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(module)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":true")
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// StructuralModel is the aggregate result of one analysis run. It is
// populated append-only by a single writer during the run and handed off
// immutable: every record slice preserves (file visitation order, then
// within-file match order), and every record's file field names a path
// present in Files.
type StructuralModel struct {
	Root          string                          `json:"root"`
	ProjectKind   string                          `json:"project_type,omitempty"`
	Files         []FileRecord                    `json:"files"`
	Dependencies  *DependencySet                  `json:"dependencies"`
	Imports       []analyzers.ImportRecord        `json:"imports"`
	Classes       []analyzers.ClassRecord         `json:"classes"`
	Functions     []analyzers.FunctionRecord      `json:"functions"`
	Variables     []analyzers.VariableRecord      `json:"variables,omitempty"`
	ErrorHandling []analyzers.ErrorHandlingRecord `json:"error_handling,omitempty"`
	Organization  []analyzers.OrganizationRecord  `json:"code_organization,omitempty"`
	Performance   []analyzers.PerformanceRecord   `json:"performance,omitempty"`
	ConfigFiles   []ConfigRecord                  `json:"config_files"`
	Documentation []string                        `json:"documentation"`
}

// NewStructuralModel returns an empty model for one run over root.
func NewStructuralModel(root string) *StructuralModel {
	return &StructuralModel{
		Root:         root,
		Dependencies: NewDependencySet(),
	}
}

// RecordCount returns the total number of extracted records across all
// categories, excluding file, config, and documentation entries.
func (m *StructuralModel) RecordCount() int {
	return len(m.Imports) + len(m.Classes) + len(m.Functions) +
		len(m.Variables) + len(m.ErrorHandling) + len(m.Organization) + len(m.Performance)
}
