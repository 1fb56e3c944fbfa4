// Package analyzers implements the per-language lexical extraction rules:
// a fixed pattern table per language and one analyzer per supported
// language, selected through a registry keyed by language tag.
package analyzers

import (
	"sort"
)

// Analyzer extracts structural records from the source text of one language.
// Implementations are pure functions over (content, filePath): malformed or
// partial input yields fewer records, never an error, and every emitted
// record carries filePath as its provenance.
type Analyzer interface {
	// Language returns the tag this analyzer is registered under.
	Language() string

	// Analyze runs every extraction pass for the language exactly once over
	// content. Passes are independent: one pass matching (or not) never
	// suppresses another.
	Analyze(content, filePath string) *Batch
}

// Registry maps language tags to their analyzers.
type Registry struct {
	analyzers map[string]Analyzer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{analyzers: make(map[string]Analyzer)}
}

// Register adds an analyzer, replacing any previous one for the same tag.
func (r *Registry) Register(a Analyzer) {
	r.analyzers[a.Language()] = a
}

// Lookup returns the analyzer for a language tag. A miss means the language
// has no registered rules and the file is treated as unsupported.
func (r *Registry) Lookup(lang string) (Analyzer, bool) {
	a, ok := r.analyzers[lang]
	return a, ok
}

// Languages returns the registered tags in sorted order.
func (r *Registry) Languages() []string {
	langs := make([]string, 0, len(r.analyzers))
	for lang := range r.analyzers {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultRegistry returns a registry with all eight built-in analyzers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewPythonAnalyzer())
	r.Register(NewJavaScriptAnalyzer())
	r.Register(NewTypeScriptAnalyzer())
	r.Register(NewKotlinAnalyzer())
	r.Register(NewPHPAnalyzer())
	r.Register(NewSwiftAnalyzer())
	r.Register(NewCPPAnalyzer())
	r.Register(NewCAnalyzer())
	return r
}

// collectImports appends one ImportRecord per match, taking the first
// non-empty capture group: import/require alternations bind different
// groups depending on which branch matched.
func collectImports(b *Batch, lang, content, filePath string) {
	re, ok := importPatterns[lang]
	if !ok {
		return
	}
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		module := firstGroup(m)
		if module == "" {
			continue
		}
		b.Imports = append(b.Imports, ImportRecord{Module: module, File: filePath})
	}
}

// firstGroup returns the first non-empty capture group of a submatch.
func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}
