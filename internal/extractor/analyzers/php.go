package analyzers

import "strings"

// phpAnalyzer extracts require/include paths, classes with their extends and
// implements clauses, and functions from PHP sources.
type phpAnalyzer struct{}

// NewPHPAnalyzer returns the analyzer for .php files.
func NewPHPAnalyzer() Analyzer { return phpAnalyzer{} }

func (phpAnalyzer) Language() string { return LangPHP }

func (phpAnalyzer) Analyze(content, filePath string) *Batch {
	b := &Batch{}
	collectImports(b, LangPHP, content, filePath)

	for _, m := range classPatterns[LangPHP].FindAllStringSubmatch(content, -1) {
		b.Classes = append(b.Classes, ClassRecord{
			Name:        m[1],
			Inheritance: m[2],
			Interfaces:  strings.TrimSpace(m[3]),
			File:        filePath,
		})
	}

	for _, m := range functionPatterns[LangPHP].FindAllStringSubmatch(content, -1) {
		b.Functions = append(b.Functions, FunctionRecord{
			Name:       m[1],
			Parameters: m[2],
			ReturnType: strings.TrimSpace(m[3]),
			File:       filePath,
		})
	}

	return b
}
