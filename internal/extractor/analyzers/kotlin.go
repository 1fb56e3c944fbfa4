package analyzers

import "strings"

// kotlinAnalyzer extracts imports, class/interface/object declarations, and
// functions from Kotlin sources.
type kotlinAnalyzer struct{}

// NewKotlinAnalyzer returns the analyzer for .kt files.
func NewKotlinAnalyzer() Analyzer { return kotlinAnalyzer{} }

func (kotlinAnalyzer) Language() string { return LangKotlin }

func (kotlinAnalyzer) Analyze(content, filePath string) *Batch {
	b := &Batch{}
	collectImports(b, LangKotlin, content, filePath)

	for _, m := range classPatterns[LangKotlin].FindAllStringSubmatch(content, -1) {
		b.Classes = append(b.Classes, ClassRecord{
			Name:        m[1],
			Inheritance: strings.TrimSpace(m[2]),
			File:        filePath,
		})
	}

	for _, m := range functionPatterns[LangKotlin].FindAllStringSubmatch(content, -1) {
		b.Functions = append(b.Functions, FunctionRecord{
			Name:       m[1],
			Parameters: m[2],
			ReturnType: strings.TrimSpace(m[3]),
			File:       filePath,
		})
	}

	return b
}
