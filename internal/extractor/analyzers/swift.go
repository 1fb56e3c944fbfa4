package analyzers

import "strings"

// swiftAnalyzer extracts imports, class/struct/protocol/enum declarations
// with their conformance lists, and functions from Swift sources.
type swiftAnalyzer struct{}

// NewSwiftAnalyzer returns the analyzer for .swift files.
func NewSwiftAnalyzer() Analyzer { return swiftAnalyzer{} }

func (swiftAnalyzer) Language() string { return LangSwift }

func (swiftAnalyzer) Analyze(content, filePath string) *Batch {
	b := &Batch{}
	collectImports(b, LangSwift, content, filePath)

	for _, m := range classPatterns[LangSwift].FindAllStringSubmatch(content, -1) {
		b.Classes = append(b.Classes, ClassRecord{
			Name:        m[1],
			Inheritance: strings.TrimSpace(m[2]),
			File:        filePath,
		})
	}

	for _, m := range functionPatterns[LangSwift].FindAllStringSubmatch(content, -1) {
		b.Functions = append(b.Functions, FunctionRecord{
			Name:       m[1],
			Parameters: m[2],
			ReturnType: strings.TrimSpace(m[3]),
			File:       filePath,
		})
	}

	return b
}
