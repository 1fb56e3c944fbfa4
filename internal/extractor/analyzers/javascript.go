package analyzers

import "strings"

// javascriptAnalyzer extracts imports, classes, functions, object methods,
// variable bindings, try/catch sites, and an async-usage flag from
// JavaScript sources.
type javascriptAnalyzer struct{}

// NewJavaScriptAnalyzer returns the analyzer for .js files.
func NewJavaScriptAnalyzer() Analyzer { return javascriptAnalyzer{} }

func (javascriptAnalyzer) Language() string { return LangJavaScript }

func (javascriptAnalyzer) Analyze(content, filePath string) *Batch {
	b := &Batch{}
	collectImports(b, LangJavaScript, content, filePath)

	for _, m := range classPatterns[LangJavaScript].FindAllStringSubmatch(content, -1) {
		b.Classes = append(b.Classes, ClassRecord{
			Name:        m[1],
			Inheritance: m[2],
			File:        filePath,
		})
	}

	// Function declarations and const/let/var arrow or function-expression
	// assignments; the name lives in whichever alternative matched.
	for _, m := range functionPatterns[LangJavaScript].FindAllStringSubmatch(content, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		b.Functions = append(b.Functions, FunctionRecord{
			Name:       name,
			Parameters: m[3],
			File:       filePath,
		})
	}

	for _, m := range methodPattern.FindAllStringSubmatch(content, -1) {
		b.Functions = append(b.Functions, FunctionRecord{
			Name:       m[1],
			Kind:       KindMethod,
			Parameters: m[2],
			File:       filePath,
		})
	}

	for _, m := range variablePattern.FindAllStringSubmatch(content, -1) {
		b.Variables = append(b.Variables, VariableRecord{
			Name:  m[1],
			Value: strings.TrimSpace(m[2]),
			File:  filePath,
		})
	}

	for _, m := range tryCatchPattern.FindAllStringSubmatch(content, -1) {
		b.ErrorHandling = append(b.ErrorHandling, ErrorHandlingRecord{
			ExceptionVar: m[1],
			File:         filePath,
		})
	}

	// Literal token scan: a substring hit anywhere in the file counts.
	if strings.Contains(content, "async") {
		b.Performance = append(b.Performance, PerformanceRecord{
			HasAsync: true,
			File:     filePath,
		})
	}

	return b
}
