package analyzers

// pythonAnalyzer extracts imports, classes, and functions from Python
// sources. The import pattern is line-anchored so only real `from`/`import`
// statements match, not the words inside expressions.
type pythonAnalyzer struct{}

// NewPythonAnalyzer returns the analyzer for .py files.
func NewPythonAnalyzer() Analyzer { return pythonAnalyzer{} }

func (pythonAnalyzer) Language() string { return LangPython }

func (pythonAnalyzer) Analyze(content, filePath string) *Batch {
	b := &Batch{}
	collectImports(b, LangPython, content, filePath)

	for _, m := range classPatterns[LangPython].FindAllStringSubmatch(content, -1) {
		b.Classes = append(b.Classes, ClassRecord{
			Name:        m[1],
			Inheritance: m[2],
			File:        filePath,
		})
	}

	for _, m := range functionPatterns[LangPython].FindAllStringSubmatch(content, -1) {
		b.Functions = append(b.Functions, FunctionRecord{
			Name:       m[1],
			Parameters: m[2],
			ReturnType: m[3],
			File:       filePath,
		})
	}

	return b
}
