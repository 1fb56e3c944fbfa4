package analyzers

// cppAnalyzer extracts includes, class/struct declarations with their access-
// qualified base, and functions from C++ sources. Templates and namespaces
// are recorded as code organization records rather than types.
type cppAnalyzer struct{}

// NewCPPAnalyzer returns the analyzer for .cpp and .hpp files.
func NewCPPAnalyzer() Analyzer { return cppAnalyzer{} }

func (cppAnalyzer) Language() string { return LangCPP }

func (cppAnalyzer) Analyze(content, filePath string) *Batch {
	b := &Batch{}
	collectImports(b, LangCPP, content, filePath)

	for _, m := range classPatterns[LangCPP].FindAllStringSubmatch(content, -1) {
		b.Classes = append(b.Classes, ClassRecord{
			Name:        m[1],
			Inheritance: m[2],
			File:        filePath,
		})
	}

	for _, m := range functionPatterns[LangCPP].FindAllStringSubmatch(content, -1) {
		b.Functions = append(b.Functions, FunctionRecord{
			Name:       m[1],
			Parameters: m[2],
			File:       filePath,
		})
	}

	for _, m := range templatePattern.FindAllStringSubmatch(content, -1) {
		b.Organization = append(b.Organization, OrganizationRecord{
			Kind:       KindTemplate,
			Parameters: m[1],
			File:       filePath,
		})
	}

	for _, m := range namespacePattern.FindAllStringSubmatch(content, -1) {
		b.Organization = append(b.Organization, OrganizationRecord{
			Kind: KindNamespace,
			Name: m[1],
			File: filePath,
		})
	}

	return b
}
