package analyzers

// cAnalyzer extracts includes, struct/enum/union declarations, and functions
// from C sources. Preprocessor macros and typedefs are recorded as code
// organization records.
type cAnalyzer struct{}

// NewCAnalyzer returns the analyzer for .c and .h files.
func NewCAnalyzer() Analyzer { return cAnalyzer{} }

func (cAnalyzer) Language() string { return LangC }

func (cAnalyzer) Analyze(content, filePath string) *Batch {
	b := &Batch{}
	collectImports(b, LangC, content, filePath)

	for _, m := range classPatterns[LangC].FindAllStringSubmatch(content, -1) {
		b.Classes = append(b.Classes, ClassRecord{
			Name: m[1],
			Kind: KindStructUnion,
			File: filePath,
		})
	}

	for _, m := range functionPatterns[LangC].FindAllStringSubmatch(content, -1) {
		b.Functions = append(b.Functions, FunctionRecord{
			Name:       m[1],
			Parameters: m[2],
			File:       filePath,
		})
	}

	for _, m := range macroPattern.FindAllStringSubmatch(content, -1) {
		b.Organization = append(b.Organization, OrganizationRecord{
			Kind:       KindMacro,
			Name:       m[1],
			Parameters: m[2],
			Value:      m[3],
			File:       filePath,
		})
	}

	for _, m := range typedefPattern.FindAllStringSubmatch(content, -1) {
		b.Organization = append(b.Organization, OrganizationRecord{
			Kind:         KindTypedef,
			OriginalType: m[1],
			NewType:      m[2],
			File:         filePath,
		})
	}

	return b
}
