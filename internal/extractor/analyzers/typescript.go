package analyzers

import "strings"

// typescriptAnalyzer extracts imports, interfaces/type aliases, classes and
// components, functions and hooks from TypeScript sources. For .tsx files it
// additionally records capitalized JSX element names as components.
type typescriptAnalyzer struct{}

// NewTypeScriptAnalyzer returns the analyzer for .ts and .tsx files.
func NewTypeScriptAnalyzer() Analyzer { return typescriptAnalyzer{} }

func (typescriptAnalyzer) Language() string { return LangTypeScript }

func (typescriptAnalyzer) Analyze(content, filePath string) *Batch {
	b := &Batch{}
	collectImports(b, LangTypeScript, content, filePath)

	for _, m := range interfacePattern.FindAllStringSubmatch(content, -1) {
		b.Classes = append(b.Classes, ClassRecord{
			Name:        m[1],
			Kind:        KindInterface,
			Inheritance: strings.TrimSpace(m[2]),
			File:        filePath,
		})
	}

	for _, m := range classPatterns[LangTypeScript].FindAllStringSubmatch(content, -1) {
		b.Classes = append(b.Classes, ClassRecord{
			Name:        m[1],
			Kind:        KindComponent,
			Inheritance: strings.TrimSpace(m[2]),
			File:        filePath,
		})
	}

	for _, m := range functionPatterns[LangTypeScript].FindAllStringSubmatch(content, -1) {
		name := m[1]
		kind := KindFunction
		if isHookName(name) {
			kind = KindHook
		}
		b.Functions = append(b.Functions, FunctionRecord{
			Name:       name,
			Kind:       kind,
			Parameters: m[2],
			ReturnType: strings.TrimSpace(m[3]),
			File:       filePath,
		})
	}

	if strings.HasSuffix(strings.ToLower(filePath), ".tsx") {
		for _, m := range jsxComponentPattern.FindAllStringSubmatch(content, -1) {
			name := m[1]
			// Custom components start with an uppercase letter; lowercase
			// element names are plain HTML tags.
			if name[0] >= 'A' && name[0] <= 'Z' {
				b.Classes = append(b.Classes, ClassRecord{
					Name: name,
					Kind: KindJSXComponent,
					File: filePath,
				})
			}
		}
	}

	return b
}

// isHookName reports whether a function name follows the React hook
// convention: a "use" prefix followed by an uppercase letter. A name that is
// exactly "use" is a plain function.
func isHookName(name string) bool {
	return len(name) > 3 && strings.HasPrefix(name, "use") && name[3] >= 'A' && name[3] <= 'Z'
}
