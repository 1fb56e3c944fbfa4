package analyzers

import "regexp"

// TableVersion identifies the extraction rule set. Bump it whenever any
// pattern below changes so cached analysis results are not reused across
// incompatible rule sets.
const TableVersion = 1

// The extraction rules are lexical heuristics over whole-file text, not a
// token stream with brace/paren balancing. Nested or multi-line constructs
// can mismatch (a `class` keyword inside a string literal is
// indistinguishable from a declaration); that trade-off buys breadth across
// eight languages with near-zero maintenance. All patterns compile at init,
// so a malformed rule fails the process at startup rather than mid-scan.

var importPatterns = map[string]*regexp.Regexp{
	LangPython:     regexp.MustCompile(`(?m)^(?:from|import)\s+([a-zA-Z0-9_\.]+)`),
	LangJavaScript: regexp.MustCompile(`(?:import\s+.*?from\s+['"]([^'"]+)['"]|require\s*\(['"]([^'"]+)['"]\))`),
	LangTypeScript: regexp.MustCompile(`(?:import|require)\s+.*?['"]([^'"]+)['"]`),
	LangKotlin:     regexp.MustCompile(`import\s+([^\n]+)`),
	LangPHP:        regexp.MustCompile(`(?:require|include)(?:_once)?\s*['"]([^'"]+)['"]`),
	LangSwift:      regexp.MustCompile(`import\s+([^\n]+)`),
	LangCPP:        regexp.MustCompile(`#include\s*[<"]([^>"]+)[>"]`),
	LangC:          regexp.MustCompile(`#include\s*[<"]([^>"]+)[>"]`),
}

var classPatterns = map[string]*regexp.Regexp{
	LangPython:     regexp.MustCompile(`class\s+(\w+)(?:\((.*?)\))?\s*:`),
	LangJavaScript: regexp.MustCompile(`class\s+(\w+)(?:\s+extends\s+(\w+))?\s*\{`),
	LangTypeScript: regexp.MustCompile(`(?:class|const)\s+(\w+)(?:\s*(?:extends|implements)\s+([^{]+))?(?:\s*=\s*(?:styled|React\.memo|React\.forwardRef))?\s*[{<]`),
	LangKotlin:     regexp.MustCompile(`(?:class|interface|object)\s+(\w+)(?:\s*:\s*([^{]+))?`),
	LangPHP:        regexp.MustCompile(`class\s+(\w+)(?:\s+extends\s+(\w+))?(?:\s+implements\s+([^{]+))?`),
	LangSwift:      regexp.MustCompile(`(?:class|struct|protocol|enum)\s+(\w+)(?:\s*:\s*([^{]+))?`),
	LangCPP:        regexp.MustCompile(`(?:class|struct)\s+(\w+)(?:\s*:\s*(?:public|private|protected)\s+(\w+))?(?:\s*\{)?`),
	LangC:          regexp.MustCompile(`(?:struct|enum|union)\s+(\w+)(?:\s*\{)?`),
}

var functionPatterns = map[string]*regexp.Regexp{
	LangPython:     regexp.MustCompile(`def\s+(\w+)\s*\((.*?)\)(?:\s*->\s*([^:]+))?\s*:`),
	LangJavaScript: regexp.MustCompile(`(?:function\s+(\w+)|(?:const|let|var)\s+(\w+)\s*=\s*(?:function|\([^)]*\)\s*=>))\s*\((.*?)\)`),
	LangTypeScript: regexp.MustCompile(`(?:function|const)\s+(\w+)\s*(?:<[^>]+>)?\s*(?:=\s*)?(?:async\s*)?\((.*?)\)(?:\s*:\s*([^{=]+))?`),
	LangKotlin:     regexp.MustCompile(`fun\s+(\w+)\s*\((.*?)\)(?:\s*:\s*([^{]+))?`),
	LangPHP:        regexp.MustCompile(`function\s+(\w+)\s*\((.*?)\)(?:\s*:\s*([^{]+))?`),
	LangSwift:      regexp.MustCompile(`func\s+(\w+)\s*\((.*?)\)(?:\s*->\s*([^{]+))?`),
	LangCPP:        regexp.MustCompile(`(?:virtual\s+)?(?:[\w:]+\s+)?(\w+)\s*\((.*?)\)(?:\s*(?:const|override|final|noexcept))?\s*(?:\{\s*)?`),
	LangC:          regexp.MustCompile(`(?:static\s+)?(?:[\w*]+\s+)?(\w+)\s*\((.*?)\)(?:\s*\{)?`),
}

// Auxiliary passes shared by the JavaScript and TypeScript analyzers.
var (
	methodPattern       = regexp.MustCompile(`(?:async\s+)?(\w+)\s*\((.*?)\)\s*\{`)
	variablePattern     = regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=\s*([^;]+)`)
	tryCatchPattern     = regexp.MustCompile(`try\s*\{[^}]*\}\s*catch\s*\((\w+)\)`)
	interfacePattern    = regexp.MustCompile(`(?:interface|type)\s+(\w+)(?:\s+extends\s+([^{]+))?`)
	jsxComponentPattern = regexp.MustCompile(`<(\w+)(?:\s+[^>]*)?>`)
)

// Language-specific extras for C and C++.
var (
	templatePattern  = regexp.MustCompile(`template\s*<([^>]+)>`)
	namespacePattern = regexp.MustCompile(`namespace\s+(\w+)\s*\{`)
	macroPattern     = regexp.MustCompile(`#define\s+(\w+)(?:\(([^)]*)\))?\s+(.+)`)
	typedefPattern   = regexp.MustCompile(`typedef\s+(?:struct|enum|union)?\s*(\w+)\s+(\w+);`)
)

// hasCorePatterns reports whether a language has entries in all three core
// tables. A missing entry means the language is effectively unsupported.
func hasCorePatterns(lang string) bool {
	_, okImp := importPatterns[lang]
	_, okClass := classPatterns[lang]
	_, okFn := functionPatterns[lang]
	return okImp && okClass && okFn
}

// PatternCount returns how many extraction passes run for a language: the
// three core rules plus the language's auxiliary passes. Zero means the
// language has no registered rules.
func PatternCount(lang string) int {
	if !hasCorePatterns(lang) {
		return 0
	}
	switch lang {
	case LangJavaScript:
		// methods, variables, try/catch, async flag
		return 3 + 4
	case LangTypeScript:
		// interfaces, JSX components
		return 3 + 2
	case LangCPP:
		// templates, namespaces
		return 3 + 2
	case LangC:
		// macros, typedefs
		return 3 + 2
	default:
		return 3
	}
}
