package analyzers

import (
	"path/filepath"
	"strings"
)

// Language tags. A tag names one set of extraction rules; the empty string
// means the file is not eligible for structural analysis.
const (
	LangPython     = "python"
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangKotlin     = "kotlin"
	LangPHP        = "php"
	LangSwift      = "swift"
	LangCPP        = "cpp"
	LangC          = "c"
)

// DetectLanguage maps a file name to its language tag based on extension.
// Unrecognized extensions yield the empty string; such files are skipped for
// structural analysis but may still classify as config or documentation.
func DetectLanguage(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".py":
		return LangPython
	case ".js":
		return LangJavaScript
	case ".ts", ".tsx":
		return LangTypeScript
	case ".kt":
		return LangKotlin
	case ".php":
		return LangPHP
	case ".swift":
		return LangSwift
	case ".cpp", ".hpp":
		return LangCPP
	case ".c", ".h":
		return LangC
	default:
		return ""
	}
}

// Extensions returns the file extensions that map to the given language tag,
// in the order they are documented. Unknown tags yield nil.
func Extensions(lang string) []string {
	switch lang {
	case LangPython:
		return []string{".py"}
	case LangJavaScript:
		return []string{".js"}
	case LangTypeScript:
		return []string{".ts", ".tsx"}
	case LangKotlin:
		return []string{".kt"}
	case LangPHP:
		return []string{".php"}
	case LangSwift:
		return []string{".swift"}
	case LangCPP:
		return []string{".cpp", ".hpp"}
	case LangC:
		return []string{".c", ".h"}
	default:
		return nil
	}
}
