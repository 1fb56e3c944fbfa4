// Package detect identifies the kind of project living at a root directory
// from indicator files. Detection is a pure stat check: no file content is
// read and no error is ever returned.
package detect

import (
	"os"
	"path/filepath"
)

// Kind is a detected project kind with its human-readable description.
type Kind struct {
	Tag         string
	Description string
}

// Generic is returned when no rule matches.
var Generic = Kind{Tag: "generic", Description: "Generic Project"}

// rule matches a kind when any indicator exists, or, for rules without
// indicators, when all required files exist.
type rule struct {
	kind       Kind
	indicators []string
	required   []string
}

// Rules are ordered most-specific first: a Laravel tree also carries
// composer.json and must not detect as plain PHP.
var rules = []rule{
	{kind: Kind{"chrome_extension", "Chrome Extension"}, indicators: []string{"manifest.json"}},
	{kind: Kind{"react", "React Application"}, required: []string{"src/App.js", "src/index.js"}},
	{kind: Kind{"laravel", "Laravel Project"}, indicators: []string{"artisan"}},
	{kind: Kind{"wordpress", "WordPress Project"}, indicators: []string{"wp-config.php"}},
	{kind: Kind{"node_js", "Node.js Project"}, indicators: []string{"package.json"}},
	{kind: Kind{"python", "Python Project"}, indicators: []string{"setup.py", "pyproject.toml"}},
	{kind: Kind{"php", "PHP Project"}, indicators: []string{"composer.json", "index.php"}},
}

// Project returns the kind of the project at root, or Generic when no rule
// matches.
func Project(root string) Kind {
	for _, r := range rules {
		if r.matches(root) {
			return r.kind
		}
	}
	return Generic
}

func (r rule) matches(root string) bool {
	for _, name := range r.indicators {
		if fileExists(root, name) {
			return true
		}
	}
	if len(r.indicators) == 0 && len(r.required) > 0 {
		for _, name := range r.required {
			if !fileExists(root, name) {
				return false
			}
		}
		return true
	}
	return false
}

func fileExists(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(name)))
	return err == nil && !info.IsDir()
}
