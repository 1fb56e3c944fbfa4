package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for the secondary classifier:
// - Config extensions classify with content capture, docs by path
// - Extension matching is case-insensitive
// - Everything else, including extensionless names, classifies as none

func TestSecondaryClassifier(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	c := newSecondaryClassifier(opts.ConfigExtensions, opts.DocExtensions)

	tests := []struct {
		fileName string
		want     FileClass
	}{
		{"package.json", ClassConfig},
		{"settings.yaml", ClassConfig},
		{"setup.ini", ClassConfig},
		{"nginx.conf", ClassConfig},
		{"README.md", ClassDoc},
		{"README.MD", ClassDoc},
		{"guide.rst", ClassDoc},
		{"main.py", ClassNone},
		{"Makefile", ClassNone},
		{"data.csv", ClassNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.fileName), "file %q", tt.fileName)
	}
}
