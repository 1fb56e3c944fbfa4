package extractor

import (
	"path/filepath"
	"strings"
)

// FileClass is the secondary classification of a file, orthogonal to its
// language tag: a file with no analyzable language can still be config or
// documentation.
type FileClass int

const (
	ClassNone FileClass = iota
	ClassConfig
	ClassDoc
)

// secondaryClassifier sorts files into config and documentation sets by
// extension. Config files have their raw content captured; documentation is
// recorded by path only.
type secondaryClassifier struct {
	configExts map[string]struct{}
	docExts    map[string]struct{}
}

func newSecondaryClassifier(configExtensions, docExtensions []string) *secondaryClassifier {
	c := &secondaryClassifier{
		configExts: make(map[string]struct{}, len(configExtensions)),
		docExts:    make(map[string]struct{}, len(docExtensions)),
	}
	for _, ext := range configExtensions {
		c.configExts[strings.ToLower(ext)] = struct{}{}
	}
	for _, ext := range docExtensions {
		c.docExts[strings.ToLower(ext)] = struct{}{}
	}
	return c
}

// Classify returns the secondary class of a file name.
func (c *secondaryClassifier) Classify(fileName string) FileClass {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return ClassNone
	}
	if _, ok := c.configExts[ext]; ok {
		return ClassConfig
	}
	if _, ok := c.docExts[ext]; ok {
		return ClassDoc
	}
	return ClassNone
}
