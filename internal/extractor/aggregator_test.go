package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/project-prism/internal/extractor/analyzers"
)

// Test Plan for the aggregator:
// - Batches merge into the right categories in order
// - Raw imports keep every occurrence while the presence map deduplicates
// - Records with foreign or missing provenance are dropped with a diagnostic
// - Config and documentation files land in the file list too

func TestAggregatorMerge(t *testing.T) {
	t.Parallel()

	var diags []Diagnostic
	agg := newAggregator("/p", func(d Diagnostic) { diags = append(diags, d) })

	agg.addCodeFile("a.js", "javascript", "", &analyzers.Batch{
		Imports: []analyzers.ImportRecord{
			{Module: "lodash", File: "a.js"},
			{Module: "react", File: "a.js"},
		},
		Classes: []analyzers.ClassRecord{{Name: "App", File: "a.js"}},
	})
	agg.addCodeFile("b.js", "javascript", "", &analyzers.Batch{
		Imports: []analyzers.ImportRecord{{Module: "lodash", File: "b.js"}},
	})

	m := agg.model
	require.Len(t, m.Files, 2)
	assert.Equal(t, "a.js", m.Files[0].Path)
	assert.Equal(t, "javascript", m.Files[0].Language)

	// Test: raw imports keep both lodash occurrences, the set keeps one.
	require.Len(t, m.Imports, 3)
	assert.Equal(t, []string{"lodash", "react"}, m.Dependencies.List())

	require.Len(t, m.Classes, 1)
	assert.Empty(t, diags)
}

func TestAggregatorDropsForeignProvenance(t *testing.T) {
	t.Parallel()

	var diags []Diagnostic
	agg := newAggregator("/p", func(d Diagnostic) { diags = append(diags, d) })

	agg.addCodeFile("a.py", "python", "", &analyzers.Batch{
		Imports: []analyzers.ImportRecord{{Module: "os", File: "a.py"}},
		Classes: []analyzers.ClassRecord{
			{Name: "Good", File: "a.py"},
			{Name: "Foreign", File: "other.py"},
			{Name: "Missing", File: ""},
		},
	})

	m := agg.model
	// Test: the defective records are dropped, the good ones survive.
	require.Len(t, m.Classes, 1)
	assert.Equal(t, "Good", m.Classes[0].Name)
	require.Len(t, m.Imports, 1)

	require.Len(t, diags, 2)
	assert.Equal(t, SkipBadProvenance, diags[0].Reason)
	assert.Equal(t, "a.py", diags[0].Path)
}

func TestAggregatorConfigAndDocs(t *testing.T) {
	t.Parallel()

	agg := newAggregator("/p", func(Diagnostic) {})
	agg.addConfigFile("settings.json", `{"a":1}`)
	agg.addDocFile("README.md")

	m := agg.model
	require.Len(t, m.ConfigFiles, 1)
	assert.Equal(t, "settings.json", m.ConfigFiles[0].File)
	assert.Equal(t, `{"a":1}`, m.ConfigFiles[0].Content)
	assert.Equal(t, []string{"README.md"}, m.Documentation)

	// Test: classified files appear in the file list for provenance.
	require.Len(t, m.Files, 2)
	assert.Equal(t, "settings.json", m.Files[0].Path)
	assert.Equal(t, "", m.Files[0].Language)
	assert.Equal(t, "README.md", m.Files[1].Path)
}

func TestAggregatorNilBatch(t *testing.T) {
	t.Parallel()

	agg := newAggregator("/p", func(Diagnostic) {})
	agg.addCodeFile("a.py", "python", "", nil)

	require.Len(t, agg.model.Files, 1)
	assert.Equal(t, 0, agg.model.RecordCount())
}
