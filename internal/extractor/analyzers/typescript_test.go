package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for typescriptAnalyzer:
// - Hook naming convention: use + uppercase tags a hook, otherwise function
// - A function named exactly "use" stays a plain function
// - Interfaces and type aliases become interface/type class records
// - Classes become class/component records with trimmed base text
// - Return type text is captured and trimmed
// - JSX component pass runs only for .tsx files and only for capitalized tags
// - Imports capture the quoted module path

func TestTypeScriptAnalyzer_HookDetection(t *testing.T) {
	t.Parallel()

	content := "const useFetch = (url: string) => {};\nconst fetchData = (url: string) => {};\n"
	batch := NewTypeScriptAnalyzer().Analyze(content, "src/hooks.ts")

	require.Len(t, batch.Functions, 2)

	// Test: use + uppercase => hook
	assert.Equal(t, "useFetch", batch.Functions[0].Name)
	assert.Equal(t, KindHook, batch.Functions[0].Kind)
	assert.Equal(t, "url: string", batch.Functions[0].Parameters)

	// Test: no use prefix => function
	assert.Equal(t, "fetchData", batch.Functions[1].Name)
	assert.Equal(t, KindFunction, batch.Functions[1].Kind)
}

func TestTypeScriptAnalyzer_HookNameEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"useFetch", true},
		{"useState", true},
		{"use", false},
		{"user", false},
		{"username", false},
		{"fetchData", false},
		{"Use", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isHookName(tt.name), "name: %s", tt.name)
	}
}

func TestTypeScriptAnalyzer_InterfacesAndClasses(t *testing.T) {
	t.Parallel()

	content := `import { api } from './api';

interface User extends Base {
  name: string;
}

class UserStore extends Store {
  users = [];
}

function loadUsers(limit: number): Promise {
  return api.get(limit);
}
`
	batch := NewTypeScriptAnalyzer().Analyze(content, "src/store.ts")

	require.Len(t, batch.Imports, 1)
	assert.Equal(t, "./api", batch.Imports[0].Module)

	// Test: interface pass emits interface/type, class pass emits
	// class/component; both run over the same text
	require.Len(t, batch.Classes, 2)
	assert.Equal(t, "User", batch.Classes[0].Name)
	assert.Equal(t, KindInterface, batch.Classes[0].Kind)
	assert.Equal(t, "Base", batch.Classes[0].Inheritance)

	assert.Equal(t, "UserStore", batch.Classes[1].Name)
	assert.Equal(t, KindComponent, batch.Classes[1].Kind)
	assert.Equal(t, "Store", batch.Classes[1].Inheritance)

	require.Len(t, batch.Functions, 1)
	assert.Equal(t, "loadUsers", batch.Functions[0].Name)
	assert.Equal(t, "limit: number", batch.Functions[0].Parameters)
	assert.Equal(t, "Promise", batch.Functions[0].ReturnType)
}

func TestTypeScriptAnalyzer_JSXComponentsOnlyInTSX(t *testing.T) {
	t.Parallel()

	content := `import React from 'react';

const App = () => {
  return (
    <div>
      <Header title="hi" />
      <p>text</p>
    </div>
  );
};
`
	// Test: .tsx captures capitalized element names only
	batch := NewTypeScriptAnalyzer().Analyze(content, "src/app.tsx")

	var jsx []ClassRecord
	for _, c := range batch.Classes {
		if c.Kind == KindJSXComponent {
			jsx = append(jsx, c)
		}
	}
	require.Len(t, jsx, 1)
	assert.Equal(t, "Header", jsx[0].Name)
	assert.Equal(t, "src/app.tsx", jsx[0].File)

	// Test: the same content under a .ts path yields no JSX records
	batch = NewTypeScriptAnalyzer().Analyze(content, "src/app.ts")
	for _, c := range batch.Classes {
		assert.NotEqual(t, KindJSXComponent, c.Kind)
	}
}
