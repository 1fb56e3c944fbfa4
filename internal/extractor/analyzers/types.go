package analyzers

// Record kind tags. Class-like records, function-like records, and code
// organization records each carry one of these so downstream consumers can
// keep language-specific shapes apart without re-parsing anything.
const (
	KindStructUnion  = "struct/union"
	KindInterface    = "interface/type"
	KindComponent    = "class/component"
	KindJSXComponent = "jsx_component"

	KindFunction = "function"
	KindMethod   = "method"
	KindHook     = "hook"

	KindTemplate  = "template"
	KindNamespace = "namespace"
	KindMacro     = "macro"
	KindTypedef   = "typedef"
)

// ImportRecord is one import/include/require occurrence in a file.
type ImportRecord struct {
	Module string `json:"module"`
	File   string `json:"file"`
}

// ClassRecord is a class, struct, interface, or component declaration.
// Inheritance is the raw base-type text as written: possibly empty, a single
// identifier, or a comma/colon-joined list depending on the language.
type ClassRecord struct {
	Name        string `json:"name"`
	Kind        string `json:"type,omitempty"`
	Inheritance string `json:"inheritance,omitempty"`
	Interfaces  string `json:"interfaces,omitempty"`
	File        string `json:"file"`
}

// FunctionRecord is a function, method, or hook declaration. Parameters is
// the raw text between the parentheses, not split into typed parameters.
type FunctionRecord struct {
	Name       string `json:"name"`
	Kind       string `json:"type,omitempty"`
	Parameters string `json:"parameters"`
	ReturnType string `json:"return_type,omitempty"`
	File       string `json:"file"`
}

// VariableRecord is a const/let/var binding with its right-hand side.
type VariableRecord struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	File  string `json:"file"`
}

// ErrorHandlingRecord is one try/catch site and the exception variable it binds.
type ErrorHandlingRecord struct {
	ExceptionVar string `json:"exception_var"`
	File         string `json:"file"`
}

// PerformanceRecord flags performance-relevant idioms, currently async usage.
type PerformanceRecord struct {
	HasAsync bool   `json:"has_async"`
	File     string `json:"file"`
}

// OrganizationRecord captures structural idioms that are neither types nor
// functions: C++ templates and namespaces, C macros and typedefs. Which
// fields are set depends on Kind.
type OrganizationRecord struct {
	Kind         string `json:"type"`
	Name         string `json:"name,omitempty"`
	Parameters   string `json:"parameters,omitempty"`
	Value        string `json:"value,omitempty"`
	OriginalType string `json:"original_type,omitempty"`
	NewType      string `json:"new_type,omitempty"`
	File         string `json:"file"`
}

// Batch is the ordered result of analyzing one file: every record slice
// preserves within-file match order, and every record carries the file's
// relative path.
type Batch struct {
	Imports       []ImportRecord        `json:"imports,omitempty"`
	Classes       []ClassRecord         `json:"classes,omitempty"`
	Functions     []FunctionRecord      `json:"functions,omitempty"`
	Variables     []VariableRecord      `json:"variables,omitempty"`
	ErrorHandling []ErrorHandlingRecord `json:"error_handling,omitempty"`
	Organization  []OrganizationRecord  `json:"code_organization,omitempty"`
	Performance   []PerformanceRecord   `json:"performance,omitempty"`
}

// Len returns the total record count across all categories.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Imports) + len(b.Classes) + len(b.Functions) +
		len(b.Variables) + len(b.ErrorHandling) + len(b.Organization) + len(b.Performance)
}

// Empty reports whether the batch holds no records at all.
func (b *Batch) Empty() bool {
	return b.Len() == 0
}
