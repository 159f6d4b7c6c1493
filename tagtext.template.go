package tagtext

import (
	"github.com/itsatony/go-tagtext/internal"
)

// Template is raw text with {name} placeholders and the variables recognized
// in it. The raw text never changes; variable values may. Declared names are
// trusted as given: NewTemplate does not check them against the raw text, use
// Validate for that.
type Template struct {
	raw       string
	variables *Variables
}

// NewTemplate creates a template. Variables are copied.
func NewTemplate(raw string, vars ...*Variable) *Template {
	return &Template{
		raw:       raw,
		variables: NewVariables(vars...),
	}
}

// NewTemplateFromNames creates a template declaring valueless variables.
func NewTemplateFromNames(raw string, names ...string) *Template {
	return &Template{raw: raw, variables: NewVariablesFromNames(names...)}
}

// NewTemplateFromPairs creates a template declaring variables with values.
func NewTemplateFromPairs(raw string, pairs ...Pair) *Template {
	return &Template{raw: raw, variables: NewVariablesFromPairs(pairs...)}
}

// Raw returns the unsubstituted text.
func (t *Template) Raw() string {
	return t.raw
}

// String returns the unsubstituted text.
func (t *Template) String() string {
	return t.raw
}

// Variables returns the declared variables.
func (t *Template) Variables() *Variables {
	return t.variables
}

// GetVariable returns the named variable.
func (t *Template) GetVariable(name string) (*Variable, bool) {
	return t.variables.Get(name)
}

// SetVariable stores value on a declared variable and reports whether it
// was declared.
func (t *Template) SetVariable(name, value string) bool {
	return t.variables.SetValue(name, value)
}

// ForEachVariable calls fn for each variable in declaration order.
func (t *Template) ForEachVariable(fn func(name string, v *Variable)) *Template {
	t.variables.ForEach(fn)
	return t
}

// Render substitutes every variable's current value into a fresh copy of the
// raw text, in declaration order.
func (t *Template) Render() string {
	return t.variables.ReplaceAll(t.raw)
}

// Placeholders lists the distinct {name} placeholders in the raw text in
// order of first appearance.
func (t *Template) Placeholders() []string {
	return internal.Placeholders(t.raw)
}

// Validate compares the placeholders in the raw text with the declared
// variables.
func (t *Template) Validate() *ValidationResult {
	result := &ValidationResult{}
	found := make(map[string]struct{})
	for _, name := range t.Placeholders() {
		found[name] = struct{}{}
		if !t.variables.Has(name) {
			result.Undeclared = append(result.Undeclared, name)
		}
	}
	for _, name := range t.variables.Names() {
		if _, ok := found[name]; !ok && !t.variables.byName[name].TextHasVariable(t.raw) {
			result.Unused = append(result.Unused, name)
		}
	}
	return result
}

// Clone returns a template with the same raw text and copied variables.
func (t *Template) Clone() *Template {
	return &Template{raw: t.raw, variables: t.variables.Clone()}
}

// ValidationResult lists mismatches between a template's placeholders and its
// declared variables.
type ValidationResult struct {
	// Undeclared placeholders appear in the raw text but are not declared.
	// They survive substitution untouched.
	Undeclared []string
	// Unused variables are declared but never appear in the raw text.
	Unused []string
}

// IsValid reports whether every placeholder is declared.
func (r *ValidationResult) IsValid() bool {
	return len(r.Undeclared) == 0
}

// HasWarnings reports whether some declared variable is unused.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Unused) > 0
}

// Err returns a validation error for undeclared placeholders, or for unused
// variables when strict is set.
func (r *ValidationResult) Err(strict bool) error {
	if len(r.Undeclared) > 0 {
		return NewUndeclaredPlaceholderError(r.Undeclared)
	}
	if strict && len(r.Unused) > 0 {
		return NewUnusedVariableError(r.Unused)
	}
	return nil
}
