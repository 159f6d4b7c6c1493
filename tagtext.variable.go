package tagtext

// Variable is a {name} placeholder with an optional value.
type Variable struct {
	tag      Tag
	value    string
	hasValue bool
}

// NewVariable creates a variable with no value.
func NewVariable(name string) *Variable {
	return &Variable{tag: FlavorVariable.NewTag(name)}
}

// NewVariableWithValue creates a variable holding value.
func NewVariableWithValue(name, value string) *Variable {
	v := NewVariable(name)
	v.SetValue(value)
	return v
}

// Name returns the variable name.
func (v *Variable) Name() string {
	return v.tag.Name()
}

// Tag returns the {name} tag behind the variable.
func (v *Variable) Tag() Tag {
	return v.tag
}

// String renders the placeholder, {name}.
func (v *Variable) String() string {
	return v.tag.String()
}

// Value returns the stored value and whether one was set.
func (v *Variable) Value() (string, bool) {
	return v.value, v.hasValue
}

// SetValue stores value.
func (v *Variable) SetValue(value string) *Variable {
	v.value = value
	v.hasValue = true
	return v
}

// ClearValue removes the stored value.
func (v *Variable) ClearValue() *Variable {
	v.value = stringEmpty
	v.hasValue = false
	return v
}

// ReplaceVariable replaces every {name} in text with the stored value, or
// with "" when none is set.
func (v *Variable) ReplaceVariable(text string) string {
	return v.tag.ReplaceTag(text, v.value)
}

// ReplaceVariableWith replaces every {name} in text with override, ignoring
// the stored value.
func (v *Variable) ReplaceVariableWith(text, override string) string {
	return v.tag.ReplaceTag(text, override)
}

// TextHasVariable reports whether {name} occurs in text.
func (v *Variable) TextHasVariable(text string) bool {
	return v.tag.TextHasTag(text)
}

// Pair returns name and value.
func (v *Variable) Pair() Pair {
	return Pair{v.Name(), v.value}
}

// Map returns name -> value.
func (v *Variable) Map() map[string]string {
	return map[string]string{v.Name(): v.value}
}

// Clone returns an independent copy.
func (v *Variable) Clone() *Variable {
	c := *v
	return &c
}
