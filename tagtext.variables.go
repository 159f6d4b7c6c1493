package tagtext

// Variables is an ordered collection of variables keyed by name. It owns its
// members: variables passed in are copied. The zero value is an empty
// collection.
type Variables struct {
	order  []string
	byName map[string]*Variable
}

// NewVariables copies vars into a new collection. On duplicate names the
// first one wins.
func NewVariables(vars ...*Variable) *Variables {
	vs := &Variables{byName: make(map[string]*Variable, len(vars))}
	for _, v := range vars {
		if v == nil || vs.Has(v.Name()) {
			continue
		}
		vs.put(v.Clone())
	}
	return vs
}

// NewVariablesFromNames declares valueless variables.
func NewVariablesFromNames(names ...string) *Variables {
	vars := make([]*Variable, 0, len(names))
	for _, name := range names {
		vars = append(vars, NewVariable(name))
	}
	return NewVariables(vars...)
}

// NewVariablesFromPairs declares variables with values.
func NewVariablesFromPairs(pairs ...Pair) *Variables {
	vars := make([]*Variable, 0, len(pairs))
	for _, p := range pairs {
		vars = append(vars, NewVariableWithValue(p.Name(), p.Value()))
	}
	return NewVariables(vars...)
}

func (vs *Variables) put(v *Variable) {
	if vs.byName == nil {
		vs.byName = make(map[string]*Variable)
	}
	if _, exists := vs.byName[v.Name()]; !exists {
		vs.order = append(vs.order, v.Name())
	}
	vs.byName[v.Name()] = v
}

// Set stores a copy of v, replacing any variable of the same name in place.
func (vs *Variables) Set(v *Variable) *Variables {
	if v != nil {
		vs.put(v.Clone())
	}
	return vs
}

// SetValue stores value on the named variable and reports whether it exists.
func (vs *Variables) SetValue(name, value string) bool {
	v, ok := vs.byName[name]
	if !ok {
		return false
	}
	v.SetValue(value)
	return true
}

// Get returns the named variable.
func (vs *Variables) Get(name string) (*Variable, bool) {
	v, ok := vs.byName[name]
	return v, ok
}

// Has reports whether the named variable exists.
func (vs *Variables) Has(name string) bool {
	_, ok := vs.byName[name]
	return ok
}

// Delete removes the named variable and reports whether it existed.
func (vs *Variables) Delete(name string) bool {
	if _, ok := vs.byName[name]; !ok {
		return false
	}
	delete(vs.byName, name)
	for i, n := range vs.order {
		if n == name {
			vs.order = append(vs.order[:i], vs.order[i+1:]...)
			break
		}
	}
	return true
}

// ForEach calls fn for each variable in insertion order.
func (vs *Variables) ForEach(fn func(name string, v *Variable)) *Variables {
	for _, name := range vs.order {
		fn(name, vs.byName[name])
	}
	return vs
}

// Len returns the number of variables.
func (vs *Variables) Len() int {
	return len(vs.order)
}

// Names returns the variable names in insertion order.
func (vs *Variables) Names() []string {
	names := make([]string, len(vs.order))
	copy(names, vs.order)
	return names
}

// All returns the variables in insertion order.
func (vs *Variables) All() []*Variable {
	all := make([]*Variable, 0, len(vs.order))
	for _, name := range vs.order {
		all = append(all, vs.byName[name])
	}
	return all
}

// Map returns name -> value for every variable.
func (vs *Variables) Map() map[string]string {
	m := make(map[string]string, len(vs.order))
	for name, v := range vs.byName {
		m[name] = v.value
	}
	return m
}

// Clone returns a deep copy.
func (vs *Variables) Clone() *Variables {
	return NewVariables(vs.All()...)
}

// ReplaceAll substitutes every variable into text in insertion order.
func (vs *Variables) ReplaceAll(text string) string {
	for _, name := range vs.order {
		text = vs.byName[name].ReplaceVariable(text)
	}
	return text
}
