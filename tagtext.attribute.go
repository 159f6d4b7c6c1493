package tagtext

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Attribute is an immutable name/value pair rendered as name="value".
// The value is not escaped.
type Attribute struct {
	name  string
	value string
}

// NewAttribute creates an attribute.
func NewAttribute(name, value string) Attribute {
	return Attribute{name: name, value: value}
}

// Name returns the attribute name.
func (a Attribute) Name() string {
	return a.name
}

// Value returns the attribute value.
func (a Attribute) Value() string {
	return a.value
}

// String renders name="value".
func (a Attribute) String() string {
	return a.name + AttributeAssign + AttributeQuote + a.value + AttributeQuote
}

// Pair returns the attribute as a name/value pair.
func (a Attribute) Pair() Pair {
	return Pair{a.name, a.value}
}

// Map returns the attribute as a single-entry map.
func (a Attribute) Map() map[string]string {
	return map[string]string{a.name: a.value}
}

// Attributes is an ordered set of attributes keyed by name. On duplicate
// names the first occurrence wins and later ones are dropped.
type Attributes struct {
	order []string
	byKey map[string]Attribute
}

// NewAttributes builds attributes from pairs in order.
func NewAttributes(pairs ...Pair) Attributes {
	attrs := Attributes{
		order: make([]string, 0, len(pairs)),
		byKey: make(map[string]Attribute, len(pairs)),
	}
	for _, p := range pairs {
		if _, exists := attrs.byKey[p.Name()]; exists {
			continue
		}
		attrs.order = append(attrs.order, p.Name())
		attrs.byKey[p.Name()] = NewAttribute(p.Name(), p.Value())
	}
	return attrs
}

// Get returns the attribute with the given name.
func (a Attributes) Get(name string) (Attribute, bool) {
	attr, ok := a.byKey[name]
	return attr, ok
}

// Has reports whether an attribute with the given name exists.
func (a Attributes) Has(name string) bool {
	_, ok := a.byKey[name]
	return ok
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.order)
}

// Names returns the attribute names in insertion order.
func (a Attributes) Names() []string {
	names := make([]string, len(a.order))
	copy(names, a.order)
	return names
}

// All returns the attributes in insertion order.
func (a Attributes) All() []Attribute {
	all := make([]Attribute, 0, len(a.order))
	for _, name := range a.order {
		all = append(all, a.byKey[name])
	}
	return all
}

// Pairs returns the attributes as pairs in insertion order.
func (a Attributes) Pairs() []Pair {
	pairs := make([]Pair, 0, len(a.order))
	for _, name := range a.order {
		pairs = append(pairs, a.byKey[name].Pair())
	}
	return pairs
}

// Map returns name -> value for every attribute.
func (a Attributes) Map() map[string]string {
	m := make(map[string]string, len(a.order))
	for name, attr := range a.byKey {
		m[name] = attr.value
	}
	return m
}

// String renders the attributes joined by single spaces with one leading
// space, ready to follow a tag name. Empty attributes render as "".
func (a Attributes) String() string {
	if len(a.order) == 0 {
		return stringEmpty
	}
	var sb strings.Builder
	for _, name := range a.order {
		sb.WriteString(AttributeSeparator)
		sb.WriteString(a.byKey[name].String())
	}
	return sb.String()
}

// MarshalYAML encodes the attributes as an ordered mapping.
func (a Attributes) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range a.order {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlTagStr, Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlTagStr, Value: a.byKey[name].value},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes an ordered mapping, keeping the first of any
// duplicate names.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		*a = NewAttributes()
		return nil
	}
	var pairs []Pair
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, Pair{node.Content[i].Value, node.Content[i+1].Value})
	}
	*a = NewAttributes(pairs...)
	return nil
}
