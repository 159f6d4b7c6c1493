package tagtext

import "fmt"

// Kind identifies the value types of this package.
type Kind int

// Kind constants
const (
	KindUnknown Kind = iota
	KindWrap
	KindWrapped
	KindAttribute
	KindTag
	KindTagged
	KindVariable
	KindTemplate
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindWrap:
		return KindNameWrap
	case KindWrapped:
		return KindNameWrapped
	case KindAttribute:
		return KindNameAttribute
	case KindTag:
		return KindNameTag
	case KindTagged:
		return KindNameTagged
	case KindVariable:
		return KindNameVariable
	case KindTemplate:
		return KindNameTemplate
	default:
		return KindNameUnknown
	}
}

// Value is implemented by every value type of this package and by nothing
// else. Switch on the concrete type (or Kind) instead of probing for methods.
type Value interface {
	fmt.Stringer
	Kind() Kind
	sealed()
}

func (Wrap) sealed()      {}
func (Wrapped) sealed()   {}
func (Attribute) sealed() {}
func (Tag) sealed()       {}
func (Tagged) sealed()    {}
func (*Variable) sealed() {}
func (*Template) sealed() {}

// Kind implementations
func (Wrap) Kind() Kind      { return KindWrap }
func (Wrapped) Kind() Kind   { return KindWrapped }
func (Attribute) Kind() Kind { return KindAttribute }
func (Tag) Kind() Kind       { return KindTag }
func (Tagged) Kind() Kind    { return KindTagged }
func (*Variable) Kind() Kind { return KindVariable }
func (*Template) Kind() Kind { return KindTemplate }

// ContentOf returns what a value carries once its delimiters are removed:
// the wrapped content, the tag name, the tagged content, the variable value,
// the attribute value or the raw template.
func ContentOf(v Value) string {
	switch x := v.(type) {
	case Wrap:
		return x.Content()
	case Wrapped:
		return x.Unwrap()
	case Attribute:
		return x.Value()
	case Tag:
		return x.Name()
	case Tagged:
		return x.Content()
	case *Variable:
		value, _ := x.Value()
		return value
	case *Template:
		return x.Raw()
	default:
		return stringEmpty
	}
}
