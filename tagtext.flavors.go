package tagtext

import "strings"

// Flavor is a named delimiter pair.
type Flavor int

// Flavor constants
const (
	FlavorBBCode Flavor = iota
	FlavorHTML
	FlavorVariable
)

// String returns the string representation of the flavor
func (f Flavor) String() string {
	switch f {
	case FlavorHTML:
		return FlavorNameHTML
	case FlavorVariable:
		return FlavorNameVariable
	default:
		return FlavorNameBBCode
	}
}

// Delimiters returns the opening and closing delimiters of the flavor.
func (f Flavor) Delimiters() (string, string) {
	switch f {
	case FlavorHTML:
		return HTMLOpening, HTMLClosing
	case FlavorVariable:
		return VariableOpening, VariableClosing
	default:
		return BBCodeOpening, BBCodeClosing
	}
}

// NewTag creates a tag with the flavor's delimiters.
func (f Flavor) NewTag(name string, attrs ...Pair) Tag {
	opening, closing := f.Delimiters()
	return NewTag(name, opening, closing, attrs...)
}

// NewTags creates a tag collection with the flavor's delimiters.
func (f Flavor) NewTags(names []string, common ...Pair) *Tags {
	opening, closing := f.Delimiters()
	return NewTags(opening, closing, names, common...)
}

// ParseFlavor resolves a flavor name, case-insensitively.
func ParseFlavor(name string) (Flavor, bool) {
	switch strings.ToLower(name) {
	case FlavorNameBBCode:
		return FlavorBBCode, true
	case FlavorNameHTML:
		return FlavorHTML, true
	case FlavorNameVariable:
		return FlavorVariable, true
	default:
		return FlavorBBCode, false
	}
}

// NewBBCode creates a [name] tag.
func NewBBCode(name string, attrs ...Pair) Tag {
	return FlavorBBCode.NewTag(name, attrs...)
}

// NewHTML creates a <name> tag.
func NewHTML(name string, attrs ...Pair) Tag {
	return FlavorHTML.NewTag(name, attrs...)
}

// NewBBCodeTags creates a collection of [name] tags.
func NewBBCodeTags(names ...string) *Tags {
	return FlavorBBCode.NewTags(names)
}

// NewHTMLTags creates a collection of <name> tags.
func NewHTMLTags(names ...string) *Tags {
	return FlavorHTML.NewTags(names)
}
