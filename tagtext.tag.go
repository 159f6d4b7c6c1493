package tagtext

import (
	"strings"

	"github.com/itsatony/go-tagtext/internal"
)

// Tag is an immutable named entity between an opening and a closing
// delimiter. Attributes only ever appear in the opening tag:
//
//	tag := tagtext.NewTag("url", "[", "]", tagtext.Pair{"href", "/a"})
//	tag.String()       // [url]
//	tag.OpeningTag()   // [url href="/a"]
//	tag.ClosingTag()   // [/url]
type Tag struct {
	wrap       Wrap
	attributes Attributes
}

// NewTag creates a tag. Duplicate attribute names keep their first value.
func NewTag(name, opening, closing string, attrs ...Pair) Tag {
	return Tag{
		wrap:       NewWrap(opening, closing, name),
		attributes: NewAttributes(attrs...),
	}
}

// Name returns the tag name.
func (t Tag) Name() string {
	return t.wrap.content
}

// Opening returns the opening delimiter.
func (t Tag) Opening() string {
	return t.wrap.opening
}

// Closing returns the closing delimiter.
func (t Tag) Closing() string {
	return t.wrap.closing
}

// Attributes returns the attributes of the opening tag.
func (t Tag) Attributes() Attributes {
	return t.attributes
}

// GetAttribute returns the named attribute of the opening tag.
func (t Tag) GetAttribute(name string) (Attribute, bool) {
	return t.attributes.Get(name)
}

// String renders opening + name + closing, without attributes.
func (t Tag) String() string {
	return t.wrap.String()
}

// OpeningTag renders opening + name + attributes + closing.
func (t Tag) OpeningTag() string {
	return t.wrap.ReplaceContent(t.wrap.content + t.attributes.String())
}

// ClosingTag renders opening + "/" + name + closing.
func (t Tag) ClosingTag() string {
	return t.wrap.ReplaceContent(ClosingTagMarker + t.wrap.content)
}

// Tag surrounds content with the opening and closing tags.
func (t Tag) Tag(content string) Tagged {
	return NewTagged(content, t)
}

// TextHasTag reports whether the bare tag occurs anywhere in text.
func (t Tag) TextHasTag(text string) bool {
	return strings.Contains(text, t.String())
}

// TextHasOpeningTag reports whether text starts with the opening tag.
func (t Tag) TextHasOpeningTag(text string) bool {
	return internal.HasOpening(text, t.OpeningTag())
}

// TextHasClosingTag reports whether text ends with the closing tag.
func (t Tag) TextHasClosingTag(text string) bool {
	return internal.HasClosing(text, t.ClosingTag())
}

// UntagText strips the closing tag from the end, then the opening tag from
// the start. Each step is skipped when its tag is not at the boundary.
func (t Tag) UntagText(text string) string {
	return internal.StripBoundaries(text, t.OpeningTag(), t.ClosingTag())
}

// ReplaceTag replaces every occurrence of the bare tag in text with value.
func (t Tag) ReplaceTag(text, value string) string {
	return internal.ReplaceEvery(text, t.String(), value)
}

// ReplaceOpeningTag replaces every occurrence of the opening tag in text.
func (t Tag) ReplaceOpeningTag(text, value string) string {
	return internal.ReplaceEvery(text, t.OpeningTag(), value)
}

// ReplaceClosingTag replaces every occurrence of the closing tag in text.
func (t Tag) ReplaceClosingTag(text, value string) string {
	return internal.ReplaceEvery(text, t.ClosingTag(), value)
}

// WithAttributes returns a copy of the tag with a fresh attribute set.
func (t Tag) WithAttributes(attrs ...Pair) Tag {
	return NewTag(t.Name(), t.Opening(), t.Closing(), attrs...)
}
