package tagtext

// Tagged is content surrounded by the opening and closing tags of a Tag.
type Tagged struct {
	content    string
	openingTag string
	closingTag string
}

// NewTagged tags content with tag.
func NewTagged(content string, tag Tag) Tagged {
	return Tagged{
		content:    content,
		openingTag: tag.OpeningTag(),
		closingTag: tag.ClosingTag(),
	}
}

// ParseTagged recognizes text produced by tagging some content with tag and
// recovers that content. It reports false when text does not start with the
// opening tag and end with the closing tag.
func ParseTagged(text string, tag Tag) (Tagged, bool) {
	if !tag.TextHasOpeningTag(text) || !tag.TextHasClosingTag(text) {
		return Tagged{}, false
	}
	if len(text) < len(tag.OpeningTag())+len(tag.ClosingTag()) {
		return Tagged{}, false
	}
	return NewTagged(tag.UntagText(text), tag), true
}

// Content returns the untagged content.
func (t Tagged) Content() string {
	return t.content
}

// OpeningTag returns the opening tag.
func (t Tagged) OpeningTag() string {
	return t.openingTag
}

// ClosingTag returns the closing tag.
func (t Tagged) ClosingTag() string {
	return t.closingTag
}

// Untag returns the content without its tags.
func (t Tagged) Untag() string {
	return t.content
}

// String renders opening tag + content + closing tag.
func (t Tagged) String() string {
	return t.openingTag + t.content + t.closingTag
}
