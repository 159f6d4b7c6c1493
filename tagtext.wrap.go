package tagtext

import "github.com/itsatony/go-tagtext/internal"

// Wrap is an immutable opening/closing delimiter pair, optionally with
// content between them. Its rendered form is opening + content + closing.
type Wrap struct {
	opening string
	closing string
	content string
}

// NewWrap creates a wrap. Pass an empty content for a bare delimiter pair.
func NewWrap(opening, closing, content string) Wrap {
	return Wrap{
		opening: opening,
		closing: closing,
		content: content,
	}
}

// Opening returns the opening delimiter.
func (w Wrap) Opening() string {
	return w.opening
}

// Closing returns the closing delimiter.
func (w Wrap) Closing() string {
	return w.closing
}

// Content returns the text between the delimiters.
func (w Wrap) Content() string {
	return w.content
}

// HasContent reports whether the wrap holds at least one character of content.
func (w Wrap) HasContent() bool {
	return w.content != stringEmpty
}

// String renders opening + content + closing.
func (w Wrap) String() string {
	return w.opening + w.content + w.closing
}

// HasOpening reports whether the rendered wrap starts with a non-empty opening.
func (w Wrap) HasOpening() bool {
	return internal.HasOpening(w.String(), w.opening)
}

// HasClosing reports whether the rendered wrap ends with a non-empty closing.
func (w Wrap) HasClosing() bool {
	return internal.HasClosing(w.String(), w.closing)
}

// IsWrapped reports whether both delimiters are present.
func (w Wrap) IsWrapped() bool {
	return w.HasOpening() && w.HasClosing()
}

// ReplaceOpening renders the wrap with a different opening.
func (w Wrap) ReplaceOpening(opening string) string {
	return opening + w.content + w.closing
}

// ReplaceClosing renders the wrap with a different closing.
func (w Wrap) ReplaceClosing(closing string) string {
	return w.opening + w.content + closing
}

// ReplaceContent renders the wrap around different content.
func (w Wrap) ReplaceContent(content string) string {
	return w.opening + content + w.closing
}

// WithContent returns a copy of the wrap holding content.
func (w Wrap) WithContent(content string) Wrap {
	w.content = content
	return w
}

// WrapText wraps text with the delimiters of w.
func (w Wrap) WrapText(text string) Wrapped {
	return NewWrapped(w.ReplaceContent(text), w)
}

// Parts returns opening, content and closing in render order.
func (w Wrap) Parts() [3]string {
	return [3]string{w.opening, w.content, w.closing}
}
