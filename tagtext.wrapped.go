package tagtext

import "github.com/itsatony/go-tagtext/internal"

// Wrapped is text that may be bounded by the delimiters of a Wrap. The
// delimiters are recorded only when the match was confirmed at construction.
type Wrapped struct {
	text      string
	opening   string
	closing   string
	confirmed bool
}

// NewWrapped records the delimiters of w if text starts with its opening and
// ends with its closing.
func NewWrapped(text string, w Wrap) Wrapped {
	wrapped := Wrapped{text: text}
	if internal.IsBounded(text, w.opening, w.closing) {
		wrapped.opening = w.opening
		wrapped.closing = w.closing
		wrapped.confirmed = true
	}
	return wrapped
}

// NewWrappedText creates a Wrapped with no delimiters confirmed.
func NewWrappedText(text string) Wrapped {
	return Wrapped{text: text}
}

// Text returns the full text, delimiters included.
func (w Wrapped) Text() string {
	return w.text
}

// String returns the full text.
func (w Wrapped) String() string {
	return w.text
}

// Opening returns the confirmed opening delimiter.
func (w Wrapped) Opening() (string, bool) {
	return w.opening, w.confirmed
}

// Closing returns the confirmed closing delimiter.
func (w Wrapped) Closing() (string, bool) {
	return w.closing, w.confirmed
}

// IsWrapped reports whether delimiters were confirmed.
func (w Wrapped) IsWrapped() bool {
	return w.confirmed
}

// Unwrap strips the confirmed delimiters from the ends of the text. Only the
// exact ends are trimmed; delimiters inside the content are left alone.
func (w Wrapped) Unwrap() string {
	if !w.confirmed {
		return w.text
	}
	return internal.Inner(w.text, len(w.opening), len(w.closing))
}
