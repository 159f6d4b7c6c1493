package tagtext

import (
	"github.com/itsatony/go-tagtext/internal"
	"go.uber.org/zap"
)

// Wrapper applies one wrap to arbitrary text. Delimiters are filtered through
// an allow-list before use, so only permitted characters ever reach the wrap.
// A wrapper may also carry its own text, see WithText.
type Wrapper struct {
	wrap    Wrap
	text    string
	allowed *internal.AllowedChars
	logger  *zap.Logger
}

// NewWrapper creates a wrapper using the configured default delimiters.
func NewWrapper(opts ...Option) (*Wrapper, error) {
	cfg := buildConfig(opts)
	return newWrapper(cfg.Opening, cfg.Closing, cfg)
}

// NewWrapperWithDelimiters creates a wrapper with explicit delimiters. An
// empty delimiter falls back to the configured default.
func NewWrapperWithDelimiters(opening, closing string, opts ...Option) (*Wrapper, error) {
	cfg := buildConfig(opts)
	if opening == stringEmpty {
		opening = cfg.Opening
	}
	if closing == stringEmpty {
		closing = cfg.Closing
	}
	return newWrapper(opening, closing, cfg)
}

// MustNewWrapper is like NewWrapper but panics on error.
func MustNewWrapper(opts ...Option) *Wrapper {
	w, err := NewWrapper(opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// MustNewWrapperWithDelimiters is like NewWrapperWithDelimiters but panics on
// error.
func MustNewWrapperWithDelimiters(opening, closing string, opts ...Option) *Wrapper {
	w, err := NewWrapperWithDelimiters(opening, closing, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

func newWrapper(opening, closing string, cfg WrapperConfig) (*Wrapper, error) {
	allowed, err := internal.NewAllowedChars(cfg.AllowedChars)
	if err != nil {
		return nil, NewInvalidPatternError(cfg.AllowedChars, err)
	}

	w := &Wrapper{
		allowed: allowed,
		logger:  cfg.Logger,
	}
	w.wrap = NewWrap(w.filter(MetaValueOpening, opening), w.filter(MetaValueClosing, closing), stringEmpty)

	w.logger.Debug(LogMsgWrapperCreated,
		zap.String(LogFieldOpening, w.wrap.opening),
		zap.String(LogFieldClosing, w.wrap.closing),
		zap.String(LogFieldAllowed, allowed.Pattern()),
	)
	return w, nil
}

// filter drops disallowed characters, logging when it had to.
func (w *Wrapper) filter(which, delimiter string) string {
	filtered := w.allowed.FilterText(delimiter)
	if filtered != delimiter {
		w.logger.Warn(LogMsgDelimiterFiltered,
			zap.String(LogFieldName, which),
			zap.String(which, delimiter),
			zap.String(LogFieldFiltered, filtered),
		)
	}
	return filtered
}

// ValidateDelimiters checks that both delimiters are non-empty and made only
// of allowed characters.
func ValidateDelimiters(opening, closing string, opts ...Option) error {
	cfg := buildConfig(opts)
	allowed, err := internal.NewAllowedChars(cfg.AllowedChars)
	if err != nil {
		return NewInvalidPatternError(cfg.AllowedChars, err)
	}
	for _, d := range []struct{ which, value string }{
		{MetaValueOpening, opening},
		{MetaValueClosing, closing},
	} {
		if d.value == stringEmpty {
			return NewEmptyDelimiterError(d.which)
		}
		if bad := allowed.Disallowed(d.value); bad != stringEmpty {
			return NewDisallowedDelimiterError(d.which, d.value, bad, allowed.Pattern())
		}
	}
	return nil
}

// Wrap returns the underlying wrap.
func (w *Wrapper) Wrap() Wrap {
	return w.wrap
}

// Opening returns the filtered opening delimiter.
func (w *Wrapper) Opening() string {
	return w.wrap.opening
}

// Closing returns the filtered closing delimiter.
func (w *Wrapper) Closing() string {
	return w.wrap.closing
}

// AllowedChars returns the allow-list pattern.
func (w *Wrapper) AllowedChars() string {
	return w.allowed.Pattern()
}

// FilterChars keeps only the allowed characters of s.
func (w *Wrapper) FilterChars(s string) string {
	return w.allowed.FilterText(s)
}

// HasAllowedChars reports whether text holds at least one allowed character.
func (w *Wrapper) HasAllowedChars(text string) bool {
	return w.allowed.TextContains(text)
}

// String renders the wrapper's text between its delimiters, or the bare pair
// when it carries no text.
func (w *Wrapper) String() string {
	return w.ToWrap().String()
}

// TextHasOpening reports whether text starts with the opening.
func (w *Wrapper) TextHasOpening(text string) bool {
	return internal.HasOpening(text, w.wrap.opening)
}

// TextHasClosing reports whether text ends with the closing.
func (w *Wrapper) TextHasClosing(text string) bool {
	return internal.HasClosing(text, w.wrap.closing)
}

// IsTextWrapped reports whether text has both the opening and the closing.
func (w *Wrapper) IsTextWrapped(text string) bool {
	return w.TextHasOpening(text) && w.TextHasClosing(text)
}

// UnwrapText removes the closing and then the opening, each only where
// present. Text without either is returned unchanged.
func (w *Wrapper) UnwrapText(text string) string {
	return internal.StripBoundaries(text, w.wrap.opening, w.wrap.closing)
}

// ReplaceOpening replaces the opening at the start of text with value.
func (w *Wrapper) ReplaceOpening(text, value string) string {
	return internal.ReplaceOpening(text, w.wrap.opening, value)
}

// ReplaceClosing replaces the closing at the end of text with value.
func (w *Wrapper) ReplaceClosing(text, value string) string {
	return internal.ReplaceClosing(text, w.wrap.closing, value)
}

// WrapText wraps text with the delimiters.
func (w *Wrapper) WrapText(text string) Wrapped {
	return w.wrap.WrapText(text)
}

// WithText returns a copy of the wrapper carrying text.
func (w *Wrapper) WithText(text string) *Wrapper {
	c := *w
	c.text = text
	return &c
}

// Text returns the carried text.
func (w *Wrapper) Text() string {
	return w.text
}

// ToWrap returns a wrap of the carried text in the wrapper's delimiters.
func (w *Wrapper) ToWrap() Wrap {
	return w.wrap.WithContent(w.text)
}

// WrapOwnText wraps the carried text in the wrapper's delimiters.
func (w *Wrapper) WrapOwnText() Wrapped {
	return w.wrap.WrapText(w.text)
}

// TextWrap renders the carried text between other delimiters.
func (w *Wrapper) TextWrap(opening, closing string) string {
	return NewWrap(opening, closing, w.text).String()
}

// TextUnwrap strips the wrapper's delimiters from the carried text.
func (w *Wrapper) TextUnwrap() string {
	return w.UnwrapText(w.text)
}

// TextReplaceOpening replaces the opening at the start of the carried text.
func (w *Wrapper) TextReplaceOpening(value string) string {
	return w.ReplaceOpening(w.text, value)
}

// TextReplaceClosing replaces the closing at the end of the carried text.
func (w *Wrapper) TextReplaceClosing(value string) string {
	return w.ReplaceClosing(w.text, value)
}
