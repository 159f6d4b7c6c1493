package internal

import (
	"regexp"
	"strings"
)

// AllowedChars filters text down to the characters matched by a pattern.
type AllowedChars struct {
	pattern string
	re      *regexp.Regexp
}

// NewAllowedChars compiles the pattern. An empty pattern falls back to
// DefaultAllowedPattern.
func NewAllowedChars(pattern string) (*AllowedChars, error) {
	if pattern == StringValueEmpty {
		pattern = DefaultAllowedPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &AllowedChars{pattern: pattern, re: re}, nil
}

// Pattern returns the source pattern.
func (a *AllowedChars) Pattern() string {
	return a.pattern
}

// FilterText keeps only the matched characters, in order.
func (a *AllowedChars) FilterText(text string) string {
	matches := a.re.FindAllString(text, -1)
	if len(matches) == 0 {
		return StringValueEmpty
	}
	return strings.Join(matches, StringValueEmpty)
}

// TextContains reports whether text holds at least one allowed character.
func (a *AllowedChars) TextContains(text string) bool {
	return a.re.MatchString(text)
}

// Disallowed returns the characters of text the pattern rejects.
func (a *AllowedChars) Disallowed(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if !a.re.MatchString(string(r)) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
