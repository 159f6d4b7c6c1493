package internal

import (
	"regexp"
	"strings"
)

// HasOpening reports whether text starts with a non-empty opening.
func HasOpening(text, opening string) bool {
	return opening != StringValueEmpty && strings.HasPrefix(text, opening)
}

// HasClosing reports whether text ends with a non-empty closing.
func HasClosing(text, closing string) bool {
	return closing != StringValueEmpty && strings.HasSuffix(text, closing)
}

// IsBounded reports whether text starts with opening and ends with closing.
// Unlike HasOpening and HasClosing, empty delimiters match.
func IsBounded(text, opening, closing string) bool {
	return strings.HasPrefix(text, opening) && strings.HasSuffix(text, closing)
}

// Inner returns text between a leading opening and a trailing closing of the
// given lengths. Overlapping delimiters leave nothing inside.
func Inner(text string, openingLen, closingLen int) string {
	end := len(text) - closingLen
	if end < openingLen {
		return StringValueEmpty
	}
	return text[openingLen:end]
}

// ReplaceOpening swaps the opening at the start of text for value.
// Text without the opening is returned unchanged.
func ReplaceOpening(text, opening, value string) string {
	if !HasOpening(text, opening) {
		return text
	}
	return value + text[len(opening):]
}

// ReplaceClosing swaps the closing at the end of text for value.
// Text without the closing is returned unchanged.
func ReplaceClosing(text, closing, value string) string {
	if !HasClosing(text, closing) {
		return text
	}
	return text[:len(text)-len(closing)] + value
}

// StripBoundaries removes the closing and then the opening, each only if
// present at its boundary.
func StripBoundaries(text, opening, closing string) string {
	text = ReplaceClosing(text, closing, StringValueEmpty)
	return ReplaceOpening(text, opening, StringValueEmpty)
}

// ReplaceEvery replaces every occurrence of token in text with value.
// An empty token leaves text unchanged.
func ReplaceEvery(text, token, value string) string {
	if token == StringValueEmpty {
		return text
	}
	return strings.Join(strings.Split(text, token), value)
}

var placeholderRe = regexp.MustCompile(PlaceholderPattern)

// Placeholders returns the distinct {name} placeholder names found in text,
// in order of first occurrence.
func Placeholders(text string) []string {
	matches := placeholderRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
