package tagtext

// Pair is a name/value declaration used to build attributes and variables.
//
//	tagtext.NewTag("url", "[", "]", tagtext.Pair{"href", "https://example.com"})
type Pair [2]string

// NewPair creates a pair.
func NewPair(name, value string) Pair {
	return Pair{name, value}
}

// Name returns the first element.
func (p Pair) Name() string {
	return p[0]
}

// Value returns the second element.
func (p Pair) Value() string {
	return p[1]
}
