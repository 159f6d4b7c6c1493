package tagtext

// Tags is a named collection of tags sharing one delimiter pair and,
// optionally, a common attribute set. Iteration follows insertion order. The
// zero value is an empty collection with empty delimiters.
type Tags struct {
	opening string
	closing string
	common  []Pair
	order   []string
	byName  map[string]Tag
}

// NewTags creates a collection holding one tag per name, each with the common
// attributes.
func NewTags(opening, closing string, names []string, common ...Pair) *Tags {
	tags := &Tags{
		opening: opening,
		closing: closing,
		common:  append([]Pair(nil), common...),
		byName:  make(map[string]Tag, len(names)),
	}
	for _, name := range names {
		tags.Set(name)
	}
	return tags
}

// Opening returns the shared opening delimiter.
func (t *Tags) Opening() string {
	return t.opening
}

// Closing returns the shared closing delimiter.
func (t *Tags) Closing() string {
	return t.closing
}

// Set creates or replaces the tag called name. Without attributes the common
// attributes are used. A replaced tag keeps its position.
func (t *Tags) Set(name string, attrs ...Pair) *Tags {
	if len(attrs) == 0 {
		attrs = t.common
	}
	if t.byName == nil {
		t.byName = make(map[string]Tag)
	}
	if _, exists := t.byName[name]; !exists {
		t.order = append(t.order, name)
	}
	t.byName[name] = NewTag(name, t.opening, t.closing, attrs...)
	return t
}

// Get returns the tag called name.
func (t *Tags) Get(name string) (Tag, bool) {
	tag, ok := t.byName[name]
	return tag, ok
}

// Has reports whether a tag called name exists.
func (t *Tags) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Delete removes the tag called name and reports whether it existed.
func (t *Tags) Delete(name string) bool {
	if _, ok := t.byName[name]; !ok {
		return false
	}
	delete(t.byName, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// ForEach calls fn for each tag in insertion order.
func (t *Tags) ForEach(fn func(name string, tag Tag)) *Tags {
	for _, name := range t.order {
		fn(name, t.byName[name])
	}
	return t
}

// Len returns the number of tags.
func (t *Tags) Len() int {
	return len(t.order)
}

// Names returns the tag names in insertion order.
func (t *Tags) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// All returns the tags in insertion order.
func (t *Tags) All() []Tag {
	all := make([]Tag, 0, len(t.order))
	for _, name := range t.order {
		all = append(all, t.byName[name])
	}
	return all
}

// UntagText strips the first tag of the collection whose opening and closing
// tags bound text. Text bounded by none of them is returned unchanged.
func (t *Tags) UntagText(text string) string {
	for _, name := range t.order {
		if tagged, ok := ParseTagged(text, t.byName[name]); ok {
			return tagged.Content()
		}
	}
	return text
}
