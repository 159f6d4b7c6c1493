package tagtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindWrap, KindNameWrap},
		{KindWrapped, KindNameWrapped},
		{KindAttribute, KindNameAttribute},
		{KindTag, KindNameTag},
		{KindTagged, KindNameTagged},
		{KindVariable, KindNameVariable},
		{KindTemplate, KindNameTemplate},
		{KindUnknown, KindNameUnknown},
		{Kind(99), KindNameUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestContentOf(t *testing.T) {
	tag := NewTag("b", "[", "]")

	tests := []struct {
		name     string
		value    Value
		kind     Kind
		rendered string
		content  string
	}{
		{name: "wrap", value: NewWrap("[", "]", "x"), kind: KindWrap, rendered: "[x]", content: "x"},
		{name: "wrapped", value: NewWrapped("<x>", NewWrap("<", ">", "")), kind: KindWrapped, rendered: "<x>", content: "x"},
		{name: "attribute", value: NewAttribute("a", "1"), kind: KindAttribute, rendered: `a="1"`, content: "1"},
		{name: "tag", value: tag, kind: KindTag, rendered: "[b]", content: "b"},
		{name: "tagged", value: tag.Tag("bold"), kind: KindTagged, rendered: "[b]bold[/b]", content: "bold"},
		{name: "variable", value: NewVariableWithValue("v", "1"), kind: KindVariable, rendered: "{v}", content: "1"},
		{name: "template", value: NewTemplate("{v}!"), kind: KindTemplate, rendered: "{v}!", content: "{v}!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.rendered, tt.value.String())
			assert.Equal(t, tt.content, ContentOf(tt.value))
		})
	}
}

func TestContentOf_Nil(t *testing.T) {
	assert.Equal(t, "", ContentOf(nil))
}
