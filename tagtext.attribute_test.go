package tagtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAttribute(t *testing.T) {
	a := NewAttribute("color", "red")

	assert.Equal(t, "color", a.Name())
	assert.Equal(t, "red", a.Value())
	assert.Equal(t, `color="red"`, a.String())
	assert.Equal(t, Pair{"color", "red"}, a.Pair())
	assert.Equal(t, map[string]string{"color": "red"}, a.Map())
}

func TestAttribute_ValueNotEscaped(t *testing.T) {
	a := NewAttribute("title", `say "hi"`)
	assert.Equal(t, `title="say "hi""`, a.String())
}

func TestNewAttributes(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []Pair
		expected string
		names    []string
	}{
		{name: "empty", expected: "", names: []string{}},
		{name: "single", pairs: []Pair{{"color", "red"}}, expected: ` color="red"`, names: []string{"color"}},
		{name: "ordered", pairs: []Pair{{"b", "2"}, {"a", "1"}}, expected: ` b="2" a="1"`, names: []string{"b", "a"}},
		{name: "first wins", pairs: []Pair{{"color", "red"}, {"color", "blue"}}, expected: ` color="red"`, names: []string{"color"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := NewAttributes(tt.pairs...)
			assert.Equal(t, tt.expected, attrs.String())
			assert.Equal(t, tt.names, attrs.Names())
			assert.Equal(t, len(tt.names), attrs.Len())
		})
	}
}

func TestAttributes_Lookup(t *testing.T) {
	attrs := NewAttributes(Pair{"color", "red"}, Pair{"color", "blue"}, Pair{"size", "2"})

	color, ok := attrs.Get("color")
	require.True(t, ok)
	assert.Equal(t, "red", color.Value())

	_, ok = attrs.Get("missing")
	assert.False(t, ok)
	assert.True(t, attrs.Has("size"))
	assert.False(t, attrs.Has("missing"))

	assert.Len(t, attrs.All(), 2)
	assert.Equal(t, []Pair{{"color", "red"}, {"size", "2"}}, attrs.Pairs())
	assert.Equal(t, map[string]string{"color": "red", "size": "2"}, attrs.Map())
}

func TestAttributes_ZeroValue(t *testing.T) {
	var attrs Attributes

	assert.Equal(t, "", attrs.String())
	assert.Equal(t, 0, attrs.Len())
	assert.False(t, attrs.Has("x"))
	_, ok := attrs.Get("x")
	assert.False(t, ok)
}

func TestAttributes_YAML(t *testing.T) {
	t.Run("marshal keeps order", func(t *testing.T) {
		attrs := NewAttributes(Pair{"z", "1"}, Pair{"a", "true"})
		out, err := yaml.Marshal(attrs)
		require.NoError(t, err)
		assert.Equal(t, "z: \"1\"\na: \"true\"\n", string(out))
	})

	t.Run("unmarshal keeps order", func(t *testing.T) {
		var attrs Attributes
		err := yaml.Unmarshal([]byte("href: /a\ntitle: home\n"), &attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"href", "title"}, attrs.Names())
		assert.Equal(t, ` href="/a" title="home"`, attrs.String())
	})

	t.Run("unmarshal non-mapping is empty", func(t *testing.T) {
		var attrs Attributes
		err := yaml.Unmarshal([]byte("- a\n- b\n"), &attrs)
		require.NoError(t, err)
		assert.Equal(t, 0, attrs.Len())
	})

	t.Run("round trip", func(t *testing.T) {
		attrs := NewAttributes(Pair{"b", "2"}, Pair{"a", "1"})
		out, err := yaml.Marshal(attrs)
		require.NoError(t, err)

		var back Attributes
		require.NoError(t, yaml.Unmarshal(out, &back))
		assert.Equal(t, attrs.Pairs(), back.Pairs())
	})
}
