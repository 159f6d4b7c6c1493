package tagtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_SetVariablesFromJSON(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     *Template
		data     string
		set      []string
		rendered string
	}{
		{
			name:     "flat values",
			tmpl:     NewTemplateFromPairs("{user} has {count} {flag}", Pair{"user", "?"}, Pair{"count", "0"}, Pair{"flag", "-"}),
			data:     `{"user": "Ann", "count": 5}`,
			set:      []string{"user", "count"},
			rendered: "Ann has 5 -",
		},
		{
			name:     "nested path",
			tmpl:     NewTemplateFromNames("{user.role}: {flag}", "user.role", "flag"),
			data:     `{"user": {"role": "admin"}, "flag": true}`,
			set:      []string{"user.role", "flag"},
			rendered: "admin: true",
		},
		{
			name:     "object values keep their JSON text",
			tmpl:     NewTemplateFromNames("{user}", "user"),
			data:     `{"user":{"role":"admin"}}`,
			set:      []string{"user"},
			rendered: `{"role":"admin"}`,
		},
		{
			name:     "wildcards match literally",
			tmpl:     NewTemplateFromPairs("{us*}|{a?b}", Pair{"us*", "kept"}, Pair{"a?b", "-"}),
			data:     `{"user": "Ann", "a?b": "q"}`,
			set:      []string{"a?b"},
			rendered: "kept|q",
		},
		{
			name:     "nothing matches",
			tmpl:     NewTemplateFromPairs("{a}", Pair{"a", "kept"}),
			data:     `{"other": 1}`,
			rendered: "kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := tt.tmpl.SetVariablesFromJSON([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.set, set)
			assert.Equal(t, tt.rendered, tt.tmpl.Render())
		})
	}
}

func TestTemplate_SetVariablesFromJSON_Invalid(t *testing.T) {
	tmpl := NewTemplateFromNames("{a}", "a")

	_, err := tmpl.SetVariablesFromJSON([]byte(`{"a": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidData)
}

func TestText_SetVariablesFromJSON(t *testing.T) {
	text := newProblemText()

	_, err := text.SetVariablesFromJSON([]byte(`{"id": 9}`))
	require.NoError(t, err)
	assert.Equal(t, testProblemTemplate, text.GetText(false))
	assert.Equal(t, "There is no fix for the crucial crush with 9", text.GetText(true))

	_, err = text.SetVariablesFromJSON([]byte("nope"))
	assert.Error(t, err)
}
