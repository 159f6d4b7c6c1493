package tagtext

import (
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// SetVariablesFromJSON stores values for declared variables from a JSON
// document. Each variable name is used as a path into data, so {user.name}
// reads {"user":{"name":"Ann"}}. Only dots separate path components: wildcard
// and query characters in a name match literally. Numbers, booleans and nested values are
// stored in their JSON text form. Variables missing from data keep their
// value. It returns the names that were set, in declaration order.
func (t *Template) SetVariablesFromJSON(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, NewInvalidDataError()
	}
	var set []string
	t.variables.ForEach(func(name string, v *Variable) {
		result := gjson.GetBytes(data, jsonPath(name))
		if !result.Exists() {
			return
		}
		v.SetValue(result.String())
		set = append(set, name)
	})
	return set, nil
}

// SetVariablesFromJSON is Template.SetVariablesFromJSON for the session's
// template. The working text is not touched.
func (t *Text) SetVariablesFromJSON(data []byte) (*Text, error) {
	set, err := t.template.SetVariablesFromJSON(data)
	if err != nil {
		return t, err
	}
	t.logger.Debug(LogMsgVariablesFromData, zap.Strings(LogFieldVariable, set))
	return t, nil
}

// jsonPath escapes each dot-separated component of a variable name.
func jsonPath(name string) string {
	parts := strings.Split(name, pathSeparator)
	for i, part := range parts {
		parts[i] = gjson.Escape(part)
	}
	return strings.Join(parts, pathSeparator)
}
