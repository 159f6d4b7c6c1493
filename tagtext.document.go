package tagtext

import (
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a template:
//
//	name: problem
//	template: "There is {fix} for the {problem} with {id}"
//	variables:
//	  - name: fix
//	    value: no fix
//	  - name: problem
//	  - name: id
//	    value: "427"
//
// Variables are a list so declaration order survives the round trip. The
// same document may be written in TOML, with [[variables]] tables.
type Document struct {
	Name      string             `yaml:"name,omitempty" toml:"name,omitempty"`
	Template  string             `yaml:"template" toml:"template"`
	Variables []DocumentVariable `yaml:"variables,omitempty" toml:"variables,omitempty"`
}

// DocumentVariable declares one variable. A nil Value means no value.
type DocumentVariable struct {
	Name  string  `yaml:"name" toml:"name"`
	Value *string `yaml:"value,omitempty" toml:"value,omitempty"`
}

// tomlCatalog is the TOML form of a catalog: one [[templates]] table per
// named document.
type tomlCatalog struct {
	Templates []Document `toml:"templates"`
}

// ParseDocument decodes a single YAML template document.
func ParseDocument(data []byte) (*Template, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentDecode, err)
	}
	return doc.Build()
}

// ParseDocumentTOML decodes a single TOML template document.
func ParseDocumentTOML(data []byte) (*Template, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentDecode, err)
	}
	return doc.Build()
}

// Build creates the template the document describes.
func (d Document) Build() (*Template, error) {
	if d.Template == stringEmpty {
		return nil, NewDocumentError(ErrMsgDocumentEmpty, nil)
	}
	vars := make([]*Variable, 0, len(d.Variables))
	for _, dv := range d.Variables {
		if dv.Name == stringEmpty {
			return nil, NewDocumentError(ErrMsgEmptyVariableKey, nil)
		}
		if dv.Value != nil {
			vars = append(vars, NewVariableWithValue(dv.Name, *dv.Value))
			continue
		}
		vars = append(vars, NewVariable(dv.Name))
	}
	return NewTemplate(d.Template, vars...), nil
}

// Document describes the template as a Document called name.
func (t *Template) Document(name string) Document {
	doc := Document{Name: name, Template: t.raw}
	t.variables.ForEach(func(n string, v *Variable) {
		dv := DocumentVariable{Name: n}
		if value, ok := v.Value(); ok {
			dv.Value = &value
		}
		doc.Variables = append(doc.Variables, dv)
	})
	return doc
}

// MarshalYAML encodes the template as an unnamed Document.
func (t *Template) MarshalYAML() (interface{}, error) {
	return t.Document(stringEmpty), nil
}

// EncodeTOML encodes the template as a TOML document called name.
func (t *Template) EncodeTOML(name string) ([]byte, error) {
	return toml.Marshal(t.Document(name))
}
