package tagtext

import (
	"bytes"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Catalog holds named templates with first-come-wins registration.
// It is safe for concurrent use.
type Catalog struct {
	templates map[string]*Template
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewCatalog creates an empty catalog.
func NewCatalog(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgCatalogCreated)
	return &Catalog{
		templates: make(map[string]*Template),
		logger:    logger,
	}
}

// LoadCatalog decodes a stream of YAML documents separated by "---", each a
// named Document, and registers them in order.
func LoadCatalog(data []byte, logger *zap.Logger) (*Catalog, error) {
	c := NewCatalog(logger)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc Document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, NewDocumentError(ErrMsgDocumentDecode, err)
		}
		if err := c.registerDocument(doc); err != nil {
			return nil, err
		}
	}
	c.logger.Debug(LogMsgCatalogLoaded, zap.Int(LogFieldCount, c.Count()))
	return c, nil
}

// LoadCatalogTOML decodes a TOML catalog holding one [[templates]] table per
// named document and registers them in order.
func LoadCatalogTOML(data []byte, logger *zap.Logger) (*Catalog, error) {
	var tc tomlCatalog
	if err := toml.Unmarshal(data, &tc); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentDecode, err)
	}
	c := NewCatalog(logger)
	for _, doc := range tc.Templates {
		if err := c.registerDocument(doc); err != nil {
			return nil, err
		}
	}
	c.logger.Debug(LogMsgCatalogLoaded, zap.Int(LogFieldCount, c.Count()))
	return c, nil
}

func (c *Catalog) registerDocument(doc Document) error {
	if doc.Name == stringEmpty {
		return NewDocumentError(ErrMsgDocumentNoName, nil)
	}
	tmpl, err := doc.Build()
	if err != nil {
		return err
	}
	c.logger.Debug(LogMsgCatalogDocumentRead, zap.String(LogFieldName, doc.Name))
	return c.Register(doc.Name, tmpl)
}

// Register adds a template under name. A name already taken keeps its first
// template and an error is returned.
func (c *Catalog) Register(name string, tmpl *Template) error {
	if tmpl == nil {
		return NewDocumentError(ErrMsgNilTemplate, nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.templates[name]; exists {
		c.logger.Warn(LogMsgCatalogCollision, zap.String(LogFieldName, name))
		return NewTemplateExistsError(name)
	}
	c.templates[name] = tmpl
	c.logger.Debug(LogMsgTemplateRegistered, zap.String(LogFieldName, name))
	return nil
}

// MustRegister is like Register but panics on error.
func (c *Catalog) MustRegister(name string, tmpl *Template) {
	if err := c.Register(name, tmpl); err != nil {
		panic(err)
	}
}

// Get returns the template registered under name.
func (c *Catalog) Get(name string) (*Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tmpl, ok := c.templates[name]
	return tmpl, ok
}

// Lookup is like Get but returns a not-found error on a miss.
func (c *Catalog) Lookup(name string) (*Template, error) {
	tmpl, ok := c.Get(name)
	if !ok {
		return nil, NewTemplateNotFoundError(name)
	}
	return tmpl, nil
}

// Has reports whether name is registered.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.templates[name]
	return ok
}

// List returns all registered names in sorted order.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered templates.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.templates)
}

// NewText starts a substitution session over a copy of the named template.
func (c *Catalog) NewText(name string) (*Text, error) {
	tmpl, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewTextFromTemplate(tmpl).SetLogger(c.logger), nil
}
