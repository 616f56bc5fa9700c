// Package catalog serves the featured listings from a YAML document.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

//go:embed catalog.yaml
var defaultDocument []byte

type document struct {
	Properties []entity.Property `yaml:"properties"`
}

// Catalog is read-only after construction.
type Catalog struct {
	properties []entity.Property
	byID       map[string]int
}

// Default returns the built-in six featured assets.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads a catalogue file, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		properties: doc.Properties,
		byID:       make(map[string]int, len(doc.Properties)),
	}
	for i, p := range doc.Properties {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog id %q listed twice", p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

func (c *Catalog) List(ctx context.Context) ([]entity.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.Property, len(c.properties))
	copy(out, c.properties)
	return out, nil
}

func (c *Catalog) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := c.byID[id]
	if !ok {
		return nil, entity.ErrPropertyNotFound
	}
	p := c.properties[i]
	return &p, nil
}

var _ entity.PropertyCatalog = (*Catalog)(nil)
