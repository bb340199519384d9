// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog loads the YAML form definitions and turns them into
// ready-to-use forms.
//
// The built-in definitions (product, user, login, register, contact and
// profile) are embedded in the binary; a directory of *.yaml files can
// replace them.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/MKhiriev/go-form-keeper/internal/form"
	"github.com/MKhiriev/go-form-keeper/internal/validators"
	"gopkg.in/yaml.v3"
)

//go:embed definitions/*.yaml
var embedded embed.FS

// Catalog holds every known form definition.
type Catalog struct {
	definitions map[string]Definition
	order       []string
	registry    *validators.Registry
	lookup      form.OptionsLookup
}

// Default loads the embedded definitions.
func Default(registry *validators.Registry, lookup form.OptionsLookup) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "definitions")
	if err != nil {
		return nil, fmt.Errorf("open embedded definitions: %w", err)
	}
	return Load(sub, registry, lookup)
}

// LoadDir loads definitions from dir, or the embedded ones when dir is empty.
func LoadDir(dir string, registry *validators.Registry, lookup form.OptionsLookup) (*Catalog, error) {
	if dir == "" {
		return Default(registry, lookup)
	}
	return Load(os.DirFS(dir), registry, lookup)
}

// Load parses every *.yaml file at the root of fsys. Each definition is
// compiled once so mistakes surface at startup.
func Load(fsys fs.FS, registry *validators.Registry, lookup form.OptionsLookup) (*Catalog, error) {
	if registry == nil {
		registry = validators.NewRegistry(nil)
	}

	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}
	sort.Strings(names)

	c := &Catalog{
		definitions: make(map[string]Definition, len(names)),
		registry:    registry,
		lookup:      lookup,
	}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		def, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		if err = c.Add(def); err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
	}
	return c, nil
}

// Parse decodes a single definition, rejecting unknown keys.
func Parse(data []byte) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if def.ID == "" {
		return Definition{}, fmt.Errorf("%w: missing id", ErrInvalidDefinition)
	}
	return def, nil
}

// Add registers def after checking that it compiles into a form.
func (c *Catalog) Add(def Definition) error {
	if _, ok := c.definitions[def.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateForm, def.ID)
	}
	if _, err := c.build(def); err != nil {
		return err
	}
	c.definitions[def.ID] = def
	c.order = append(c.order, def.ID)
	return nil
}

// IDs lists the form identifiers in load order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

// Definition returns the definition of form id.
func (c *Catalog) Definition(id string) (Definition, error) {
	def, ok := c.definitions[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownForm, id)
	}
	return def, nil
}

// NewForm builds a fresh, untouched form for id.
func (c *Catalog) NewForm(id string) (*form.Form, error) {
	def, err := c.Definition(id)
	if err != nil {
		return nil, err
	}
	return c.build(def)
}

func (c *Catalog) build(def Definition) (*form.Form, error) {
	fields, err := def.fields(c.registry)
	if err != nil {
		return nil, err
	}
	f, err := form.New(def.ID, fields, def.edges(), c.lookup)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return f, nil
}
