// Package schema loads declarative property-set definitions from YAML.
//
// A schema lists models and the observable properties each declares,
// playing the role a class-level property table plays in dynamic
// frameworks:
//
//	models:
//	  - name: document
//	    properties:
//	      - name: title
//	        kind: scalar
//	        initial: untitled
//	      - name: tags
//	        kind: list
//	      - name: meta
//	        kind: map
//	      - name: saved
//	        kind: signal
//
// Load or Parse the document, Validate it, then Apply a model definition
// to a model.Model to declare its properties.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/observe/pkg/errors"
	"github.com/go-drift/observe/pkg/observer"
)

// Property kinds accepted in a schema. An empty kind means scalar.
const (
	KindScalar = "scalar"
	KindList   = "list"
	KindMap    = "map"
	KindSignal = "signal"
)

// Schema is a parsed schema document.
type Schema struct {
	Models []ModelDef `yaml:"models"`

	file string
}

// ModelDef declares one model and its properties.
type ModelDef struct {
	Name       string        `yaml:"name"`
	Properties []PropertyDef `yaml:"properties"`
}

// PropertyDef declares one observable property.
type PropertyDef struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind,omitempty"`
	// Initial is the starting value: any scalar for scalar properties, a
	// sequence for lists, a mapping for maps. Signals take no initial.
	Initial any `yaml:"initial,omitempty"`
}

// Parse decodes a schema document. The result is not validated; call
// Validate before applying it.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return &s, nil
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema: %s: %w", path, err)
	}
	s.file = path
	return s, nil
}

// Validate checks the whole document and returns the first problem found
// as a *errors.SchemaError.
func (s *Schema) Validate() error {
	if len(s.Models) == 0 {
		return &errors.SchemaError{File: s.file, Reason: "no models declared"}
	}
	seen := make(map[string]struct{}, len(s.Models))
	for _, def := range s.Models {
		if _, dup := seen[def.Name]; dup {
			return &errors.SchemaError{File: s.file, Model: def.Name, Reason: "duplicate model name"}
		}
		seen[def.Name] = struct{}{}
		if err := validateModel(def, s.file); err != nil {
			return err
		}
	}
	return nil
}

func validateModel(def ModelDef, file string) error {
	if !isIdentifier(def.Name) {
		return &errors.SchemaError{File: file, Model: def.Name, Reason: "model name is not a valid identifier"}
	}
	if len(def.Properties) == 0 {
		return &errors.SchemaError{File: file, Model: def.Name, Reason: "no properties declared"}
	}
	seen := make(map[string]struct{}, len(def.Properties))
	for _, p := range def.Properties {
		if observer.IsPattern(p.Name) {
			return &errors.SchemaError{File: file, Model: def.Name, Field: p.Name, Reason: "property name contains wildcard characters"}
		}
		if !isIdentifier(p.Name) {
			return &errors.SchemaError{File: file, Model: def.Name, Field: p.Name, Reason: "property name is not a valid identifier"}
		}
		if _, dup := seen[p.Name]; dup {
			return &errors.SchemaError{File: file, Model: def.Name, Field: p.Name, Reason: "duplicate property name"}
		}
		seen[p.Name] = struct{}{}

		switch p.Kind {
		case "", KindScalar:
			// any initial value is fine
		case KindList:
			if p.Initial != nil {
				if _, ok := p.Initial.([]any); !ok {
					return &errors.SchemaError{File: file, Model: def.Name, Field: p.Name, Reason: "list initial must be a sequence"}
				}
			}
		case KindMap:
			if p.Initial != nil {
				if _, ok := p.Initial.(map[string]any); !ok {
					return &errors.SchemaError{File: file, Model: def.Name, Field: p.Name, Reason: "map initial must be a mapping"}
				}
			}
		case KindSignal:
			if p.Initial != nil {
				return &errors.SchemaError{File: file, Model: def.Name, Field: p.Name, Reason: "signals take no initial value"}
			}
		default:
			return &errors.SchemaError{File: file, Model: def.Name, Field: p.Name, Reason: fmt.Sprintf("unknown kind %q", p.Kind)}
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
