package schema

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// RawObjectDef is an object definition as written in YAML.
type RawObjectDef struct {
	ID          uint16           `yaml:"id"`
	Name        string           `yaml:"name"` // descriptive, e.g. "Temperature"
	Instance    *int             `yaml:"instance"`
	Description string           `yaml:"description"`
	Resources   []RawResourceDef `yaml:"resources"`
}

// RawResourceDef is a resource definition as written in YAML.
type RawResourceDef struct {
	ID         uint16 `yaml:"id"`
	Instance   *int   `yaml:"instance"` // absent means single instance
	Label      string `yaml:"label"`
	Type       string `yaml:"type"`
	Observable bool   `yaml:"observable"`
	Operation  string `yaml:"operation"` // "GET", "GET_PUT", ...
	Format     string `yaml:"format"`
}

// ParseRawObjectDef decodes a YAML object definition without validating it.
func ParseRawObjectDef(data []byte) (*RawObjectDef, error) {
	var raw RawObjectDef
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse object definition: %w", err)
	}
	return &raw, nil
}

// ParseObjectDef parses and validates a YAML object definition.
func ParseObjectDef(data []byte) (*ObjectDef, error) {
	raw, err := ParseRawObjectDef(data)
	if err != nil {
		return nil, err
	}
	return raw.Build()
}

// Build converts the raw definition into a validated ObjectDef.
func (raw *RawObjectDef) Build() (*ObjectDef, error) {
	if len(raw.Resources) > MaxResources {
		return nil, fmt.Errorf("object %d: %w: %d > %d",
			raw.ID, ErrTooManyResources, len(raw.Resources), MaxResources)
	}

	def := &ObjectDef{
		Instance: SingleInstance,
		Name:     strconv.FormatUint(uint64(raw.ID), 10),
	}
	if raw.Instance != nil {
		def.Instance = *raw.Instance
	}

	for i, rr := range raw.Resources {
		typ, err := ParseResourceType(rr.Type)
		if err != nil {
			return nil, fmt.Errorf("object %d resource %d: %w", raw.ID, rr.ID, err)
		}
		op, err := ParseOperation(rr.Operation)
		if err != nil {
			return nil, fmt.Errorf("object %d resource %d: %w", raw.ID, rr.ID, err)
		}
		instance := SingleInstance
		if rr.Instance != nil {
			instance = *rr.Instance
		}
		def.Resources[i] = ResourceDef{
			Instance:   instance,
			Name:       strconv.FormatUint(uint64(rr.ID), 10),
			TypeLabel:  rr.Label,
			Type:       typ,
			Observable: rr.Observable,
			Operation:  op,
			Format:     rr.Format,
		}
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}
