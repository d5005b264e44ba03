package schema

import (
	"errors"
	"fmt"
	"strconv"
)

// Definition limits.
const (
	// MaxNameLength is the maximum length of an object or resource name.
	MaxNameLength = 7

	// MaxTypeLabelLength is the maximum length of a resource type label.
	MaxTypeLabelLength = 19

	// MaxResources is the maximum number of resource entries in an object.
	MaxResources = 16

	// SingleInstance marks a resource, or an object, that has no instance index.
	SingleInstance = -1
)

// Definition errors.
var (
	ErrUnknownType       = errors.New("unknown resource type")
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidInstance   = errors.New("invalid instance")
	ErrTypeLabelTooLong  = errors.New("type label too long")
	ErrDuplicateResource = errors.New("duplicate resource")
	ErrFamilyMismatch    = errors.New("multi-instance resource entries disagree")
	ErrTableGap          = errors.New("resource table has a gap")
	ErrTooManyResources  = errors.New("too many resources")
)

// ResourceDef declares one resource, or one instance of a multi-instance resource.
type ResourceDef struct {
	// Instance is SingleInstance or the index within a multi-instance resource.
	Instance int

	// Name is the numeric LWM2M resource ID as text, e.g. "5700".
	Name string

	// TypeLabel is a human-readable type, e.g. "on/off". Display only.
	TypeLabel string

	// Type is the value type.
	Type ResourceType

	// Observable marks the resource as eligible for server observation.
	Observable bool

	// Operation is the server access policy.
	Operation Operation

	// Format is a printf verb used to render FLOAT values as text.
	// Empty means "%f".
	Format string
}

// MultiInstance returns true if the entry is one instance of a multi-instance resource.
func (r *ResourceDef) MultiInstance() bool {
	return r.Instance != SingleInstance
}

// ResourceTable holds the resource entries of an object in declaration order.
// Entries after the last one with a Name are unused.
type ResourceTable [MaxResources]ResourceDef

// ObjectDef declares one LWM2M object instance and its resources.
type ObjectDef struct {
	// Instance is the object instance ID, or SingleInstance.
	Instance int

	// Name is the numeric LWM2M object ID as text, e.g. "3303".
	Name string

	// Resources are the declared resources.
	Resources ResourceTable
}

// Len returns the number of used resource entries.
func (o *ObjectDef) Len() int {
	n := 0
	for i := range o.Resources {
		if o.Resources[i].Name != "" {
			n = i + 1
		}
	}
	return n
}

// Resource returns the i-th resource entry.
func (o *ObjectDef) Resource(i int) ResourceDef {
	return o.Resources[i]
}

// All returns a copy of the used resource entries.
func (o *ObjectDef) All() []ResourceDef {
	n := o.Len()
	result := make([]ResourceDef, n)
	copy(result, o.Resources[:n])
	return result
}

// Lookup returns the first entry whose name and instance match.
func (o *ObjectDef) Lookup(name string, instance int) (ResourceDef, bool) {
	n := o.Len()
	for i := 0; i < n; i++ {
		r := &o.Resources[i]
		if r.Name == name && r.Instance == instance {
			return *r, true
		}
	}
	return ResourceDef{}, false
}

// InstanceID returns the object instance ID used with the runtime.
// A singleton object is instance 0.
func (o *ObjectDef) InstanceID() int {
	if o.Instance == SingleInstance {
		return 0
	}
	return o.Instance
}

// Validate checks the definition against the schema rules.
func (o *ObjectDef) Validate() error {
	if err := validateName(o.Name); err != nil {
		return fmt.Errorf("object %q: %w", o.Name, err)
	}
	if o.Instance < SingleInstance {
		return fmt.Errorf("object %s: %w: %d", o.Name, ErrInvalidInstance, o.Instance)
	}

	n := o.Len()
	seen := make(map[string]int)
	families := make(map[string]*ResourceDef)

	for i := 0; i < n; i++ {
		r := &o.Resources[i]
		if r.Name == "" {
			return fmt.Errorf("object %s: %w at entry %d", o.Name, ErrTableGap, i)
		}
		if err := r.validate(); err != nil {
			return fmt.Errorf("object %s resource %s: %w", o.Name, r.Name, err)
		}

		key := r.Name + "/" + strconv.Itoa(r.Instance)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("object %s resource %s: %w (entries %d and %d)",
				o.Name, key, ErrDuplicateResource, prev, i)
		}
		seen[key] = i

		first, ok := families[r.Name]
		if !ok {
			families[r.Name] = r
			continue
		}
		if first.MultiInstance() != r.MultiInstance() {
			return fmt.Errorf("object %s resource %s: %w: mixes single and multiple instances",
				o.Name, r.Name, ErrFamilyMismatch)
		}
		if first.Type != r.Type || first.Operation != r.Operation || first.Observable != r.Observable {
			return fmt.Errorf("object %s resource %s: %w", o.Name, r.Name, ErrFamilyMismatch)
		}
	}
	return nil
}

func (r *ResourceDef) validate() error {
	if err := validateName(r.Name); err != nil {
		return err
	}
	if r.Instance < SingleInstance {
		return fmt.Errorf("%w: %d", ErrInvalidInstance, r.Instance)
	}
	if len(r.TypeLabel) > MaxTypeLabelLength {
		return fmt.Errorf("%w: %q", ErrTypeLabelTooLong, r.TypeLabel)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownType, r.Type)
	}
	if !r.Operation.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownOperation, r.Operation)
	}
	return nil
}

// validateName checks that name is a bounded decimal ID.
func validateName(name string) error {
	if name == "" || len(name) > MaxNameLength {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, err := strconv.ParseUint(name, 10, 16); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
