package wire

import (
	"errors"
	"fmt"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion uint8 = 1

// Snapshot errors.
var (
	ErrVersion       = errors.New("unsupported snapshot version")
	ErrEmptyName     = errors.New("empty name")
	ErrDuplicateName = errors.New("duplicate name")
)

// Snapshot is the saved state of a resource tree.
//
// CBOR encoding:
//
//	{
//	  1: version,   // uint8
//	  2: savedAt,   // unix seconds
//	  3: objects    // array of ObjectSnapshot
//	}
type Snapshot struct {
	Version uint8            `cbor:"1,keyasint"`
	SavedAt time.Time        `cbor:"2,keyasint"`
	Objects []ObjectSnapshot `cbor:"3,keyasint,omitempty"`
}

// ObjectSnapshot is the saved state of one object.
type ObjectSnapshot struct {
	Name      string             `cbor:"1,keyasint"`
	Instances []InstanceSnapshot `cbor:"2,keyasint,omitempty"`
}

// InstanceSnapshot is the saved state of one object instance.
type InstanceSnapshot struct {
	ID        uint16             `cbor:"1,keyasint"`
	Resources []ResourceSnapshot `cbor:"2,keyasint,omitempty"`
}

// ResourceSnapshot is the saved state of one resource. Value is set for
// single-instance resources, Instances for multi-instance ones.
type ResourceSnapshot struct {
	Name      string                     `cbor:"1,keyasint"`
	Type      schema.ResourceType        `cbor:"2,keyasint"`
	Value     []byte                     `cbor:"3,keyasint,omitempty"`
	Instances []ResourceInstanceSnapshot `cbor:"4,keyasint,omitempty"`
}

// ResourceInstanceSnapshot is the saved value of one resource instance.
type ResourceInstanceSnapshot struct {
	Index uint16 `cbor:"1,keyasint"`
	Value []byte `cbor:"2,keyasint,omitempty"`
}

// Validate checks the version and that names are set and unique per level.
func (s *Snapshot) Validate() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}

	objects := make(map[string]bool, len(s.Objects))
	for _, o := range s.Objects {
		if o.Name == "" {
			return fmt.Errorf("object: %w", ErrEmptyName)
		}
		if objects[o.Name] {
			return fmt.Errorf("object %s: %w", o.Name, ErrDuplicateName)
		}
		objects[o.Name] = true

		for _, inst := range o.Instances {
			resources := make(map[string]bool, len(inst.Resources))
			for _, r := range inst.Resources {
				if r.Name == "" {
					return fmt.Errorf("%s/%d: resource: %w", o.Name, inst.ID, ErrEmptyName)
				}
				if resources[r.Name] {
					return fmt.Errorf("%s/%d/%s: %w", o.Name, inst.ID, r.Name, ErrDuplicateName)
				}
				resources[r.Name] = true
			}
		}
	}
	return nil
}

// Object returns the snapshot of the named object.
func (s *Snapshot) Object(name string) (*ObjectSnapshot, bool) {
	for i := range s.Objects {
		if s.Objects[i].Name == name {
			return &s.Objects[i], true
		}
	}
	return nil, false
}
