package schema

import (
	"fmt"
	"strings"
)

// ResourceType is the value type of a resource.
type ResourceType uint8

// Resource types, in the order used by the mbed client resource API.
const (
	TypeString ResourceType = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeOpaque
	TypeTime
	TypeObjLink
)

var resourceTypeNames = []string{
	"STRING", "INTEGER", "FLOAT", "BOOLEAN", "OPAQUE", "TIME", "OBJLINK",
}

// String returns the resource type name.
func (t ResourceType) String() string {
	if int(t) < len(resourceTypeNames) {
		return resourceTypeNames[t]
	}
	return fmt.Sprintf("ResourceType(%d)", uint8(t))
}

// Valid returns true if t is one of the declared resource types.
func (t ResourceType) Valid() bool {
	return int(t) < len(resourceTypeNames)
}

// Supported returns true if values of this type can be read and written.
func (t ResourceType) Supported() bool {
	switch t {
	case TypeString, TypeInteger, TypeFloat, TypeBoolean, TypeTime:
		return true
	default:
		return false
	}
}

// ParseResourceType parses a resource type name (case-insensitive).
func ParseResourceType(s string) (ResourceType, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range resourceTypeNames {
		if name == upper {
			return ResourceType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Operation is the access policy the server has on a resource.
type Operation uint8

const (
	// OpGet allows the server to read the resource.
	OpGet Operation = 1 << iota

	// OpPut allows the server to write the resource.
	OpPut

	// OpPost allows the server to execute the resource.
	OpPost

	OpGetPut     = OpGet | OpPut
	OpGetPost    = OpGet | OpPost
	OpPutPost    = OpPut | OpPost
	OpGetPutPost = OpGet | OpPut | OpPost
)

// CanRead returns true if GET is allowed.
func (o Operation) CanRead() bool { return o&OpGet != 0 }

// CanWrite returns true if PUT is allowed.
func (o Operation) CanWrite() bool { return o&OpPut != 0 }

// CanExecute returns true if POST is allowed.
func (o Operation) CanExecute() bool { return o&OpPost != 0 }

// Valid returns true for the seven non-empty GET/PUT/POST combinations.
func (o Operation) Valid() bool {
	return o != 0 && o&^OpGetPutPost == 0
}

// String returns the operation as GET, GET_PUT, PUT_POST and so on.
func (o Operation) String() string {
	var parts []string
	if o.CanRead() {
		parts = append(parts, "GET")
	}
	if o.CanWrite() {
		parts = append(parts, "PUT")
	}
	if o.CanExecute() {
		parts = append(parts, "POST")
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "_")
}

// ParseOperation parses an operation written as in String, e.g. "GET_PUT".
// "R", "W" and "E" style letters are also accepted ("RW", "RE").
func ParseOperation(s string) (Operation, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownOperation)
	}

	var op Operation
	if !strings.ContainsAny(s, "_") && len(s) <= 3 && strings.Trim(s, "RWE") == "" {
		for _, c := range s {
			switch c {
			case 'R':
				op |= OpGet
			case 'W':
				op |= OpPut
			case 'E':
				op |= OpPost
			}
		}
		return op, nil
	}

	for _, part := range strings.Split(s, "_") {
		switch part {
		case "GET":
			op |= OpGet
		case "PUT":
			op |= OpPut
		case "POST":
			op |= OpPost
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
		}
	}
	return op, nil
}
