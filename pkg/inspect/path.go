// Package inspect provides resource tree inspection and manipulation utilities.
//
// The inspect package offers a unified interface for:
//   - Parsing LWM2M paths (e.g., "3303/0/5700" or "temperature/0/value")
//   - Resolving names to numeric IDs
//   - Reading, writing and executing resources on behalf of the server
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Path errors.
var (
	ErrEmptyPath     = errors.New("empty path")
	ErrInvalidPath   = errors.New("invalid path format")
	ErrInvalidNumber = errors.New("invalid numeric value in path")
)

// Path is a parsed LWM2M path.
// Format: object[/instance[/resource[/resourceInstance]]]
type Path struct {
	// Object is the object ID, e.g. "3303".
	Object string

	// Instance is the object instance ID, or -1 if absent.
	Instance int

	// Resource is the resource ID, or "" if absent.
	Resource string

	// ResourceInstance is the resource instance index, or -1 if absent.
	ResourceInstance int

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path string into a Path struct.
//
// Supported formats:
//   - "3303" - object (for listing instances)
//   - "3303/0" - object instance (for listing resources)
//   - "3303/0/5700" - resource
//   - "3/0/6/1" - resource instance
//
// A single leading slash is accepted. Objects and resources can be given
// by name, e.g. "temperature/0/value".
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	raw := input
	input = strings.TrimPrefix(input, "/")
	if input == "" {
		return nil, ErrEmptyPath
	}

	if strings.HasPrefix(input, "/") || strings.HasSuffix(input, "/") || strings.Contains(input, "//") {
		return nil, ErrInvalidPath
	}

	parts := strings.Split(input, "/")
	if len(parts) > 4 {
		return nil, ErrInvalidPath
	}

	p := &Path{
		Instance:         -1,
		ResourceInstance: schema.SingleInstance,
		Raw:              raw,
	}

	obj, err := parseObjectID(parts[0])
	if err != nil {
		return nil, fmt.Errorf("object: %w", err)
	}
	p.Object = obj

	if len(parts) == 1 {
		return p, nil
	}

	inst, err := parseUint16(parts[1])
	if err != nil {
		return nil, fmt.Errorf("instance: %w: %s", ErrInvalidNumber, parts[1])
	}
	p.Instance = int(inst)

	if len(parts) == 2 {
		return p, nil
	}

	res, err := parseResourceID(p.Object, parts[2])
	if err != nil {
		return nil, fmt.Errorf("resource: %w", err)
	}
	p.Resource = res

	if len(parts) == 3 {
		return p, nil
	}

	ri, err := parseUint16(parts[3])
	if err != nil {
		return nil, fmt.Errorf("resource instance: %w: %s", ErrInvalidNumber, parts[3])
	}
	p.ResourceInstance = int(ri)

	return p, nil
}

// IsPartial reports whether the path stops above a resource.
func (p *Path) IsPartial() bool {
	return p.Resource == ""
}

// ModelPath converts the path to a runtime address.
func (p *Path) ModelPath() model.Path {
	return model.Path{
		Object:           p.Object,
		Instance:         p.Instance,
		Resource:         p.Resource,
		ResourceInstance: p.ResourceInstance,
	}
}

// String returns the path in numeric form.
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.Object)

	if p.Instance < 0 {
		return sb.String()
	}
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(p.Instance))

	if p.Resource == "" {
		return sb.String()
	}
	sb.WriteString("/")
	sb.WriteString(p.Resource)

	if p.ResourceInstance >= 0 {
		sb.WriteString("/")
		sb.WriteString(strconv.Itoa(p.ResourceInstance))
	}
	return sb.String()
}

// parseObjectID parses an object ID or name.
func parseObjectID(s string) (string, error) {
	if id, err := parseUint16(s); err == nil {
		return strconv.FormatUint(uint64(id), 10), nil
	}
	if id, ok := ResolveObjectName(s); ok {
		return id, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidNumber, s)
}

// parseResourceID parses a resource ID or a name known for the object.
func parseResourceID(objectID, s string) (string, error) {
	if id, err := parseUint16(s); err == nil {
		return strconv.FormatUint(uint64(id), 10), nil
	}
	if id, ok := ResolveResourceName(objectID, s); ok {
		return id, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidNumber, s)
}

// parseUint16 parses a decimal uint16.
func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
