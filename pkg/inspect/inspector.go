package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mash-protocol/lwm2m-go/pkg/helper"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Inspector errors.
var (
	ErrIncompletePath = errors.New("path does not name a resource")
	ErrInvalidValue   = errors.New("invalid value for resource type")
)

// Inspector reads and manipulates a local resource tree the way an LWM2M
// server would.
type Inspector struct {
	client *model.Client
}

// NewInspector creates a new Inspector for the given client.
func NewInspector(client *model.Client) *Inspector {
	return &Inspector{client: client}
}

// Client returns the underlying resource tree.
func (i *Inspector) Client() *model.Client {
	return i.client
}

// ObjectInfo represents object information for display.
type ObjectInfo struct {
	ID        string
	Name      string
	Instances []InstanceInfo
}

// InstanceInfo represents object instance information for display.
type InstanceInfo struct {
	ID        int
	Resources []ResourceInfo
}

// ResourceInfo represents resource information for display.
type ResourceInfo struct {
	ID         string
	Name       string
	Label      string
	Type       schema.ResourceType
	Operation  schema.Operation
	Observable bool
	Multiple   bool
	Value      []byte
	Instances  []ResourceInstanceInfo
}

// ResourceInstanceInfo represents a resource instance for display.
type ResourceInstanceInfo struct {
	Index int
	Value []byte
}

// Inspect returns the part of the tree below path. A nil path returns the
// whole tree.
func (i *Inspector) Inspect(path *Path) ([]ObjectInfo, error) {
	if path == nil {
		var out []ObjectInfo
		for _, obj := range i.client.Objects() {
			out = append(out, i.inspectObject(obj, nil))
		}
		return out, nil
	}

	obj, err := i.client.Object(path.Object)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if path.Instance >= 0 {
		if _, ok := obj.Instance(path.Instance); !ok {
			return nil, fmt.Errorf("%s: %w", path, model.ErrInstanceNotFound)
		}
	}
	info := i.inspectObject(obj, path)
	if path.Resource != "" && (len(info.Instances) == 0 || len(info.Instances[0].Resources) == 0) {
		return nil, fmt.Errorf("%s: %w", path, model.ErrResourceNotFound)
	}
	return []ObjectInfo{info}, nil
}

// inspectObject extracts object info, filtered by path if not nil.
func (i *Inspector) inspectObject(obj *model.Object, path *Path) ObjectInfo {
	info := ObjectInfo{
		ID:   obj.Name(),
		Name: GetObjectName(obj.Name()),
	}

	for _, inst := range obj.Instances() {
		if path != nil && path.Instance >= 0 && inst.ID() != path.Instance {
			continue
		}
		instInfo := InstanceInfo{ID: inst.ID()}
		for _, res := range inst.Resources() {
			if path != nil && path.Resource != "" && res.Name() != path.Resource {
				continue
			}
			instInfo.Resources = append(instInfo.Resources, inspectResource(obj.Name(), res))
		}
		info.Instances = append(info.Instances, instInfo)
	}
	return info
}

func inspectResource(objectID string, res *model.Resource) ResourceInfo {
	info := ResourceInfo{
		ID:         res.Name(),
		Name:       GetResourceName(objectID, res.Name()),
		Label:      res.TypeLabel(),
		Type:       res.Type(),
		Operation:  res.Operation(),
		Observable: res.Observable(),
		Multiple:   res.MultipleInstances(),
	}

	if !info.Multiple {
		info.Value = res.Payload()
		return info
	}
	for _, ri := range res.ResourceInstances() {
		info.Instances = append(info.Instances, ResourceInstanceInfo{
			Index: ri.Index(),
			Value: ri.Payload(),
		})
	}
	return info
}

// Read reads a resource value as the server would.
func (i *Inspector) Read(path *Path) ([]byte, schema.ResourceType, error) {
	n, err := i.node(path)
	if err != nil {
		return nil, 0, err
	}
	v, err := n.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return v, n.Type(), nil
}

// Write parses text for the resource type and writes it as the server would.
func (i *Inspector) Write(path *Path, text string) error {
	n, err := i.node(path)
	if err != nil {
		return err
	}
	payload, err := EncodeInput(n.Type(), text)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := n.Write(payload); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Execute executes a resource as the server would.
func (i *Inspector) Execute(path *Path, args []byte) error {
	if path.IsPartial() || path.Instance < 0 {
		return fmt.Errorf("%s: %w", path, ErrIncompletePath)
	}
	obj, err := i.client.Object(path.Object)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	inst, ok := obj.Instance(path.Instance)
	if !ok {
		return fmt.Errorf("%s: %w", path, model.ErrInstanceNotFound)
	}
	res, ok := inst.Resource(path.Resource)
	if !ok {
		return fmt.Errorf("%s: %w", path, model.ErrResourceNotFound)
	}
	if err := res.Execute(args); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (i *Inspector) node(path *Path) (model.Node, error) {
	if path.IsPartial() || path.Instance < 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrIncompletePath)
	}
	n, err := i.client.Resolve(path.ModelPath())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// EncodeInput converts user input to the payload the value accessors use
// for the type: booleans become "1" or "0", numbers are checked and
// normalized, strings are taken as is.
func EncodeInput(typ schema.ResourceType, text string) ([]byte, error) {
	if typ == schema.TypeString {
		return []byte(text), nil
	}

	text = strings.TrimSpace(text)
	switch typ {
	case schema.TypeBoolean:
		switch strings.ToLower(text) {
		case "on", "yes":
			text = "true"
		case "off", "no":
			text = "false"
		}
	case schema.TypeOpaque, schema.TypeObjLink:
		return nil, fmt.Errorf("%w: %s", helper.ErrUnsupportedType, typ)
	}

	v, err := helper.ParseValue(typ, text)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %q", ErrInvalidValue, typ, text)
	}

	switch v := v.(type) {
	case helper.Boolean:
		if v {
			return []byte("1"), nil
		}
		return []byte("0"), nil
	case helper.Float:
		return []byte(text), nil
	default:
		return []byte(v.String()), nil
	}
}

// DecodeBool reads a BOOLEAN payload.
func DecodeBool(payload []byte) bool {
	v, err := strconv.ParseInt(strings.TrimSpace(string(payload)), 10, 64)
	return err == nil && v != 0
}
