package model

import (
	"bytes"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Resource errors.
var (
	ErrNotReadable      = errors.New("resource is not readable")
	ErrNotWritable      = errors.New("resource is not writable")
	ErrNotExecutable    = errors.New("resource is not executable")
	ErrNoExecuteFunc    = errors.New("no execute function")
	ErrMultipleInstance = errors.New("value belongs to a resource instance")
)

// ValueUpdatedFunc is called after the server wrote a resource.
// It receives the resource name.
type ValueUpdatedFunc func(name string)

// ExecuteFunc is called when the server executes a resource.
type ExecuteFunc func(args []byte)

// Node is a value-carrying leaf: a single-instance resource or a resource instance.
type Node interface {
	Path() Path
	Type() schema.ResourceType
	Operation() schema.Operation
	SetOperation(op schema.Operation)
	SetValueUpdatedFunc(fn ValueUpdatedFunc)

	SetValue(payload []byte) error
	SetInt(v int64) error
	Payload() []byte
	ValueString() string
	ValueInt() int64

	Read() ([]byte, error)
	Write(payload []byte) error
}

// node holds the state shared by resources and resource instances.
type node struct {
	mu sync.RWMutex

	client     *Client
	path       Path
	name       string
	typ        schema.ResourceType
	observable bool

	// container is set on the base of a multi-instance resource.
	container bool

	operation    schema.Operation
	payload      []byte
	dirty        bool
	valueUpdated ValueUpdatedFunc
}

// Path returns the address of this node.
func (n *node) Path() Path {
	return n.path
}

// Type returns the resource type.
func (n *node) Type() schema.ResourceType {
	return n.typ
}

// Observable returns true if changes are reported to observers.
func (n *node) Observable() bool {
	return n.observable
}

// Operation returns the server access policy.
func (n *node) Operation() schema.Operation {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.operation
}

// SetOperation sets the server access policy.
func (n *node) SetOperation(op schema.Operation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.operation = op
}

// SetValueUpdatedFunc sets the callback invoked after a server write.
func (n *node) SetValueUpdatedFunc(fn ValueUpdatedFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.valueUpdated = fn
}

// SetValue stores a payload. The payload is copied.
func (n *node) SetValue(payload []byte) error {
	if n.container {
		return ErrMultipleInstance
	}

	n.mu.Lock()
	changed := !bytes.Equal(n.payload, payload)
	if changed {
		n.payload = append([]byte(nil), payload...)
		n.dirty = true
	}
	n.mu.Unlock()

	if changed && n.observable {
		n.client.notify(n.path, n.Payload())
	}
	return nil
}

// SetInt stores the decimal text of v.
func (n *node) SetInt(v int64) error {
	return n.SetValue(strconv.AppendInt(nil, v, 10))
}

// Payload returns a copy of the stored payload.
func (n *node) Payload() []byte {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]byte(nil), n.payload...)
}

// ValueString returns the payload as a string.
func (n *node) ValueString() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return string(n.payload)
}

// ValueInt parses the payload as a decimal integer. Empty or
// unparsable payloads read as 0.
func (n *node) ValueInt() int64 {
	s := strings.TrimSpace(n.ValueString())
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Read returns the payload on behalf of the server.
func (n *node) Read() ([]byte, error) {
	if !n.Operation().CanRead() {
		return nil, ErrNotReadable
	}
	return n.Payload(), nil
}

// Write stores a payload on behalf of the server and invokes the
// value-updated callback.
func (n *node) Write(payload []byte) error {
	if !n.Operation().CanWrite() {
		return ErrNotWritable
	}
	if err := n.SetValue(payload); err != nil {
		return err
	}

	n.mu.RLock()
	fn := n.valueUpdated
	n.mu.RUnlock()

	if fn != nil {
		fn(n.name)
	}
	return nil
}

// IsDirty returns true if the payload changed since the last ClearDirty call.
func (n *node) IsDirty() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.dirty
}

// ClearDirty clears the dirty flag.
func (n *node) ClearDirty() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dirty = false
}

// Resource is a named resource of an object instance.
type Resource struct {
	node

	typeLabel string
	multiple  bool

	execute   ExecuteFunc
	instances map[int]*ResourceInstance
}

func newResource(inst *ObjectInstance, spec ResourceSpec) *Resource {
	r := &Resource{
		typeLabel: spec.TypeLabel,
		multiple:  spec.MultipleInstances,
		instances: make(map[int]*ResourceInstance),
	}
	r.client = inst.object.client
	r.name = spec.Name
	r.typ = spec.Type
	r.observable = spec.Observable
	r.container = spec.MultipleInstances
	r.operation = schema.OpGet
	r.path = Path{
		Object:           inst.object.name,
		Instance:         inst.id,
		Resource:         spec.Name,
		ResourceInstance: schema.SingleInstance,
	}
	return r
}

// Name returns the resource name, e.g. "5700".
func (r *Resource) Name() string {
	return r.name
}

// TypeLabel returns the human-readable type.
func (r *Resource) TypeLabel() string {
	return r.typeLabel
}

// MultipleInstances returns true if values live in resource instances.
func (r *Resource) MultipleInstances() bool {
	return r.multiple
}

// ResourceInstance returns the resource instance with the given index.
func (r *Resource) ResourceInstance(index int) (*ResourceInstance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ri, exists := r.instances[index]
	return ri, exists
}

// ResourceInstances returns all resource instances ordered by index.
func (r *Resource) ResourceInstances() []*ResourceInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ResourceInstance, 0, len(r.instances))
	for _, ri := range r.instances {
		result = append(result, ri)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].index < result[j].index })
	return result
}

func (r *Resource) addInstance(spec ResourceSpec, index int) *ResourceInstance {
	ri := &ResourceInstance{index: index}
	ri.client = r.client
	ri.name = r.name
	ri.typ = spec.Type
	ri.observable = spec.Observable
	ri.operation = schema.OpGet
	ri.path = r.path
	ri.path.ResourceInstance = index

	r.mu.Lock()
	r.instances[index] = ri
	r.mu.Unlock()
	return ri
}

// SetExecuteFunc sets the function run by Execute.
func (r *Resource) SetExecuteFunc(fn ExecuteFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.execute = fn
	return nil
}

// Execute runs the execute function on behalf of the server.
func (r *Resource) Execute(args []byte) error {
	if !r.Operation().CanExecute() {
		return ErrNotExecutable
	}

	r.mu.RLock()
	fn := r.execute
	r.mu.RUnlock()

	if fn == nil {
		return ErrNoExecuteFunc
	}
	fn(args)
	return nil
}

// ResourceInstance is one indexed value of a multi-instance resource.
type ResourceInstance struct {
	node

	index int
}

// Index returns the resource instance index.
func (ri *ResourceInstance) Index() int {
	return ri.index
}

// Compile-time interface satisfaction checks.
var (
	_ Node = (*Resource)(nil)
	_ Node = (*ResourceInstance)(nil)
)
