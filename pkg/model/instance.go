package model

import (
	"errors"
	"sync"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Instance errors.
var (
	ErrDuplicateResource         = errors.New("duplicate resource")
	ErrDuplicateResourceInstance = errors.New("duplicate resource instance")
	ErrResourceNotFound          = errors.New("resource not found")
	ErrResourceInstanceNotFound  = errors.New("resource instance not found")
	ErrNotMultiInstance          = errors.New("resource does not support multiple instances")
	ErrResourceLimit             = errors.New("resource limit reached")
	ErrInvalidResourceInstance   = errors.New("invalid resource instance index")
)

// ResourceSpec describes a resource to create.
type ResourceSpec struct {
	Name              string
	TypeLabel         string
	Type              schema.ResourceType
	Observable        bool
	MultipleInstances bool
}

// ObjectInstance holds the resources of one object instance.
type ObjectInstance struct {
	mu sync.RWMutex

	object *Object
	id     int

	// Resources in creation order, and indexed by name.
	order     []*Resource
	resources map[string]*Resource

	// nodes counts resources and resource instances against the limit.
	nodes int
}

func newObjectInstance(o *Object, id int) *ObjectInstance {
	return &ObjectInstance{
		object:    o,
		id:        id,
		resources: make(map[string]*Resource),
	}
}

// ID returns the instance ID.
func (i *ObjectInstance) ID() int {
	return i.id
}

// Object returns the owning object.
func (i *ObjectInstance) Object() *Object {
	return i.object
}

// CreateResource creates a resource on this instance.
func (i *ObjectInstance) CreateResource(spec ResourceSpec) (*Resource, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, exists := i.resources[spec.Name]; exists {
		return nil, ErrDuplicateResource
	}
	if err := i.reserveLocked(); err != nil {
		return nil, err
	}

	res := newResource(i, spec)
	i.order = append(i.order, res)
	i.resources[spec.Name] = res
	i.object.client.debug("resource created", "path", res.path.String(),
		"type", spec.Type.String(), "multiple", spec.MultipleInstances)
	return res, nil
}

// CreateResourceInstance creates an indexed instance below an existing
// multi-instance resource.
func (i *ObjectInstance) CreateResourceInstance(spec ResourceSpec, index int) (*ResourceInstance, error) {
	if index < 0 || index > 65534 {
		return nil, ErrInvalidResourceInstance
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	res, exists := i.resources[spec.Name]
	if !exists {
		return nil, ErrResourceNotFound
	}
	if !res.multiple {
		return nil, ErrNotMultiInstance
	}
	if _, exists := res.ResourceInstance(index); exists {
		return nil, ErrDuplicateResourceInstance
	}
	if err := i.reserveLocked(); err != nil {
		return nil, err
	}

	ri := res.addInstance(spec, index)
	i.object.client.debug("resource instance created", "path", ri.path.String())
	return ri, nil
}

func (i *ObjectInstance) reserveLocked() error {
	if max := i.object.client.config.MaxResourcesPerInstance; max > 0 && i.nodes >= max {
		return ErrResourceLimit
	}
	i.nodes++
	return nil
}

// Resource returns a resource by name.
func (i *ObjectInstance) Resource(name string) (*Resource, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	res, exists := i.resources[name]
	return res, exists
}

// Resources returns all resources in creation order.
func (i *ObjectInstance) Resources() []*Resource {
	i.mu.RLock()
	defer i.mu.RUnlock()

	result := make([]*Resource, len(i.order))
	copy(result, i.order)
	return result
}

// ResourceCount returns the number of resources.
func (i *ObjectInstance) ResourceCount() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.order)
}
