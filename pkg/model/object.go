package model

import (
	"errors"
	"sort"
	"sync"
)

// Object errors.
var (
	ErrInstanceNotFound = errors.New("object instance not found")
	ErrInstanceLimit    = errors.New("object instance limit reached")
	ErrInvalidInstance  = errors.New("invalid object instance ID")
)

// Object is one LWM2M object type holding its instances.
type Object struct {
	mu sync.RWMutex

	client *Client
	name   string

	// Instances indexed by ID.
	instances map[int]*ObjectInstance
}

func newObject(c *Client, name string) *Object {
	return &Object{
		client:    c,
		name:      name,
		instances: make(map[int]*ObjectInstance),
	}
}

// Name returns the object name, e.g. "3303".
func (o *Object) Name() string {
	return o.name
}

// CreateInstance returns the instance with the given ID, creating it if needed.
func (o *Object) CreateInstance(id int) (*ObjectInstance, error) {
	if id < 0 || id > 65534 {
		return nil, ErrInvalidInstance
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if inst, exists := o.instances[id]; exists {
		return inst, nil
	}
	if max := o.client.config.MaxInstancesPerObject; max > 0 && len(o.instances) >= max {
		return nil, ErrInstanceLimit
	}

	inst := newObjectInstance(o, id)
	o.instances[id] = inst
	o.client.debug("object instance created", "object", o.name, "instance", id)
	return inst, nil
}

// Instance returns an instance by ID.
func (o *Object) Instance(id int) (*ObjectInstance, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	inst, exists := o.instances[id]
	return inst, exists
}

// RemoveInstance removes an instance. Returns false if it did not exist.
func (o *Object) RemoveInstance(id int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.instances[id]; !exists {
		return false
	}
	delete(o.instances, id)
	o.client.debug("object instance removed", "object", o.name, "instance", id)
	return true
}

// InstanceCount returns the number of instances.
func (o *Object) InstanceCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.instances)
}

// Instances returns all instances ordered by ID.
func (o *Object) Instances() []*ObjectInstance {
	o.mu.RLock()
	defer o.mu.RUnlock()

	result := make([]*ObjectInstance, 0, len(o.instances))
	for _, inst := range o.instances {
		result = append(result, inst)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].id < result[j].id })
	return result
}
