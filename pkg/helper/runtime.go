package helper

import (
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// Runtime creates and deletes objects in the device-management client.
type Runtime interface {
	CreateObject(name string) (Object, error)
	DeleteObject(name string) error
}

// Object is a runtime object holding object instances.
type Object interface {
	Name() string
	CreateInstance(id int) (Instance, error)
	Instance(id int) (Instance, bool)
	RemoveInstance(id int) bool
	InstanceCount() int
}

// Instance is a runtime object instance holding resources.
type Instance interface {
	ID() int
	Resource(name string) (Resource, bool)
	CreateResource(spec model.ResourceSpec) (Resource, error)
	CreateResourceInstance(spec model.ResourceSpec, index int) (model.Node, error)
}

// Resource is a runtime resource. For a multi-instance resource the values
// live in its resource instances.
type Resource interface {
	model.Node
	MultipleInstances() bool
	ResourceInstance(index int) (model.Node, bool)
	SetExecuteFunc(fn model.ExecuteFunc) error
}

// NewModelRuntime adapts an in-memory model.Client to the Runtime interface.
func NewModelRuntime(c *model.Client) Runtime {
	return modelRuntime{client: c}
}

type modelRuntime struct {
	client *model.Client
}

func (r modelRuntime) CreateObject(name string) (Object, error) {
	obj, err := r.client.CreateObject(name)
	if err != nil {
		return nil, err
	}
	return modelObject{obj}, nil
}

func (r modelRuntime) DeleteObject(name string) error {
	return r.client.DeleteObject(name)
}

type modelObject struct {
	*model.Object
}

func (o modelObject) CreateInstance(id int) (Instance, error) {
	inst, err := o.Object.CreateInstance(id)
	if err != nil {
		return nil, err
	}
	return modelInstance{inst}, nil
}

func (o modelObject) Instance(id int) (Instance, bool) {
	inst, ok := o.Object.Instance(id)
	if !ok {
		return nil, false
	}
	return modelInstance{inst}, true
}

type modelInstance struct {
	*model.ObjectInstance
}

func (i modelInstance) Resource(name string) (Resource, bool) {
	res, ok := i.ObjectInstance.Resource(name)
	if !ok {
		return nil, false
	}
	return modelResource{res}, true
}

func (i modelInstance) CreateResource(spec model.ResourceSpec) (Resource, error) {
	res, err := i.ObjectInstance.CreateResource(spec)
	if err != nil {
		return nil, err
	}
	return modelResource{res}, nil
}

func (i modelInstance) CreateResourceInstance(spec model.ResourceSpec, index int) (model.Node, error) {
	ri, err := i.ObjectInstance.CreateResourceInstance(spec, index)
	if err != nil {
		return nil, err
	}
	return ri, nil
}

type modelResource struct {
	*model.Resource
}

func (r modelResource) ResourceInstance(index int) (model.Node, bool) {
	ri, ok := r.Resource.ResourceInstance(index)
	if !ok {
		return nil, false
	}
	return ri, true
}

// Compile-time interface satisfaction checks.
var (
	_ Runtime  = modelRuntime{}
	_ Object   = modelObject{}
	_ Instance = modelInstance{}
	_ Resource = modelResource{}
)
