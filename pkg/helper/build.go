package helper

import (
	"errors"
	"fmt"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// MakeObject creates the runtime object, its instance and every declared
// resource. It must be called before values can be set or read.
//
// Resource creation is best-effort: every entry is attempted, failures are
// joined into the returned error and whatever was created stays in the
// runtime. If the object or the instance cannot be created, no resources
// are attempted. Unnamed table entries are skipped. A shared handle of a
// different object is released and ErrObjectMismatch returned.
func (h *Helper) MakeObject() error {
	if h.state == StateClosed {
		return ErrClosed
	}
	if h.def == nil {
		h.trace("no object definition")
		return ErrNoDefinition
	}

	n := h.def.Len()
	h.trace("making object", "resources", n)

	if h.handle != nil && h.handle.Name() != h.def.Name {
		name := h.handle.Name()
		h.trace("shared object does not match definition", "shared", name)
		h.handle.release()
		h.handle = nil
		return fmt.Errorf("%w: %s is not %s", ErrObjectMismatch, name, h.def.Name)
	}

	if h.handle == nil {
		if h.runtime == nil {
			return ErrNoRuntime
		}
		obj, err := h.runtime.CreateObject(h.def.Name)
		if err != nil {
			h.trace("unable to create object", "error", err)
			return fmt.Errorf("%w %s: %w", ErrObjectCreate, h.def.Name, err)
		}
		h.handle = newObjectHandle(h.runtime, obj)
	}

	inst, err := h.handle.Object().CreateInstance(h.def.InstanceID())
	if err != nil {
		h.trace("unable to create object instance", "error", err)
		return fmt.Errorf("%w %s/%d: %w", ErrInstanceCreate, h.def.Name, h.def.InstanceID(), err)
	}
	h.state = StateBuilt

	var errs []error
	for i := 0; i < n; i++ {
		def := h.def.Resource(i)
		if def.Name == "" {
			h.trace("skipping unnamed resource entry", "entry", i)
			continue
		}
		if err := h.makeResource(inst, &def); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// makeResource creates one declared resource, or one instance of a
// multi-instance resource together with its base if that is missing.
func (h *Helper) makeResource(inst Instance, def *schema.ResourceDef) error {
	spec := model.ResourceSpec{
		Name:              def.Name,
		TypeLabel:         def.TypeLabel,
		Type:              def.Type,
		Observable:        def.Observable,
		MultipleInstances: def.MultiInstance(),
	}

	if !def.MultiInstance() {
		h.trace("creating single-instance resource", "resource", def.Name)
		res, err := inst.CreateResource(spec)
		if err != nil {
			h.trace("unable to create single-instance resource", "resource", def.Name, "error", err)
			return fmt.Errorf("%w %s: %w", ErrResourceCreate, def.Name, err)
		}
		h.configure(res, def)
		return nil
	}

	var baseErr error
	if _, ok := inst.Resource(def.Name); !ok {
		h.trace("creating base of multi-instance resource", "resource", def.Name)
		if _, err := inst.CreateResource(spec); err != nil {
			h.trace("unable to create base of multi-instance resource", "resource", def.Name, "error", err)
			baseErr = fmt.Errorf("%w %s (base): %w", ErrResourceCreate, def.Name, err)
		}
	}

	h.trace("creating resource instance", "resource", def.Name, "resource_instance", def.Instance)
	ri, err := inst.CreateResourceInstance(spec, def.Instance)
	if err != nil {
		h.trace("unable to create resource instance", "resource", def.Name,
			"resource_instance", def.Instance, "error", err)
		return errors.Join(baseErr, fmt.Errorf("%w %s/%d: %w", ErrResourceCreate, def.Name, def.Instance, err))
	}
	h.configure(ri, def)
	return baseErr
}

func (h *Helper) configure(n model.Node, def *schema.ResourceDef) {
	n.SetOperation(def.Operation)
	if h.valueUpdated != nil {
		n.SetValueUpdatedFunc(h.valueUpdated)
	}
}
