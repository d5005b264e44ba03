package helper

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Helper errors.
var (
	ErrNoDefinition      = errors.New("no object definition")
	ErrNoRuntime         = errors.New("no runtime")
	ErrClosed            = errors.New("helper closed")
	ErrNotBuilt          = errors.New("object not built")
	ErrObjectCreate      = errors.New("unable to create object")
	ErrObjectMismatch    = errors.New("shared object does not match definition")
	ErrInstanceCreate    = errors.New("unable to create object instance")
	ErrResourceCreate    = errors.New("unable to create resource")
	ErrInstanceNotFound  = errors.New("object instance not found")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrResourceInstance  = errors.New("resource instance not found")
	ErrResourceUndefined = errors.New("resource not defined")
	ErrTypeMismatch      = errors.New("resource type mismatch")
	ErrUnsupportedType   = errors.New("unsupported resource type")
)

// State is the lifecycle state of a Helper.
type State uint8

const (
	StateUnbuilt State = iota
	StateBuilt
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "UNBUILT"
	case StateBuilt:
		return "BUILT"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Updater refreshes observable resource values from their source.
type Updater interface {
	UpdateObservableResources()
}

// Config configures a Helper.
type Config struct {
	// Runtime creates the object. It may be nil when Shared is set.
	Runtime Runtime

	// ValueUpdated is attached to every resource and is called with the
	// resource name after the server writes it.
	ValueUpdated model.ValueUpdatedFunc

	// Shared is the handle of an already built sibling instance of the
	// same object type.
	Shared *ObjectHandle

	// Logger is the optional logger for trace output.
	Logger *slog.Logger

	// Debug enables trace output.
	Debug bool
}

// Helper binds an object definition to its runtime object.
// A Helper is not safe for concurrent use.
type Helper struct {
	def          *schema.ObjectDef
	runtime      Runtime
	valueUpdated model.ValueUpdatedFunc
	handle       *ObjectHandle

	logger *slog.Logger
	debug  bool

	state State
}

// New creates a Helper for def. The definition is borrowed and must not
// change afterwards.
func New(def *schema.ObjectDef, cfg Config) *Helper {
	h := &Helper{
		def:          def,
		runtime:      cfg.Runtime,
		valueUpdated: cfg.ValueUpdated,
		logger:       cfg.Logger,
		debug:        cfg.Debug,
	}

	if cfg.Shared != nil {
		cfg.Shared.acquire()
		h.handle = cfg.Shared
		if h.runtime == nil {
			h.runtime = cfg.Shared.runtime
		}
	}
	return h
}

// Definition returns the object definition.
func (h *Helper) Definition() *schema.ObjectDef {
	return h.def
}

// Object returns the runtime object handle, or nil if there is none yet.
func (h *Helper) Object() *ObjectHandle {
	return h.handle
}

// State returns the lifecycle state.
func (h *Helper) State() State {
	return h.state
}

// UpdateObservableResources does nothing. Objects with observable resources
// define their own version that pulls fresh values and sets them.
func (h *Helper) UpdateObservableResources() {}

// SetExecuteCallback attaches fn to the executable resource name.
func (h *Helper) SetExecuteCallback(name string, fn model.ExecuteFunc) error {
	inst, err := h.instance()
	if err != nil {
		return err
	}

	res, ok := inst.Resource(name)
	if !ok {
		h.trace("unable to find resource", "resource", name)
		return fmt.Errorf("%w: %s", ErrResourceNotFound, name)
	}

	h.trace("setting execute callback", "resource", name)
	return res.SetExecuteFunc(fn)
}

// Close removes this object instance from the runtime. When no other
// Helper holds the runtime object and it has no instances left, the object
// is deleted too. Close on a closed Helper does nothing.
func (h *Helper) Close() error {
	if h.state == StateClosed {
		return nil
	}
	h.state = StateClosed

	handle := h.handle
	h.handle = nil
	if handle == nil {
		return nil
	}

	obj := handle.Object()
	if h.def != nil {
		id := h.def.InstanceID()
		if _, ok := obj.Instance(id); ok {
			obj.RemoveInstance(id)
			h.trace("removed object instance", "instance", id)
		} else {
			h.trace("object instance already gone", "instance", id)
		}
	}

	if !handle.release() {
		h.trace("object still shared", "refs", handle.Refs())
		return nil
	}
	if n := obj.InstanceCount(); n > 0 {
		h.trace("object still has instances", "count", n)
		return nil
	}

	h.trace("deleting object")
	if err := handle.runtime.DeleteObject(obj.Name()); err != nil {
		return fmt.Errorf("delete object %s: %w", obj.Name(), err)
	}
	return nil
}

// instance returns the runtime object instance of this Helper.
func (h *Helper) instance() (Instance, error) {
	if h.state == StateClosed {
		return nil, ErrClosed
	}
	if h.def == nil {
		h.trace("no object definition")
		return nil, ErrNoDefinition
	}
	if h.handle == nil {
		h.trace("object not built")
		return nil, ErrNotBuilt
	}

	inst, ok := h.handle.Object().Instance(h.def.InstanceID())
	if !ok {
		h.trace("unable to get object instance", "instance", h.def.InstanceID())
		return nil, ErrInstanceNotFound
	}
	return inst, nil
}

func (h *Helper) trace(msg string, args ...any) {
	if !h.debug || h.logger == nil {
		return
	}
	if h.def != nil {
		args = append([]any{"object", h.def.Name, "object_instance", h.def.Instance}, args...)
	}
	h.logger.Debug(msg, args...)
}
