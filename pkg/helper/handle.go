package helper

import (
	"sync"
)

// ObjectHandle is a reference-counted runtime object shared by the Helpers
// of sibling object instances. The Helper that creates the runtime object
// holds the first reference; each Helper constructed with the handle in
// Config.Shared holds another.
type ObjectHandle struct {
	mu sync.Mutex

	runtime Runtime
	object  Object
	refs    int
}

func newObjectHandle(rt Runtime, obj Object) *ObjectHandle {
	return &ObjectHandle{
		runtime: rt,
		object:  obj,
		refs:    1,
	}
}

// Object returns the runtime object.
func (h *ObjectHandle) Object() Object {
	return h.object
}

// Name returns the runtime object name.
func (h *ObjectHandle) Name() string {
	return h.object.Name()
}

// Refs returns the number of Helpers holding the handle.
func (h *ObjectHandle) Refs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.refs
}

func (h *ObjectHandle) acquire() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refs++
}

// release drops one reference and reports whether it was the last.
func (h *ObjectHandle) release() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.refs > 0 {
		h.refs--
	}
	return h.refs == 0
}
