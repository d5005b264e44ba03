package helper

import (
	"fmt"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// lookup returns the first declared resource matching (name, inst).
func (h *Helper) lookup(name string, inst int) (schema.ResourceDef, error) {
	if h.state == StateClosed {
		return schema.ResourceDef{}, ErrClosed
	}
	if h.def == nil {
		h.trace("no object definition")
		return schema.ResourceDef{}, ErrNoDefinition
	}
	def, ok := h.def.Lookup(name, inst)
	if !ok {
		h.trace("resource not defined", "resource", name, "resource_instance", inst)
		return schema.ResourceDef{}, fmt.Errorf("%w: %s/%d", ErrResourceUndefined, name, inst)
	}
	return def, nil
}

// lookupType returns the declared resource (name, inst) if its type is one
// of want.
func (h *Helper) lookupType(name string, inst int, want ...schema.ResourceType) (schema.ResourceDef, error) {
	def, err := h.lookup(name, inst)
	if err != nil {
		return def, err
	}
	for _, t := range want {
		if def.Type == t {
			return def, nil
		}
	}
	h.trace("resource type mismatch", "resource", name, "resource_instance", inst, "type", def.Type.String())
	return def, fmt.Errorf("%w: %s is %s", ErrTypeMismatch, name, def.Type)
}

// Set writes v into the declared resource (name, inst).
func (h *Helper) Set(name string, inst int, v Value) error {
	def, err := h.lookup(name, inst)
	if err != nil {
		return err
	}
	return h.setValue(v, def.Type, name, inst, def.Format)
}

// Get reads the declared resource (name, inst) as a value of its declared type.
func (h *Helper) Get(name string, inst int) (Value, error) {
	def, err := h.lookup(name, inst)
	if err != nil {
		return nil, err
	}
	return h.getValue(def.Type, name, inst)
}

// SetInt writes an INTEGER or TIME resource.
func (h *Helper) SetInt(name string, inst int, v int64) error {
	def, err := h.lookupType(name, inst, schema.TypeInteger, schema.TypeTime)
	if err != nil {
		return err
	}
	return h.setValue(Integer(v), def.Type, name, inst, def.Format)
}

// GetInt reads an INTEGER or TIME resource.
func (h *Helper) GetInt(name string, inst int) (int64, error) {
	def, err := h.lookupType(name, inst, schema.TypeInteger, schema.TypeTime)
	if err != nil {
		return 0, err
	}
	v, err := h.getValue(def.Type, name, inst)
	if err != nil {
		return 0, err
	}
	switch v := v.(type) {
	case Integer:
		return int64(v), nil
	case Time:
		return int64(v), nil
	}
	return 0, ErrTypeMismatch
}

// SetTime writes a TIME resource.
func (h *Helper) SetTime(name string, inst int, v int64) error {
	def, err := h.lookupType(name, inst, schema.TypeTime)
	if err != nil {
		return err
	}
	return h.setValue(Time(v), def.Type, name, inst, def.Format)
}

// GetTime reads a TIME resource.
func (h *Helper) GetTime(name string, inst int) (int64, error) {
	def, err := h.lookupType(name, inst, schema.TypeTime)
	if err != nil {
		return 0, err
	}
	v, err := h.getValue(def.Type, name, inst)
	if err != nil {
		return 0, err
	}
	return int64(v.(Time)), nil
}

// SetFloat writes a FLOAT resource using its declared format.
func (h *Helper) SetFloat(name string, inst int, v float32) error {
	def, err := h.lookupType(name, inst, schema.TypeFloat)
	if err != nil {
		return err
	}
	return h.setValue(Float(v), def.Type, name, inst, def.Format)
}

// GetFloat reads a FLOAT resource.
func (h *Helper) GetFloat(name string, inst int) (float32, error) {
	def, err := h.lookupType(name, inst, schema.TypeFloat)
	if err != nil {
		return 0, err
	}
	v, err := h.getValue(def.Type, name, inst)
	if err != nil {
		return 0, err
	}
	return float32(v.(Float)), nil
}

// SetBool writes a BOOLEAN resource.
func (h *Helper) SetBool(name string, inst int, v bool) error {
	def, err := h.lookupType(name, inst, schema.TypeBoolean)
	if err != nil {
		return err
	}
	return h.setValue(Boolean(v), def.Type, name, inst, def.Format)
}

// GetBool reads a BOOLEAN resource.
func (h *Helper) GetBool(name string, inst int) (bool, error) {
	def, err := h.lookupType(name, inst, schema.TypeBoolean)
	if err != nil {
		return false, err
	}
	v, err := h.getValue(def.Type, name, inst)
	if err != nil {
		return false, err
	}
	return bool(v.(Boolean)), nil
}

// SetString writes a STRING resource.
func (h *Helper) SetString(name string, inst int, v string) error {
	def, err := h.lookupType(name, inst, schema.TypeString)
	if err != nil {
		return err
	}
	return h.setValue(String(v), def.Type, name, inst, def.Format)
}

// GetString reads a STRING resource.
func (h *Helper) GetString(name string, inst int) (string, error) {
	def, err := h.lookupType(name, inst, schema.TypeString)
	if err != nil {
		return "", err
	}
	v, err := h.getValue(def.Type, name, inst)
	if err != nil {
		return "", err
	}
	return string(v.(String)), nil
}

// GetStringN reads a STRING resource cut to at most size-1 bytes, the space
// left in a buffer of size bytes after its terminator. A size of 0 or less
// returns "".
func (h *Helper) GetStringN(name string, inst int, size int) (string, error) {
	s, err := h.GetString(name, inst)
	if err != nil {
		return "", err
	}
	if size <= 0 {
		return "", nil
	}
	if len(s) > size-1 {
		s = s[:size-1]
	}
	return s, nil
}

// GetStringInto copies a STRING resource into buf followed by a zero byte,
// truncating to len(buf)-1 bytes. It returns the number of string bytes copied.
func (h *Helper) GetStringInto(buf []byte, name string, inst int) (int, error) {
	s, err := h.GetStringN(name, inst, len(buf))
	if err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return 0, nil
	}
	n := copy(buf, s)
	buf[n] = 0
	return n, nil
}
