package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// MaxFloatTextLength bounds the text rendering of a FLOAT value,
// terminator included. Longer renderings are cut to MaxFloatTextLength-1 bytes.
const MaxFloatTextLength = 32

// DefaultFloatFormat renders FLOAT values that declare no format.
const DefaultFloatFormat = "%f"

// ErrFloatParse is returned when a FLOAT payload is not a number.
var ErrFloatParse = errors.New("unable to parse float payload")

// codec moves one value type between a Value and a runtime node.
type codec struct {
	set func(n model.Node, v Value, format string) error
	get func(n model.Node) (Value, error)
}

// codecs has an entry per supported type. OBJLINK and OPAQUE have none.
var codecs = map[schema.ResourceType]codec{
	schema.TypeString: {
		set: func(n model.Node, v Value, _ string) error {
			return n.SetValue([]byte(v.String()))
		},
		get: func(n model.Node) (Value, error) {
			return String(n.ValueString()), nil
		},
	},
	schema.TypeInteger: {
		set: setInt,
		get: func(n model.Node) (Value, error) {
			return Integer(n.ValueInt()), nil
		},
	},
	schema.TypeTime: {
		set: setInt,
		get: func(n model.Node) (Value, error) {
			return Time(n.ValueInt()), nil
		},
	},
	schema.TypeBoolean: {
		set: func(n model.Node, v Value, _ string) error {
			var i int64
			if v.(Boolean) {
				i = 1
			}
			return n.SetInt(i)
		},
		get: func(n model.Node) (Value, error) {
			return Boolean(n.ValueInt() != 0), nil
		},
	},
	schema.TypeFloat: {
		set: func(n model.Node, v Value, format string) error {
			return n.SetValue(FormatFloat(float32(v.(Float)), format))
		},
		get: func(n model.Node) (Value, error) {
			f, err := ParseFloat(n.ValueString())
			if err != nil {
				return nil, err
			}
			return Float(f), nil
		},
	},
}

func setInt(n model.Node, v Value, _ string) error {
	switch v := v.(type) {
	case Integer:
		return n.SetInt(int64(v))
	case Time:
		return n.SetInt(int64(v))
	}
	return ErrTypeMismatch
}

// FormatFloat renders f with the printf format, DefaultFloatFormat if empty,
// bounded to MaxFloatTextLength-1 bytes.
func FormatFloat(f float32, format string) []byte {
	if format == "" {
		format = DefaultFloatFormat
	}
	b := fmt.Appendf(make([]byte, 0, MaxFloatTextLength), format, f)
	if len(b) > MaxFloatTextLength-1 {
		b = b[:MaxFloatTextLength-1]
	}
	return b
}

// ParseFloat parses a FLOAT payload. Empty text reads as 0.
func ParseFloat(text string) (float32, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFloatParse, text)
	}
	return float32(f), nil
}

// setValue writes v into the resource (name, inst) of declared type typ.
// The type must have a codec and v must fit it.
func (h *Helper) setValue(v Value, typ schema.ResourceType, name string, inst int, format string) error {
	c, ok := codecs[typ]
	if !ok {
		h.trace("unsupported resource type", "resource", name, "type", typ.String())
		return fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
	}
	if !fits(v, typ) {
		h.trace("value does not fit resource type", "resource", name, "type", typ.String(),
			"value_type", v.Type().String())
		return fmt.Errorf("%w: %s is %s, value is %s", ErrTypeMismatch, name, typ, v.Type())
	}

	n, err := h.resolve(name, inst)
	if err != nil {
		return err
	}

	h.trace("setting value", "resource", name, "resource_instance", inst, "type", typ.String())
	return c.set(n, v, format)
}

// getValue reads the resource (name, inst) of declared type typ.
func (h *Helper) getValue(typ schema.ResourceType, name string, inst int) (Value, error) {
	c, ok := codecs[typ]
	if !ok {
		h.trace("unsupported resource type", "resource", name, "type", typ.String())
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
	}

	n, err := h.resolve(name, inst)
	if err != nil {
		return nil, err
	}

	v, err := c.get(n)
	if err != nil {
		h.trace("unable to decode value", "resource", name, "resource_instance", inst, "error", err)
		return nil, err
	}
	return v, nil
}

// resolve finds the node addressed by (name, inst). Multi-instance resources
// resolve to the resource instance inst; single-instance resources resolve
// to the resource itself.
func (h *Helper) resolve(name string, inst int) (model.Node, error) {
	oi, err := h.instance()
	if err != nil {
		return nil, err
	}

	res, ok := oi.Resource(name)
	if !ok {
		h.trace("unable to find resource", "resource", name)
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
	}
	if !res.MultipleInstances() {
		return res, nil
	}

	ri, ok := res.ResourceInstance(inst)
	if !ok {
		h.trace("unable to find resource instance", "resource", name, "resource_instance", inst)
		return nil, fmt.Errorf("%w: %s/%d", ErrResourceInstance, name, inst)
	}
	return ri, nil
}
