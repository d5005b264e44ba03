package helper

import (
	"strconv"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Value is a typed resource value. The variants are Integer, Float,
// Boolean, String and Time; OBJLINK and OPAQUE have none.
type Value interface {
	// Type returns the resource type the value belongs to.
	Type() schema.ResourceType

	// String returns the value as text.
	String() string

	isValue()
}

// Integer is an INTEGER value.
type Integer int64

// Float is a FLOAT value.
type Float float32

// Boolean is a BOOLEAN value.
type Boolean bool

// String is a STRING value.
type String string

// Time is a TIME value in seconds since the Unix epoch.
type Time int64

func (Integer) Type() schema.ResourceType { return schema.TypeInteger }
func (Float) Type() schema.ResourceType   { return schema.TypeFloat }
func (Boolean) Type() schema.ResourceType { return schema.TypeBoolean }
func (String) Type() schema.ResourceType  { return schema.TypeString }
func (Time) Type() schema.ResourceType    { return schema.TypeTime }

func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string   { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }
func (v String) String() string  { return string(v) }
func (v Time) String() string    { return strconv.FormatInt(int64(v), 10) }

func (Integer) isValue() {}
func (Float) isValue()   {}
func (Boolean) isValue() {}
func (String) isValue()  {}
func (Time) isValue()    {}

// fits reports whether v may be stored in a resource of type t.
// Integer values also fit TIME resources.
func fits(v Value, t schema.ResourceType) bool {
	if v.Type() == t {
		return true
	}
	_, isInt := v.(Integer)
	return isInt && t == schema.TypeTime
}

// ParseValue parses text as a value of type t.
func ParseValue(t schema.ResourceType, text string) (Value, error) {
	switch t {
	case schema.TypeString:
		return String(text), nil
	case schema.TypeInteger:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, err
		}
		return Integer(v), nil
	case schema.TypeTime:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, err
		}
		return Time(v), nil
	case schema.TypeFloat:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		return Float(v), nil
	case schema.TypeBoolean:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, err
		}
		return Boolean(v), nil
	default:
		return nil, ErrUnsupportedType
	}
}
