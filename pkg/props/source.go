package props

import (
	"errors"
	"fmt"
	"math"
)

// Decode errors. They are wrapped with the "Interface.Property" key.
var (
	ErrMissingProperty = errors.New("missing property")
	ErrPropertyType    = errors.New("unexpected property type")
	ErrPropertyValue   = errors.New("invalid property value")
)

// PropertySource returns the value of one D-Bus property.
type PropertySource interface {
	Get(iface, name string) (any, bool)
}

// ObjectSource is a PropertySource that knows the object it was read from.
type ObjectSource interface {
	PropertySource
	ObjectPath() string
}

// Map is a PropertySource keyed by interface, then property name.
type Map map[string]map[string]any

// Get implements PropertySource.
func (m Map) Get(iface, name string) (any, bool) {
	v, ok := m[iface][name]
	return v, ok
}

func objectPath(src PropertySource) string {
	if o, ok := src.(ObjectSource); ok {
		return o.ObjectPath()
	}
	return ""
}

// asUint32 accepts every integer representation of a u or i D-Bus value.
// Negative values keep their 32-bit two's complement pattern.
func asUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case uint8:
		return uint32(n), true
	case uint16:
		return uint32(n), true
	case uint32:
		return n, true
	case uint64:
		if n > math.MaxUint32 {
			return 0, false
		}
		return uint32(n), true
	case uint:
		if uint64(n) > math.MaxUint32 {
			return 0, false
		}
		return uint32(n), true
	case int8:
		return uint32(int32(n)), true
	case int16:
		return uint32(int32(n)), true
	case int32:
		return uint32(n), true
	case int64:
		return signed(n)
	case int:
		return signed(int64(n))
	}
	return 0, false
}

func signed(n int64) (uint32, bool) {
	switch {
	case n > math.MaxUint32 || n < math.MinInt32:
		return 0, false
	case n < 0:
		return uint32(int32(n)), true
	}
	return uint32(n), true
}

func asUint32s(v any) ([]uint32, bool) {
	switch s := v.(type) {
	case []uint32:
		return s, true
	case []any:
		out := make([]uint32, 0, len(s))
		for _, e := range s {
			n, ok := asUint32(e)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	case []uint64:
		out := make([]uint32, 0, len(s))
		for _, e := range s {
			n, ok := asUint32(e)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	case []int:
		out := make([]uint32, 0, len(s))
		for _, e := range s {
			n, ok := asUint32(e)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	}
	return nil, false
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

// asBytes accepts ay values: byte slices, strings and lists of small integers.
func asBytes(v any) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return b, true
	case string:
		return []byte(b), true
	case []any:
		out := make([]byte, 0, len(b))
		for _, e := range b {
			n, ok := asUint32(e)
			if !ok || n > math.MaxUint8 {
				return nil, false
			}
			out = append(out, byte(n))
		}
		return out, true
	}
	return nil, false
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

// asDict accepts a{sv} dictionaries. CBOR decoding into an interface may
// produce map[any]any.
func asDict(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, e := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = e
		}
		return out, true
	}
	return nil, false
}

func typeError(key string, v any, want string) error {
	return fmt.Errorf("%w: %s is %T, want %s", ErrPropertyType, key, v, want)
}
