package indexed

import (
	"reflect"

	"github.com/wippyai/indexed/errors"
)

// Char marks a rune as a single character. A bare rune is indistinguishable
// from int32 and routes through integer encoding; wrap it in Char (or call
// Rune directly) to get character encoding instead.
type Char rune

// Encode dispatches one value on its shape. Each supported shape maps to
// exactly one append; unsupported shapes are rejected by name without
// touching the buffer.
func (s *Serializer) Encode(v any) error {
	switch x := v.(type) {
	case nil:
		return s.None()
	case bool:
		return s.Bool(x)
	case int:
		return s.Int(int64(x))
	case int8:
		return s.Int(int64(x))
	case int16:
		return s.Int(int64(x))
	case int32: // also rune
		return s.Int(int64(x))
	case int64:
		return s.Int(x)
	case uint:
		return s.Uint(uint64(x))
	case uint8:
		return s.Uint(uint64(x))
	case uint16:
		return s.Uint(uint64(x))
	case uint32:
		return s.Uint(uint64(x))
	case uint64:
		return s.Uint(x)
	case float32:
		return s.Float32(x)
	case float64:
		return s.Float64(x)
	case Char:
		return s.Rune(rune(x))
	case string:
		return s.Str(x)
	case []byte:
		return s.Bytes(x)
	case Marshaler:
		// A typed nil pointer still satisfies the interface; treat it as
		// an absent optional rather than calling through it.
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return s.None()
		}
		return s.encodeMarshaler(x)
	}
	return s.encodeReflect(reflect.ValueOf(v))
}

// encodeReflect is the slow path for named types, pointers, and structs that
// the type switch cannot see.
func (s *Serializer) encodeReflect(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		return s.Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.Int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return s.Uint(v.Uint())
	case reflect.Float32:
		return s.Float32(float32(v.Float()))
	case reflect.Float64:
		return s.Float64(v.Float())
	case reflect.String:
		return s.Str(v.String())
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return s.None()
		}
		return s.Encode(v.Elem().Interface())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return s.Bytes(v.Bytes())
		}
		return errors.Unsupported(errors.PhaseEncode, v.Type().String())
	case reflect.Struct:
		return s.encodeStruct(v)
	default:
		// Sequences, maps, arrays, funcs, channels, complex numbers: the
		// format has no representation for them, and approximating one
		// would produce ambiguous output.
		return errors.Unsupported(errors.PhaseEncode, v.Type().String())
	}
}

func (s *Serializer) encodeMarshaler(m Marshaler) error {
	depth := s.open
	s.Begin()
	if err := m.MarshalIndexed(s); err != nil {
		return err
	}
	if s.open != depth {
		return errors.Protocol(errors.PhaseEncode, "MarshalIndexed returned without calling End")
	}
	return nil
}
