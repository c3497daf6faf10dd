package indexed

import (
	"github.com/wippyai/indexed/errors"
)

// Marshaler lets a type drive its own record traversal. MarshalIndexed is
// called with the record already open; implementations call Field once per
// field in order and End exactly once before returning:
//
//	func (l Level) MarshalIndexed(s *indexed.Serializer) error {
//		if err := s.Field("1", l.ID); err != nil {
//			return err
//		}
//		if err := s.Field("2", l.Name); err != nil {
//			return err
//		}
//		return s.End()
//	}
type Marshaler interface {
	MarshalIndexed(s *Serializer) error
}

// Field appends one record field. In map-like mode the field name becomes
// its own segment before the value; otherwise only the value is appended.
// Nested records flatten into the same buffer with no grouping syntax.
func (s *Serializer) Field(name string, v any) error {
	if s.mapLike {
		if err := s.Str(name); err != nil {
			return err
		}
	}
	if err := s.Encode(v); err != nil {
		if ie, ok := err.(*errors.Error); ok {
			return ie.Prefix(name)
		}
		return err
	}
	return nil
}
