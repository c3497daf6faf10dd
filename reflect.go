package indexed

import (
	"reflect"
)

// encodeStruct walks a plain struct's exported fields in declaration order,
// the external traversal driver for types that do not implement Marshaler.
// The `indexed` tag renames a field; "-" skips it.
func (s *Serializer) encodeStruct(v reflect.Value) error {
	t := v.Type()
	s.Begin()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("indexed"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		if err := s.Field(name, v.Field(i).Interface()); err != nil {
			return err
		}
	}
	return s.End()
}
