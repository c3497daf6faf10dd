package indexed

// Marshal encodes v as delimiter-joined value segments.
func Marshal(v any, delimiter string) (string, error) {
	return marshal(v, delimiter, false, 0)
}

// MarshalMapLike encodes v with every record field emitted as a name segment
// followed by a value segment.
func MarshalMapLike(v any, delimiter string) (string, error) {
	return marshal(v, delimiter, true, 0)
}

func marshal(v any, delimiter string, mapLike bool, capacity int) (string, error) {
	s := NewWithCapacity(delimiter, mapLike, capacity)
	if err := s.Encode(v); err != nil {
		return "", err
	}
	return s.Finish(), nil
}
