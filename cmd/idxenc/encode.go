package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wippyai/indexed"
)

// member and object preserve source order, which decoding into a Go map
// would destroy. object drives the record traversal itself, so nested
// JSON objects flatten exactly like nested structs.
type member struct {
	val any
	key string
}

type object []member

func (o object) MarshalIndexed(s *indexed.Serializer) error {
	for _, m := range o {
		if err := s.Field(m.key, m.val); err != nil {
			return err
		}
	}
	return s.End()
}

// encodeJSON reads a single top-level JSON object and encodes it as indexed
// text.
func encodeJSON(r io.Reader, delimiter string, mapLike bool, capacity int) (string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return "", fmt.Errorf("top-level value must be a JSON object, got %v", tok)
	}

	obj, err := parseObject(dec)
	if err != nil {
		return "", err
	}

	s := indexed.NewWithCapacity(delimiter, mapLike, capacity)
	if err := s.Encode(obj); err != nil {
		return "", err
	}
	return s.Finish(), nil
}

// parseObject consumes members up to and including the closing brace.
func parseObject(dec *json.Decoder) (object, error) {
	var obj object
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}

		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, member{key: key, val: val})
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return obj, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			// Collected and handed over as-is; the serializer rejects
			// sequences with its own unsupported-shape error.
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected token %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", t.String())
		}
		return f, nil
	default:
		// string, bool, or nil
		return tok, nil
	}
}

func parseArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return arr, nil
}
