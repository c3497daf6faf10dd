package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/indexed/errors"
)

func TestEncodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter string
		mapLike   bool
		want      string
	}{
		{
			name:      "values only",
			input:     `{"id": 42, "name": "Stereo Madness", "official": true}`,
			delimiter: ":",
			want:      "42:Stereo Madness:1",
		},
		{
			name:      "map-like",
			input:     `{"x": 1, "y": 2}`,
			delimiter: ":",
			mapLike:   true,
			want:      "x:1:y:2",
		},
		{
			name:      "leading null keeps its delimiter",
			input:     `{"a": null, "b": 5}`,
			delimiter: ",",
			want:      ",5",
		},
		{
			name:      "nested objects flatten",
			input:     `{"inner": {"p": 1, "q": 2}, "r": 3}`,
			delimiter: ",",
			want:      "1,2,3",
		},
		{
			name:      "floats use shortest form",
			input:     `{"f": 0.5, "g": -2.25}`,
			delimiter: ",",
			want:      "0.5,-2.25",
		},
		{
			name:      "large integers stay exact",
			input:     `{"id": 9223372036854775807}`,
			delimiter: ",",
			want:      "9223372036854775807",
		},
		{
			name:      "empty object",
			input:     `{}`,
			delimiter: ",",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := encodeJSON(strings.NewReader(tt.input), tt.delimiter, tt.mapLike, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEncodeJSONRejectsArrays(t *testing.T) {
	_, err := encodeJSON(strings.NewReader(`{"tags": [1, 2, 3]}`), ",", false, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindUnsupported})
	assert.Contains(t, err.Error(), "tags")
}

func TestEncodeJSONRejectsNonObjectTopLevel(t *testing.T) {
	for _, input := range []string{`[1,2]`, `42`, `"str"`, `true`} {
		_, err := encodeJSON(strings.NewReader(input), ",", false, 0)
		assert.Error(t, err, "input %s", input)
	}
}

func TestEncodeJSONKeyOrderPreserved(t *testing.T) {
	// Keys encode in the order they appear in the document, not sorted.
	out, err := encodeJSON(strings.NewReader(`{"z": 1, "a": 2, "m": 3}`), ":", true, 0)
	require.NoError(t, err)
	assert.Equal(t, "z:1:a:2:m:3", out)
}
