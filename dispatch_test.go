package indexed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/indexed/errors"
)

func TestEncodePrimitiveShapes(t *testing.T) {
	stars := uint8(10)

	tests := []struct {
		value any
		name  string
		want  string
	}{
		{true, "bool true", "1"},
		{false, "bool false", "0"},
		{int(42), "int", "42"},
		{int8(-8), "int8", "-8"},
		{int16(-16), "int16", "-16"},
		{int32(-32), "int32", "-32"},
		{int64(-64), "int64", "-64"},
		{uint(1), "uint", "1"},
		{uint8(255), "uint8", "255"},
		{uint16(65535), "uint16", "65535"},
		{uint32(7), "uint32", "7"},
		{uint64(9), "uint64", "9"},
		{float32(0.5), "float32", "0.5"},
		{float64(-1.25), "float64", "-1.25"},
		{"abc", "string", "abc"},
		{Char('A'), "char", "A"},
		{rune('A'), "bare rune is int32", "65"},
		{[]byte{0, 1, 2}, "bytes", "AAEC"},
		{nil, "absent", ","},
		{&stars, "present optional", "10"},
		{(*uint8)(nil), "absent optional", ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(",", false)
			require.NoError(t, s.Encode(tt.value))
			assert.Equal(t, tt.want, s.Finish())
		})
	}
}

func TestEncodeNamedTypes(t *testing.T) {
	type levelID uint64
	type rating float64
	type title string

	s := New(":", false)
	require.NoError(t, s.Encode(levelID(128)))
	require.NoError(t, s.Encode(rating(9.5)))
	require.NoError(t, s.Encode(title("Clubstep")))
	assert.Equal(t, "128:9.5:Clubstep", s.Finish())
}

func TestEncodeNamedByteSlice(t *testing.T) {
	type payload []byte
	s := New(",", false)
	require.NoError(t, s.Encode(payload{0, 1, 2}))
	assert.Equal(t, "AAEC", s.Finish())
}

func TestUnsupportedShapes(t *testing.T) {
	unsupportedErr := &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindUnsupported}

	tests := []struct {
		value any
		name  string
		shape string
	}{
		{[]int{1, 2}, "slice", "[]int"},
		{[2]int{1, 2}, "array", "[2]int"},
		{map[string]int{"a": 1}, "map", "map[string]int"},
		{complex(1, 2), "complex", "complex128"},
		{func() {}, "func", "func()"},
		{make(chan int), "chan", "chan int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(",", false)
			require.NoError(t, s.Int(1))

			err := s.Encode(tt.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, unsupportedErr)

			var ie *errors.Error
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.shape, ie.Shape)

			// The failing dispatch left the buffer untouched.
			assert.Equal(t, "1", s.Finish())
		})
	}
}

type levelRecord struct {
	ID   uint64
	Name string
}

func (l levelRecord) MarshalIndexed(s *Serializer) error {
	if err := s.Field("1", l.ID); err != nil {
		return err
	}
	if err := s.Field("2", l.Name); err != nil {
		return err
	}
	return s.End()
}

func TestMarshalerDrivenRecord(t *testing.T) {
	l := levelRecord{ID: 42, Name: "Stereo Madness"}

	out, err := Marshal(l, ":")
	require.NoError(t, err)
	assert.Equal(t, "42:Stereo Madness", out)

	out, err = MarshalMapLike(l, ":")
	require.NoError(t, err)
	assert.Equal(t, "1:42:2:Stereo Madness", out)
}

func TestTypedNilMarshalerIsAbsent(t *testing.T) {
	var l *ptrMarshaler

	s := New(",", false)
	require.NoError(t, s.Encode(l))
	assert.Equal(t, ",", s.Finish())
}

type ptrMarshaler struct{}

func (p *ptrMarshaler) MarshalIndexed(s *Serializer) error {
	return s.End()
}

type forgetsEnd struct{}

func (f forgetsEnd) MarshalIndexed(s *Serializer) error {
	return s.Field("a", 1)
}

func TestMarshalerMustCallEnd(t *testing.T) {
	s := New(",", false)
	err := s.Encode(forgetsEnd{})
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindProtocol})
}

func TestFirstErrorWins(t *testing.T) {
	type bad struct {
		A int
		B []int
		C int
	}

	_, err := Marshal(bad{A: 1, B: []int{2}, C: 3}, ",")
	require.Error(t, err)

	var ie *errors.Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, errors.KindUnsupported, ie.Kind)
	assert.Equal(t, []string{"B"}, ie.Path)
}
