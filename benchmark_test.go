package indexed

import (
	"testing"
)

type benchLevel struct {
	ID          uint64 `indexed:"1"`
	Name        string `indexed:"2"`
	Description string `indexed:"3"`
	Audio       uint8  `indexed:"12"`
	Stars       *uint8 `indexed:"18"`
	Featured    bool   `indexed:"19"`
	Rating      float64
}

var benchValue = benchLevel{
	ID:          39029371,
	Name:        "Stereo Madness",
	Description: "The first level",
	Audio:       1,
	Featured:    true,
	Rating:      9.5,
}

func BenchmarkMarshal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(benchValue, ":"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalMapLike(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := MarshalMapLike(benchValue, ":"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalWithCapacity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := marshal(benchValue, ":", true, 128); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBytes(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		s := New(",", false)
		if err := s.Bytes(data); err != nil {
			b.Fatal(err)
		}
		_ = s.Finish()
	}
}
