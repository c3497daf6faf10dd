// Package indexed encodes structured values as flat, delimiter-separated
// text.
//
// The format is a single string in which segments are joined by a
// caller-chosen delimiter, with no nesting syntax and no trailing
// delimiter:
//
//	42:Stereo Madness:1:10
//
// In map-like mode each record field contributes two segments, its name and
// its value:
//
//	1:42:2:Stereo Madness
//
// # Architecture Overview
//
// The library is organized into a small core and two satellites:
//
//	indexed/          Serializer (append engine + shape dispatch + traversal)
//	├── errors/       Structured error types (Phase/Kind taxonomy)
//	├── blob/         gzip + base64url packing for large binary payloads
//	└── cmd/idxenc/   CLI encoder with an interactive playground
//
// # Supported shapes
//
//	Shape               Encoding
//	────────────────────────────────────────────
//	bool                "1" / "0"
//	int/uint (any)      decimal
//	float32/float64     shortest round-trip decimal
//	Char / Rune(...)    the character itself (UTF-8)
//	string              verbatim (validated UTF-8)
//	[]byte              unpadded URL-safe base64
//	nil / nil pointer   absent (delimiter only)
//	*T (non-nil)        encodes T directly
//	struct / Marshaler  fields in order, flattened
//
// Sequences, maps, arrays, and every other shape are rejected with a
// structured unsupported-shape error: the format cannot represent them
// without ambiguity, so it refuses rather than approximates.
//
// # Quick Start
//
// Plain structs encode via their exported fields, in declaration order,
// renamed through the `indexed` tag:
//
//	type Level struct {
//		ID     uint64 `indexed:"1"`
//		Name   string `indexed:"2"`
//		Stars  *uint8 `indexed:"18"` // nil encodes as absent
//	}
//
//	out, err := indexed.MarshalMapLike(level, ":")
//
// Types that need full control implement Marshaler and drive the traversal
// themselves through Field and End. For a single pass with manual appends,
// use the Serializer directly:
//
//	s := indexed.New(",", false)
//	s.Begin()
//	_ = s.Field("a", nil) // leading absent field: leading delimiter
//	_ = s.Field("b", 5)
//	_ = s.End()
//	out := s.Finish() // ",5"
//
// A Serializer is exclusively owned by one encoding pass: no sharing, no
// reuse after Finish.
package indexed
