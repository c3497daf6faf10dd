package indexed

import (
	"encoding/base64"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/indexed/errors"
)

// Serializer accumulates one flat indexed encoding. It is single-threaded,
// owned by exactly one encoding pass, and consumed by Finish. It is not
// reusable afterward.
type Serializer struct {
	delim   []byte
	buf     []byte
	mapLike bool

	// isStart tracks whether any append has happened yet. This cannot be
	// replaced by a len(buf) == 0 check: an absent optional writes only a
	// delimiter (possibly zero bytes of it), so buffer emptiness says
	// nothing about whether the next append is the first.
	isStart bool

	open     int
	finished bool
}

// New creates a Serializer. The delimiter separates every two segments of the
// output; mapLike selects whether record fields are prefixed with their name.
// New panics if the delimiter is not valid UTF-8.
func New(delimiter string, mapLike bool) *Serializer {
	return NewWithCapacity(delimiter, mapLike, 0)
}

// NewWithCapacity is New with a pre-reserved output buffer. The capacity is a
// pure performance hint and has no semantic effect.
func NewWithCapacity(delimiter string, mapLike bool, capacity int) *Serializer {
	if !utf8.ValidString(delimiter) {
		panic(errors.New(errors.PhaseConfig, errors.KindInvalidUTF8).
			Detail("delimiter is not valid UTF-8: %x", delimiter).
			Build().Error())
	}
	return &Serializer{
		delim:   []byte(delimiter),
		buf:     make([]byte, 0, capacity),
		mapLike: mapLike,
		isStart: true,
	}
}

// sep writes the delimiter before the upcoming segment, except when that
// segment is the first thing appended.
func (s *Serializer) sep() {
	if s.isStart {
		s.isStart = false
	} else {
		s.buf = append(s.buf, s.delim...)
	}
}

// Bool appends "1" or "0".
func (s *Serializer) Bool(v bool) error {
	if v {
		return s.Str("1")
	}
	return s.Str("0")
}

// Int appends the decimal form of a signed integer of any width.
func (s *Serializer) Int(v int64) error {
	s.sep()
	s.buf = strconv.AppendInt(s.buf, v, 10)
	return nil
}

// Uint appends the decimal form of an unsigned integer of any width.
func (s *Serializer) Uint(v uint64) error {
	s.sep()
	s.buf = strconv.AppendUint(s.buf, v, 10)
	return nil
}

// Float32 appends the shortest decimal form that round-trips at 32-bit
// precision.
func (s *Serializer) Float32(v float32) error {
	s.sep()
	s.buf = strconv.AppendFloat(s.buf, float64(v), 'g', -1, 32)
	return nil
}

// Float64 appends the shortest decimal form that round-trips at 64-bit
// precision.
func (s *Serializer) Float64(v float64) error {
	s.sep()
	s.buf = strconv.AppendFloat(s.buf, v, 'g', -1, 64)
	return nil
}

// Rune appends a single character. The rune must be a Unicode scalar value;
// surrogate halves and out-of-range values are rejected. Encoding goes
// through a 4-byte stack buffer, never the heap.
func (s *Serializer) Rune(r rune) error {
	if !utf8.ValidRune(r) {
		return errors.InvalidChar(errors.PhaseEncode, r)
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	s.sep()
	s.buf = append(s.buf, tmp[:n]...)
	return nil
}

// Str appends text verbatim. The text is validated rather than trusted: the
// buffer invariant is that it only ever holds well-formed UTF-8.
func (s *Serializer) Str(v string) error {
	if !utf8.ValidString(v) {
		return errors.InvalidUTF8(errors.PhaseEncode, []byte(v))
	}
	s.sep()
	s.buf = append(s.buf, v...)
	return nil
}

// Bytes appends data as unpadded URL-safe base64 (- and _ instead of + and
// /), ceil(4n/3) characters for n input bytes. The output region is grown
// once and encoded into in place; there is no per-byte allocation pass.
func (s *Serializer) Bytes(data []byte) error {
	s.sep()
	n := base64.RawURLEncoding.EncodedLen(len(data))
	idx := len(s.buf)
	s.buf = slices.Grow(s.buf, n)[:idx+n]
	base64.RawURLEncoding.Encode(s.buf[idx:], data)
	return nil
}

// None appends an absent optional. Unlike every other append, it writes the
// delimiter unconditionally and leaves the start flag alone: a leading
// absent field produces a leading delimiter, and the append after it still
// counts as the first. This keeps fields positionally distinguishable even
// when the first one is absent.
func (s *Serializer) None() error {
	s.buf = append(s.buf, s.delim...)
	return nil
}

// Begin opens a record. Encode calls it automatically when it meets a struct
// or a Marshaler; callers driving the traversal by hand pair it with End.
func (s *Serializer) Begin() {
	s.open++
}

// End closes the innermost open record. It writes nothing.
func (s *Serializer) End() error {
	if s.open == 0 {
		return errors.Protocol(errors.PhaseEncode, "End called with no open record")
	}
	s.open--
	return nil
}

// Finish consumes the Serializer and returns the accumulated text. Calling
// it while a record is still open, or calling it twice, is a programming
// error and panics.
func (s *Serializer) Finish() string {
	if s.finished {
		panic("indexed: Finish called twice")
	}
	if s.open != 0 {
		panic(errors.Protocol(errors.PhaseFinish, "record still open (%d deep)", s.open).Error())
	}
	s.finished = true
	return string(s.buf)
}

// Len returns the number of bytes accumulated so far.
func (s *Serializer) Len() int {
	return len(s.buf)
}
