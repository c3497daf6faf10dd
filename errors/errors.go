package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in an encoding session the error occurred
type Phase string

const (
	PhaseConfig Phase = "config" // serializer construction
	PhaseEncode Phase = "encode" // value dispatch and appends
	PhaseFinish Phase = "finish" // finalization
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupported  Kind = "unsupported"   // shape has no indexed representation
	KindInvalidUTF8  Kind = "invalid_utf8"  // text segment is not valid UTF-8
	KindInvalidChar  Kind = "invalid_char"  // rune is not a Unicode scalar value
	KindInvalidData  Kind = "invalid_data"  // malformed payload (bad base64, bad gzip)
	KindProtocol     Kind = "protocol"      // record traversal misuse (unbalanced End, etc.)
	KindOverflow     Kind = "overflow"      // payload exceeds a hard size limit
	KindWriteFailure Kind = "write_failure" // underlying buffer or stream write failed
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Shape  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Shape != "" {
		b.WriteString(": shape ")
		b.WriteString(e.Shape)
	}

	if e.Detail != "" {
		if e.Shape != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Prefix prepends a path element and returns the error. Record traversal
// uses it to accumulate the field path outside-in as errors bubble up.
func (e *Error) Prefix(name string) *Error {
	e.Path = append([]string{name}, e.Path...)
	return e
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Shape sets the name of the offending value shape
func (b *Builder) Shape(s string) *Builder {
	b.err.Shape = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Unsupported creates an unsupported-shape error
func Unsupported(phase Phase, shape string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindUnsupported,
		Shape: shape,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// InvalidChar creates an invalid Unicode scalar value error
func InvalidChar(phase Phase, r rune) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidChar,
		Detail: fmt.Sprintf("invalid Unicode scalar value: 0x%X", r),
		Value:  r,
	}
}

// Protocol creates a traversal protocol violation error
func Protocol(phase Phase, msg string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindProtocol,
		Detail: fmt.Sprintf(msg, args...),
	}
}

// Overflow creates a size limit error
func Overflow(phase Phase, size, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("payload size %d exceeds maximum %d", size, limit),
		Value:  size,
	}
}
