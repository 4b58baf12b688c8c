package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the write pipeline the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // stream handle resolution
	PhaseEncode  Phase = "encode"  // text normalization for the target
	PhaseWrite   Phase = "write"   // the OS write call itself
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidHandle Kind = "invalid_handle" // handle lookup returned the invalid sentinel
	KindWriteFailed   Kind = "write_failed"   // OS call returned its failure signal
	KindShortWrite    Kind = "short_write"    // fewer units written than requested
	KindInvalidUTF8   Kind = "invalid_utf8"
	KindInvalidStream Kind = "invalid_stream"
)

// Error is the structured error type used throughout the module.
// Code carries a raw OS error number where one was reported; OSMessage
// carries the OS-rendered description where the failing tier has access
// to one. The raw syscall tier reports Code only.
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Stream    string
	Detail    string
	OSMessage string
	Code      int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Stream != "" {
		b.WriteString(" on ")
		b.WriteString(e.Stream)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Code != 0 {
		b.WriteString(fmt.Sprintf(" (os error %d", e.Code))
		if e.OSMessage != "" {
			b.WriteString(": ")
			b.WriteString(e.OSMessage)
		}
		b.WriteByte(')')
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

// Stream sets the stream name
func (b *Builder) Stream(name string) *Builder {
	b.err.Stream = name
	return b
}

// Code sets the raw OS error number
func (b *Builder) Code(code int) *Builder {
	b.err.Code = code
	return b
}

// OSMessage sets the OS-rendered error description
func (b *Builder) OSMessage(msg string) *Builder {
	b.err.OSMessage = msg
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

// Convenience constructors for the error taxonomy

// InvalidHandle creates an invalid-handle error for a stream whose
// handle lookup returned the invalid sentinel. The console write is
// never attempted after this error.
func InvalidHandle(stream string, code int) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidHandle,
		Stream: stream,
		Code:   code,
		Detail: "handle resolution returned the invalid handle sentinel",
	}
}

// WriteFailed creates a write-failure error carrying the OS error number
// and, where available, the OS-rendered description.
func WriteFailed(stream string, code int, osMessage string, cause error) *Error {
	return &Error{
		Phase:     PhaseWrite,
		Kind:      KindWriteFailed,
		Stream:    stream,
		Code:      code,
		OSMessage: osMessage,
		Cause:     cause,
	}
}

// ShortWrite creates an error for an OS call that reported success but
// wrote fewer units than requested.
func ShortWrite(stream string, requested, written int) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindShortWrite,
		Stream: stream,
		Detail: fmt.Sprintf("wrote %d of %d units", written, requested),
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// InvalidStream creates an error for a stream value outside the
// stdin/stdout/stderr set.
func InvalidStream(value int) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidStream,
		Detail: fmt.Sprintf("unknown standard stream %d", value),
	}
}
