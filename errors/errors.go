package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseOpen     Phase = "open"     // container opening and unwrapping
	PhaseIndex    Phase = "index"    // resource map parsing
	PhaseDecode   Phase = "decode"   // binary layout decoding
	PhaseEncoding Phase = "encoding" // text encoding conversion
	PhaseManager  Phase = "manager"  // source chain and cache operations
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound               Kind = "not_found"
	KindSizeMismatch           Kind = "size_mismatch"
	KindMalformedDiscriminant  Kind = "malformed_discriminant"
	KindEncodingError          Kind = "encoding_error"
	KindSourceIO               Kind = "source_io"
	KindUnsupportedCompression Kind = "unsupported_compression"
	KindBadDataType            Kind = "bad_data_type"
	KindBadContainer           Kind = "bad_container"
	KindOutOfBounds            Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the engine
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Resource  string
	Container string
	Detail    string
	Path      []string
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

	if e.Resource != "" || e.Container != "" {
		b.WriteString(": ")
		if e.Resource != "" && e.Container != "" {
			b.WriteString("resource ")
			b.WriteString(e.Resource)
			b.WriteString(" in ")
			b.WriteString(e.Container)
		} else if e.Resource != "" {
			b.WriteString("resource ")
			b.WriteString(e.Resource)
		} else {
			b.WriteString("container ")
			b.WriteString(e.Container)
		}
	}

	if e.Detail != "" {
		if e.Resource != "" || e.Container != "" {
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

// IsNotFound reports whether err is a not-found error of any phase.
// The manager uses this to convert source-level absence into chain fallback.
func IsNotFound(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == KindNotFound
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Resource sets the resource identity, typically a formatted ResourceId
func (b *Builder) Resource(id fmt.Stringer) *Builder {
	b.err.Resource = id.String()
	return b
}

// Container sets the identity of the source the error is attributed to
func (b *Builder) Container(name string) *Builder {
	b.err.Container = name
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

// NotFound creates a not-found error for a resource identity
func NotFound(phase Phase, resource fmt.Stringer) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindNotFound,
		Resource: resource.String(),
	}
}

// NotFoundPath creates a not-found error for a path-based lookup
func NotFoundPath(phase Phase, path string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%q not found", path),
	}
}

// SizeMismatch creates a declared-size precondition failure
func SizeMismatch(path []string, got uint32, want string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindSizeMismatch,
		Path:   path,
		Detail: fmt.Sprintf("declared size %d, layout expects %s", got, want),
		Value:  got,
	}
}

// MalformedDiscriminant creates an unexpected enumerated tag error
func MalformedDiscriminant(path []string, disc uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedDiscriminant,
		Path:   path,
		Detail: fmt.Sprintf("unexpected discriminant %d", disc),
		Value:  disc,
	}
}

// EncodingError creates a text encoding conversion failure
func EncodingError(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseEncoding,
		Kind:   KindEncodingError,
		Detail: detail,
		Cause:  cause,
	}
}

// SourceIO creates a hard I/O failure attributed to a container
func SourceIO(phase Phase, container string, cause error) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindSourceIO,
		Container: container,
		Cause:     cause,
	}
}

// BadContainer creates a structural corruption error for a container
func BadContainer(container, detail string, args ...any) *Error {
	return &Error{
		Phase:     PhaseIndex,
		Kind:      KindBadContainer,
		Container: container,
		Detail:    fmt.Sprintf(detail, args...),
	}
}
