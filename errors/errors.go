package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which stage of the transcoding pipeline the error occurred in
type Phase string

const (
	PhaseDecompose Phase = "decompose" // UTF-8 bytes to codepoints
	PhaseEncode    Phase = "encode"    // codepoints to Punycode
	PhaseDecode    Phase = "decode"    // Punycode to codepoints
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"     // malformed digit or truncated digit chain
	KindNotBasic         Kind = "not_basic"         // byte >= 0x80 in the basic region
	KindOverflow         Kind = "overflow"          // arithmetic would exceed the 32-bit bound
	KindOutputSize       Kind = "output_size"       // caller-supplied output cap exceeded
	KindInvalidCodepoint Kind = "invalid_codepoint" // codepoint outside the Unicode scalar range
)

// Sentinel errors for errors.Is checks. Each matches any *Error of the
// same Kind regardless of Phase.
var (
	ErrInvalidInput       = &Error{Kind: KindInvalidInput, Offset: NoOffset}
	ErrNotBasic           = &Error{Kind: KindNotBasic, Offset: NoOffset}
	ErrOverflow           = &Error{Kind: KindOverflow, Offset: NoOffset}
	ErrOutputSizeExceeded = &Error{Kind: KindOutputSize, Offset: NoOffset}
)

// NoOffset marks an error not tied to a specific input position.
const NoOffset = -1

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Offset > NoOffset {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// Is reports whether target matches this error. A target with an empty
// Phase matches on Kind alone, which is how the package sentinels work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Offset sets the input position the error refers to
func (b *Builder) Offset(i int) *Builder {
	b.err.Offset = i
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

// InvalidDigit creates an error for a byte that is not an extended digit
func InvalidDigit(phase Phase, offset int, b byte) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: offset,
		Detail: fmt.Sprintf("byte %#02x is not a base-36 digit", b),
		Value:  b,
	}
}

// Truncated creates an error for input that ends mid digit chain
func Truncated(phase Phase, offset int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: offset,
		Detail: "input truncated inside a variable-length integer",
	}
}

// NotBasic creates an error for a non-ASCII byte in the basic region
func NotBasic(phase Phase, offset int, b byte) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotBasic,
		Offset: offset,
		Detail: fmt.Sprintf("byte %#02x is not a basic code point", b),
		Value:  b,
	}
}

// Overflow creates an error for arithmetic exceeding the 32-bit bound
func Overflow(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Offset: NoOffset,
		Detail: fmt.Sprintf("%s exceeds the 32-bit bound", what),
	}
}

// OutputSize creates an error for output exceeding the caller's cap
func OutputSize(phase Phase, n, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutputSize,
		Offset: NoOffset,
		Detail: fmt.Sprintf("output length %d exceeds cap %d", n, max),
		Value:  n,
	}
}

// InvalidCodepoint creates an error for a value outside the scalar range
func InvalidCodepoint(phase Phase, cp int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidCodepoint,
		Offset: NoOffset,
		Detail: fmt.Sprintf("value %#x is not a Unicode scalar value", cp),
		Value:  cp,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}
