package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseOracle    Phase = "oracle"    // shape arithmetic checks
	PhasePartition Phase = "partition" // split, chunk, chain
	PhaseMove      Phase = "move"      // spread, rotate, shift, transpose
	PhaseResize    Phase = "resize"    // fill, truncate, resize, extend
	PhaseReduce    Phase = "reduce"    // reductions and traversal
	PhaseIndex     Phase = "index"     // element and view access
	PhaseMemory    Phase = "memory"    // linear memory lift/lower
	PhaseParse     Phase = "parse"     // command line input
)

// Kind categorizes the error
type Kind string

const (
	KindShapeMismatch   Kind = "shape_mismatch"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindGeneratorFailed Kind = "generator_failed"
	KindConsumed        Kind = "consumed"
	KindOverflow        Kind = "overflow"
	KindInvalidInput    Kind = "invalid_input"
	KindInvalidData     Kind = "invalid_data"
	KindNilPointer      Kind = "nil_pointer"
	KindLayoutMismatch  Kind = "layout_mismatch"
	KindUnsupported     Kind = "unsupported"
	KindInstantiation   Kind = "instantiation"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Op       string
	Equation string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Equation != "" {
		b.WriteString(": requires ")
		b.WriteString(e.Equation)
	}

	if e.Detail != "" {
		if e.Equation != "" {
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

// Path sets the index path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Op sets the operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Equation sets the shape equation that was violated
func (b *Builder) Equation(eq string) *Builder {
	b.err.Equation = eq
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

// ShapeMismatch creates an oracle failure for op
func ShapeMismatch(op, equation, detail string) *Error {
	return &Error{
		Phase:    PhaseOracle,
		Kind:     KindShapeMismatch,
		Op:       op,
		Equation: equation,
		Detail:   detail,
	}
}

// Consumed reports use of a sequence whose elements were moved away
func Consumed(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindConsumed,
		Op:     op,
		Detail: "sequence already consumed",
	}
}

// GeneratorFailed wraps an error returned by an element generator
func GeneratorFailed(phase Phase, op string, index int, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindGeneratorFailed,
		Op:     op,
		Detail: fmt.Sprintf("generator failed at index %d", index),
		Value:  index,
		Cause:  cause,
	}
}

// LayoutMismatch creates an error for two layouts that cannot alias
func LayoutMismatch(op string, want, got string) *Error {
	return &Error{
		Phase:  PhaseMemory,
		Kind:   KindLayoutMismatch,
		Op:     op,
		Detail: fmt.Sprintf("layout %s does not match %s", got, want),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Op:     op,
		Detail: "nil sequence",
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, op string, value any, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Op:     op,
		Detail: fmt.Sprintf("value %v overflows %s", value, what),
		Value:  value,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Instantiation creates an error for a failed linear memory setup
func Instantiation(cause error) *Error {
	return &Error{
		Phase:  PhaseMemory,
		Kind:   KindInstantiation,
		Detail: "instantiate memory module",
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
