package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig    Phase = "config"    // configuration validation
	PhaseElaborate Phase = "elaborate" // wiring components into domains
	PhaseSimulate  Phase = "simulate"  // simulation setup and control
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidWidth   Kind = "invalid_width"
	KindNotPowerOfTwo  Kind = "not_power_of_two"
	KindDomainMismatch Kind = "domain_mismatch"
	KindOutOfRange     Kind = "out_of_range"
	KindNilSignal      Kind = "nil_signal"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Component string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Component != "" {
		b.WriteString(" in ")
		b.WriteString(e.Component)
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

// Component names the component being constructed
func (b *Builder) Component(name string) *Builder {
	b.err.Component = name
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

// InvalidWidth creates an invalid bit-width error
func InvalidWidth(phase Phase, component string, width, min, max int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindInvalidWidth,
		Component: component,
		Detail:    fmt.Sprintf("width %d outside valid range [%d, %d]", width, min, max),
		Value:     width,
	}
}

// NotPowerOfTwo creates a depth validation error
func NotPowerOfTwo(phase Phase, component string, depth int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindNotPowerOfTwo,
		Component: component,
		Detail:    fmt.Sprintf("depth %d is not a power of two", depth),
		Value:     depth,
	}
}

// DomainMismatch creates an error for a signal wired into the wrong domain
func DomainMismatch(phase Phase, component, signal, want, got string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindDomainMismatch,
		Component: component,
		Detail:    fmt.Sprintf("signal %s belongs to domain %q, want %q", signal, got, want),
	}
}

// NilSignal creates an error for a missing required input signal
func NilSignal(phase Phase, component, signal string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindNilSignal,
		Component: component,
		Detail:    fmt.Sprintf("required input %s is not connected", signal),
	}
}
