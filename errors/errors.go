package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCreate Phase = "create" // thread creation
	PhaseJoin   Phase = "join"   // joining a thread handle
	PhaseConfig Phase = "config" // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindExhausted     Kind = "exhausted"      // engine thread ceiling reached
	KindInvalidInput  Kind = "invalid_input"  // bad argument from the caller
	KindNotStarted    Kind = "not_started"    // handle was never populated
	KindAlreadyJoined Kind = "already_joined" // handle joined twice
	KindDetached      Kind = "detached"       // handle is not joinable
	KindNotFound      Kind = "not_found"      // named profile missing
	KindInvalidData   Kind = "invalid_data"   // malformed configuration
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

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

// Convenience constructors for common error patterns

// Exhausted creates a resource exhaustion error
func Exhausted(phase Phase, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindExhausted,
		Detail: fmt.Sprintf(detail, args...),
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

// NotStarted creates an error for a handle that was never populated
func NotStarted() *Error {
	return &Error{
		Phase:  PhaseJoin,
		Kind:   KindNotStarted,
		Detail: "thread was never created",
	}
}

// AlreadyJoined creates an error for a second join on the same handle
func AlreadyJoined() *Error {
	return &Error{
		Phase:  PhaseJoin,
		Kind:   KindAlreadyJoined,
		Detail: "thread already joined",
	}
}

// Detached creates an error for joining a detached handle
func Detached() *Error {
	return &Error{
		Phase:  PhaseJoin,
		Kind:   KindDetached,
		Detail: "thread is detached",
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// ParseFailed creates a configuration parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
