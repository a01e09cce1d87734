// Package errz defines the error kinds and the structured error type shared
// by the engine, the distribution library and the call-expression language.
//
// Every error produced by this module is an *Error carrying an ErrorKind.
// ErrorKind itself implements error, so callers match on the kind:
//
//	if errors.Is(err, errz.ErrDomain) { ... }
package errz

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrDomain indicates a parameter outside a distribution's valid domain.
	ErrDomain ErrorKind = iota
	// ErrPrecision indicates an internal caller broke a width contract,
	// such as asking for more than 64 random bits.
	ErrPrecision
	// ErrSyntax indicates a lexing or parsing error in a call expression.
	ErrSyntax
	// ErrArgs indicates a call with the wrong number or type of arguments.
	ErrArgs
	// ErrName indicates an unknown stream or function name.
	ErrName
	// ErrHalted indicates an observer stopped a rejection loop.
	ErrHalted
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrDomain:
		return "domain error"
	case ErrPrecision:
		return "precision error"
	case ErrSyntax:
		return "syntax error"
	case ErrArgs:
		return "argument error"
	case ErrName:
		return "name error"
	case ErrHalted:
		return "halted"
	default:
		return "error"
	}
}

// Error implements the error interface so a kind can be used as an
// errors.Is target.
func (k ErrorKind) Error() string {
	return k.String()
}

// SourceLocation represents a position in call-expression source.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// Error is the structured error type used throughout the module.
type Error struct {
	Kind     ErrorKind
	Op       string // operation that failed, e.g. "gammavariate"
	Message  string
	Location SourceLocation
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if !e.Location.IsZero() {
		fmt.Fprintf(&b, " (%s)", e.Location)
	}
	return b.String()
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	var kind ErrorKind
	if errors.As(target, &kind) {
		return e.Kind == kind
	}
	return false
}

// FriendlyErrorMessage returns a human-friendly error message including a
// source snippet with a caret when the error has a location.
func (e *Error) FriendlyErrorMessage() string {
	var msg bytes.Buffer
	msg.WriteString(e.Error())
	msg.WriteString("\n")
	if e.Location.Source != "" {
		msg.WriteString(" | ")
		msg.WriteString(e.Location.Source)
		msg.WriteString("\n")
		if e.Location.Column > 0 {
			msg.WriteString(" | ")
			msg.WriteString(strings.Repeat(" ", e.Location.Column-1))
			msg.WriteString("^\n")
		}
	}
	return msg.String()
}

// WithCause wraps the error with a cause.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithLocation attaches a source location to the error.
func (e *Error) WithLocation(loc SourceLocation) *Error {
	e.Location = loc
	return e
}

// New creates an error of the given kind.
func New(kind ErrorKind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Domainf creates an ErrDomain error.
func Domainf(op, format string, args ...any) *Error {
	return Newf(ErrDomain, op, format, args...)
}

// Argsf creates an ErrArgs error.
func Argsf(op, format string, args ...any) *Error {
	return Newf(ErrArgs, op, format, args...)
}

// ArgCount creates an ErrArgs error describing an arity mismatch.
func ArgCount(op string, takes string, given int) *Error {
	return Newf(ErrArgs, op, "takes %s arguments (%d given)", takes, given)
}

// KindOf returns the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
