// Package status defines the runtime status taxonomy shared by the broker,
// the client proxy, and the activation engine.
//
// Statuses cross the process boundary as numeric codes inside RPC replies,
// never as transport-level errors. AbortedByUser is special: it marks a
// deliberate cancellation and must stay distinguishable from a fault at
// every layer.
package status

import (
	"errors"
	"fmt"
)

// Code identifies one runtime status.
type Code uint32

const (
	Success Code = iota
	Uninitialized
	InvalidArgument
	OutOfHostMemory
	NotFound
	InvalidOperation
	NotAvailable
	NotImplemented
	InternalFailure
	AbortedByUser
	Timeout
)

// String returns the canonical name of the code.
func (c Code) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case Uninitialized:
		return "UNINITIALIZED"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case OutOfHostMemory:
		return "OUT_OF_HOST_MEMORY"
	case NotFound:
		return "NOT_FOUND"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case NotAvailable:
		return "NOT_AVAILABLE"
	case NotImplemented:
		return "NOT_IMPLEMENTED"
	case InternalFailure:
		return "INTERNAL_FAILURE"
	case AbortedByUser:
		return "ABORTED_BY_USER"
	case Timeout:
		return "TIMEOUT"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint32(c))
	}
}

// Error is a status code with context. It is the only error type that
// crosses component boundaries inside the runtime.
type Error struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a status error with a plain message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf creates a status error with a formatted message.
func Errorf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Err converts a bare code into an error. Success maps to nil.
func Err(code Code) error {
	if code == Success {
		return nil
	}
	return &Error{Code: code}
}

// CodeOf extracts the status code carried by err. A nil error is Success;
// an error without a status code is InternalFailure.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return InternalFailure
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
