package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindArgument   ErrorKind = "argument"
	KindStorage    ErrorKind = "storage"
)

// OpError wraps an underlying error with operation context and a kind.
// Msg is the user-facing message; the command layer renders it as "Error: {Msg}".
type OpError struct {
	Op   string
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Msg != "" {
		base += fmt.Sprintf(": %s", e.Msg)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UserMessage returns the message intended for display, falling back to the
// wrapped error when the OpError carries no message of its own.
func (e *OpError) UserMessage() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func validationError(op, format string, args ...any) *OpError {
	return &OpError{Op: op, Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func notFoundError(op, format string, args ...any) *OpError {
	return &OpError{Op: op, Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}
