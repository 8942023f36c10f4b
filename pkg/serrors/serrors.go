// Package serrors tags errors with a semantic kind so transports can pick a
// status code without knowing which layer failed.
package serrors

import (
	"errors"
	"fmt"
)

// Kind names a category of failure. Kinds are plain comparable values and
// satisfy error so they work as errors.Is targets.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	ErrNotFound     Kind = "NOT_FOUND"
	ErrUnauthorized Kind = "UNAUTHORIZED"
	ErrForbidden    Kind = "FORBIDDEN"
	ErrBadRequest   Kind = "BAD_REQUEST"
	ErrConflict     Kind = "CONFLICT"
	ErrInternal     Kind = "INTERNAL"
)

// Error pairs a Kind with a client facing message and an optional cause.
// errors.Is and errors.As look at both the kind and the cause.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// With returns an error of kind k without a cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k caused by err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...), cause: err}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg == "" && e.cause == nil:
		if e.kind == "" {
			return "unknown error"
		}

		return e.kind.Error()
	case e.cause == nil:
		return e.msg
	case e.msg == "":
		return e.cause.Error()
	}

	return e.msg + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if k, ok := target.(Kind); ok && k == e.kind {
		return true
	}

	return e.cause != nil && errors.Is(e.cause, target)
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if kp, ok := target.(*Kind); ok && e.kind != "" {
		*kp = e.kind

		return true
	}

	return e.cause != nil && errors.As(e.cause, target)
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }

// KindOf reports the kind of the outermost semantic error in err's chain.
// Untagged errors are ErrInternal.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) && k != "" {
		return k
	}

	return ErrInternal
}

// MessageOf returns the message of the outermost *Error in err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message()
	}

	return ""
}
