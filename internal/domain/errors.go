package domain

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures so the HTTP boundary can choose a status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

// String returns the kind name used in logs and metrics.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// HTTPStatus maps the kind to its response status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure with a client-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidation returns a validation error with optional per-field reasons.
func NewValidation(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

// NewAuth returns an authentication error.
func NewAuth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// NewForbidden returns a permission error.
func NewForbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NewNotFound returns a not-found error.
func NewNotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// NewConflict returns a conflict error.
func NewConflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// KindOf classifies err. Errors that carry no *Error are internal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return err != nil && KindOf(err) == KindNotFound }

// IsForbidden reports whether err is a permission error.
func IsForbidden(err error) bool { return err != nil && KindOf(err) == KindForbidden }

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool { return err != nil && KindOf(err) == KindConflict }
