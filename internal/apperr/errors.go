// Package apperr provides the typed domain errors returned by the review API services.
//
// Services return *Error values; the HTTP layer turns them into a status code and a
// {"msg": ...} body:
//
//	var appErr *apperr.Error
//	if errors.As(err, &appErr) {
//	    c.JSON(appErr.HTTPStatus(), gin.H{"msg": appErr.Message})
//	}
//
// errors.Is matches on Kind, so callers can compare against the sentinels below.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure.
type Kind string

const (
	KindInvalidID         Kind = "INVALID_ID"
	KindInvalidCategory   Kind = "INVALID_CATEGORY"
	KindInvalidSortColumn Kind = "INVALID_SORT_COLUMN"
	KindInvalidSortOrder  Kind = "INVALID_SORT_ORDER"
	KindBadRequest        Kind = "BAD_REQUEST"
	KindInvalidInput      Kind = "INVALID_INPUT"
	KindUnexpected        Kind = "UNEXPECTED"
)

// HTTPStatus returns the status code the routing layer uses for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidID, KindInvalidCategory, KindInvalidSortColumn, KindInvalidSortOrder,
		KindBadRequest, KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a kind and a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

// WithCause returns a copy of e wrapping err.
func (e *Error) WithCause(err error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, cause: err}
}

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidID         = &Error{Kind: KindInvalidID, Message: "Invalid id"}
	ErrInvalidCategory   = &Error{Kind: KindInvalidCategory, Message: "Invalid category"}
	ErrInvalidSortColumn = &Error{Kind: KindInvalidSortColumn, Message: "Invalid sort query"}
	ErrInvalidSortOrder  = &Error{Kind: KindInvalidSortOrder, Message: "Invalid order query"}
	ErrBadRequest        = &Error{Kind: KindBadRequest, Message: "Bad request"}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput, Message: "Invalid input"}
	ErrUnexpected        = &Error{Kind: KindUnexpected, Message: "Internal server error"}
)

// InvalidID creates an invalid id error, e.g. InvalidID("Invalid review id").
func InvalidID(msg string) *Error {
	return &Error{Kind: KindInvalidID, Message: msg}
}

// BadRequest creates a bad request error.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// Unexpected wraps an unclassified failure.
func Unexpected(err error) *Error {
	return ErrUnexpected.WithCause(err)
}

// KindOf returns the kind of err, or KindUnexpected if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
