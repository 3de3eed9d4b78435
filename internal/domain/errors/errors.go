// Package errors holds the failure taxonomy shared by every layer. Usecases
// return these values; the delivery layer turns them into responses.
package errors

import (
	"fmt"
	"net/http"

	"market/internal/errors"
)

// Kind is the closed set of failure classes an operation can report.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindUnauthorized    Kind = "unauthorized"
	KindServerError     Kind = "server_error"
)

// HTTPStatus is the default response status of the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// KindOf classifies err. Anything outside the taxonomy is a server error.
func KindOf(err error) Kind {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindServerError
}

// AppError is an error the API can render: a stable code, a message safe to
// show and optional details.
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is an immutable catalog entry. WithDetails derives a copy that
// still matches the entry under errors.Is.
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

func define(kind Kind, code, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  kind.HTTPStatus(),
		errorCode: code,
		message:   message,
	}
}

// forbidden is an unauthorized entry answered with 403: the caller is known
// but may not act.
func forbidden(code, message string) *BaseError {
	e := define(KindUnauthorized, code, message)
	e.httpCode = http.StatusForbidden

	return e
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is compares business codes only.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

func (e *BaseError) Kind() Kind        { return e.kind }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details, typically the entity and its identifier.
func (e *BaseError) WithDetails(details string) *BaseError {
	derived := *e
	derived.details = details

	return &derived
}

func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// DatabaseExecuteError is a server error wrapping a driver failure. Only the
// details reach the client; the cause stays in the logs.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) Kind() Kind        { return KindServerError }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
