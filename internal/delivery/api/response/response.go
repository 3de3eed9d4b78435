// Package response renders the JSON envelope every API endpoint answers with.
package response

import (
	"net/http"

	deliverycontext "market/internal/delivery/context"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	codeInternalError    = "INTERNAL_ERROR"
	messageInternalError = "Internal server error, please try again later"
)

// SuccessResponse wraps the payload of a successful call
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failed call
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "ADVERTISEMENT_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Entity kind and identifier, client errors only
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func metaOf(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: metaOf(c)})
}

// Created answers 201 and points the Location header at the new resource.
func Created(c echo.Context, location string, data any) error {
	c.Response().Header().Set(echo.HeaderLocation, location)

	return Success(c, http.StatusCreated, data)
}

// Error returns an error response. Details never leave the process for server
// errors or for authentication and authorization failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: metaOf(c),
	})
}

// AppError renders a domain error with its own status and code.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// InternalServerError returns the generic 500 body
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, codeInternalError, messageInternalError, nil)
}

// HandleAppError renders client errors directly. Server errors are passed on to
// the central error handler so they get logged.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.Kind() != domainerrors.KindServerError {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
