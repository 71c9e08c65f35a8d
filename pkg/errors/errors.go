// Package errors defines structured error types for the Praxis GRC analytics service.
// Errors carry a stable code, an HTTP status and optional metadata so the request
// boundary can translate any failure into the uniform error envelope.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/praxisgrc/praxis/pkg/constants"
)

// ================================================================================
// AppError
// ================================================================================

// AppError is the structured application error used across all layers.
type AppError struct {
	code       constants.ErrorCode
	httpStatus int
	message    string
	cause      error
	metadata   map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Code returns the stable error code.
func (e *AppError) Code() constants.ErrorCode {
	return e.code
}

// HTTPStatus returns the HTTP status the boundary should respond with.
func (e *AppError) HTTPStatus() int {
	return e.httpStatus
}

// Message returns the human-readable message without the cause chain.
func (e *AppError) Message() string {
	return e.message
}

// Unwrap returns the underlying cause for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error to the chain.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// WithMetadata attaches additional context metadata.
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.metadata == nil {
		e.metadata = make(map[string]interface{})
	}
	e.metadata[key] = value
	return e
}

// Metadata returns all attached metadata.
func (e *AppError) Metadata() map[string]interface{} {
	return e.metadata
}

// New creates a new AppError.
func New(code constants.ErrorCode, httpStatus int, message string) *AppError {
	return &AppError{
		code:       code,
		httpStatus: httpStatus,
		message:    message,
	}
}

// ================================================================================
// Predefined Constructors
// ================================================================================

// ErrInvalidRequest creates an invalid_request error.
func ErrInvalidRequest(message string) *AppError {
	return New(constants.ErrCodeInvalidRequest, http.StatusBadRequest, message)
}

// ErrUnknownAnalysisType reports an unrecognized analysis selector. This is an
// integration error on the caller's side, not an insufficient-data condition.
func ErrUnknownAnalysisType(analysisType string) *AppError {
	return New(
		constants.ErrCodeUnknownAnalysisType,
		http.StatusBadRequest,
		fmt.Sprintf("unknown analysis type: %s", analysisType),
	).WithMetadata("analysis_type", analysisType)
}

// ErrUnauthorized creates an unauthorized error.
func ErrUnauthorized(message string) *AppError {
	return New(constants.ErrCodeUnauthorized, http.StatusUnauthorized, message)
}

// ErrTenantForbidden reports a caller reaching outside its tenant scope.
func ErrTenantForbidden(tenantID string) *AppError {
	return New(
		constants.ErrCodeForbidden,
		http.StatusForbidden,
		fmt.Sprintf("caller is not authorized for tenant %s", tenantID),
	).WithMetadata("tenant_id", tenantID)
}

// ErrRateLimited reports a caller that exhausted its request budget.
func ErrRateLimited() *AppError {
	return New(constants.ErrCodeRateLimited, http.StatusTooManyRequests, "request budget exhausted, slow down")
}

// ErrNotFound creates a not_found error for the named resource.
func ErrNotFound(resource string) *AppError {
	return New(
		constants.ErrCodeNotFound,
		http.StatusNotFound,
		fmt.Sprintf("%s not found", resource),
	)
}

// ErrUpstreamData wraps a data-store fetch failure. The core performs no
// retries itself; retry policy belongs to the data-access layer.
func ErrUpstreamData(operation string, cause error) *AppError {
	return New(
		constants.ErrCodeUpstreamData,
		http.StatusInternalServerError,
		fmt.Sprintf("upstream data fault during %s", operation),
	).WithCause(cause).WithMetadata("operation", operation)
}

// ErrInternal creates an internal_error.
func ErrInternal(message string) *AppError {
	return New(constants.ErrCodeInternal, http.StatusInternalServerError, message)
}

// ErrServiceUnavailable creates a service_unavailable error.
func ErrServiceUnavailable(message string) *AppError {
	return New(constants.ErrCodeServiceUnavailable, http.StatusServiceUnavailable, message)
}

// ================================================================================
// Inspection Utilities
// ================================================================================

// AsAppError attempts to cast an error to *AppError anywhere in its chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code constants.ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code() == code
	}
	return false
}

// HTTPStatusOf resolves the HTTP status for any error, defaulting to 500.
func HTTPStatusOf(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// ShouldLog reports whether the error is worth logging at the boundary.
// Client errors (4xx) are noise; server faults are not.
func ShouldLog(err error) bool {
	return HTTPStatusOf(err) >= http.StatusInternalServerError
}
