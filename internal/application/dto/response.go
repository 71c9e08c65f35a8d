package dto

import (
	"time"

	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/errors"
)

// ErrorDTO is the wire form of a structured application error.
type ErrorDTO struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorEnvelope is the uniform error response of every endpoint.
type ErrorEnvelope struct {
	Success   bool      `json:"success"`
	Error     *ErrorDTO `json:"error"`
	TraceID   string    `json:"trace_id,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// NewErrorEnvelope translates any error into the uniform error envelope.
// Non-AppError values are masked as internal_error so internals never leak to
// callers.
func NewErrorEnvelope(err error, traceID string) *ErrorEnvelope {
	var errorDTO *ErrorDTO
	if appErr, ok := errors.AsAppError(err); ok {
		errorDTO = &ErrorDTO{
			Code:    string(appErr.Code()),
			Message: appErr.Message(),
			Details: appErr.Metadata(),
		}
	} else {
		errorDTO = &ErrorDTO{
			Code:    string(constants.ErrCodeInternal),
			Message: "internal server error",
		}
	}

	return &ErrorEnvelope{
		Success:   false,
		Error:     errorDTO,
		TraceID:   traceID,
		Timestamp: time.Now().Unix(),
	}
}
