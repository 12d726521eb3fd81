package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every endpoint.
//
// Fields:
//   - Message: human-readable summary of what failed.
//   - ErrorDetails: optional detail from the underlying error.
//   - Timestamp: when the error response was built.
//
// ErrorResponse implements the error interface so middleware can pass it
// through gin's error chain.
type ErrorResponse struct {
	Message      string    `json:"message" example:"no data found"`
	ErrorDetails string    `json:"error,omitempty" example:"sql: connection refused"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-15T10:45:00Z"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error. A nil err leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	e := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		e.ErrorDetails = err.Error()
	}
	return e
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
