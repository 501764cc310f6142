package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error is the one error shape the API exposes. StatusCode places it in the
// client-fault (4xx) or server-fault (5xx) family; Code optionally carries a
// machine-readable reason on top of the human-readable Message. The struct
// doubles as the JSON error response body.
type Error struct {
	Message    string    `json:"message"`
	Code       string    `json:"errorCode,omitempty"`
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
}

func New(status int, message string) *Error {
	return &Error{
		Message:    message,
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WithCode attaches a machine-readable error code and returns the error.
func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

func (e *Error) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

func (e *Error) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// Client-fault constructors.
func BadRequest(message string) *Error   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(http.StatusForbidden, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(http.StatusConflict, message) }

// Server-fault constructors.
func Internal(message string) *Error           { return New(http.StatusInternalServerError, message) }
func NotImplemented(message string) *Error     { return New(http.StatusNotImplemented, message) }
func ServiceUnavailable(message string) *Error { return New(http.StatusServiceUnavailable, message) }
func GatewayTimeout(message string) *Error     { return New(http.StatusGatewayTimeout, message) }

// FromError returns err as an *Error when it is one, and otherwise wraps it
// into a generic internal error so collaborator details never reach a client.
func FromError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("internal server error")
}
