// Package errors defines the application error taxonomy shared by the
// lifecycle controller, the connectivity layer and the control API.
package errors

import (
	"net/http"

	"courierd/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches errors by business code, so detail-enriched copies produced by
// WithDetails still compare equal to their sentinel.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrAuthentication indicates a missing or expired credential. The caller
	// layer reacts by starting its re-login flow.
	ErrAuthentication = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"No valid credential is present, sign in again",
		"",
	)

	// ErrConflict indicates the assignment was already claimed or transitioned
	// elsewhere. Triggers a forced refresh, never a blind retry.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"ASSIGNMENT_CONFLICT",
		"This delivery changed on the server, refreshing",
		"",
	)

	// ErrNotFound indicates the assignment no longer exists on the server.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSIGNMENT_NOT_FOUND",
		"This delivery is no longer available",
		"",
	)

	// ErrInvalidConfirmation indicates the recipient code was rejected by the
	// server. Local state is unchanged and the caller may re-enter the code.
	ErrInvalidConfirmation = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CONFIRMATION",
		"The confirmation code was not accepted",
		"",
	)

	// ErrInvalidTransition indicates the requested lifecycle operation is not
	// valid from the assignment's current status.
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"The delivery is not in a state that allows this action",
		"",
	)

	// ErrTimeout indicates a bounded wait on the server elapsed.
	ErrTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"REQUEST_TIMEOUT",
		"The server did not respond in time",
		"",
	)

	// ErrPermissionDenied indicates location access is not granted on the
	// device. Retryable after remediation.
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"LOCATION_PERMISSION_DENIED",
		"Location permission is not granted",
		"",
	)

	// ErrUnavailable indicates the device cannot produce a position fix.
	ErrUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"Device location is currently unavailable",
		"",
	)

	// ErrMaxReconnectExceeded indicates the reconnect budget is exhausted and
	// the channel requires an explicit manual reconnect.
	ErrMaxReconnectExceeded = NewBaseError(
		http.StatusServiceUnavailable,
		"MAX_RECONNECT_EXCEEDED",
		"Connection lost, reconnect manually",
		"",
	)

	// ErrNotConnected indicates an operation that requires the persistent
	// channel was attempted while it is down.
	ErrNotConnected = NewBaseError(
		http.StatusServiceUnavailable,
		"NOT_CONNECTED",
		"Not connected to the dispatch server",
		"",
	)

	// ErrValidationFailed indicates input validation failed at the API edge.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrInternalError covers unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)
