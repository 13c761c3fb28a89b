package errors

import (
	"net/http"

	"todo/internal/errors"
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

// WithDetails returns a copy carrying details; the copy still matches e with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying message; the copy still matches e with errors.Is.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches BaseErrors by error code so copies compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Validation errors. These are raised before any network call.
var (
	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_REQUIRED",
		"Email is required",
		"",
	)

	ErrPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_REQUIRED",
		"Password is required",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password must be at least 6 characters long",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrTitleRequired = NewBaseError(
		http.StatusBadRequest,
		"TITLE_REQUIRED",
		"Title is required",
		"",
	)

	ErrNameRequired = NewBaseError(
		http.StatusBadRequest,
		"NAME_REQUIRED",
		"Name is required",
		"",
	)

	ErrAgeInvalid = NewBaseError(
		http.StatusBadRequest,
		"AGE_INVALID",
		"Age must be at least 1",
		"",
	)

	ErrImageType = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TYPE_INVALID",
		"Only image files are allowed",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"Image must be 5MB or smaller",
		"",
	)

	ErrEmptyUpdate = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_UPDATE",
		"Nothing to update",
		"",
	)

	ErrInvalidAuthMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AUTH_MODE",
		"Unknown authentication mode",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)
)

// Session errors.
var (
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"You must be signed in",
		"",
	)

	ErrSessionLoading = NewBaseError(
		http.StatusServiceUnavailable,
		"SESSION_LOADING",
		"Session is still loading",
		"",
	)
)

// Resource errors.
var (
	ErrTodoNotFound = NewBaseError(
		http.StatusNotFound,
		"TODO_NOT_FOUND",
		"Todo not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrListFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"LIST_FETCH_FAILED",
		"An unexpected error occurred",
		"retry",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error occurred. Please try again.",
		"",
	)
)

// BackendError carries an error reported by the hosted backend. The message is
// surfaced verbatim; no further classification is attempted.
type BackendError struct {
	status  int
	code    string
	message string
}

// NewBackendError creates a BackendError from a response status, the backend's
// own error code (may be empty) and its message.
func NewBackendError(status int, code, message string) *BackendError {
	if message == "" {
		message = http.StatusText(status)
	}

	return &BackendError{
		status:  status,
		code:    code,
		message: message,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return e.message
}

// Status returns the HTTP status the backend answered with.
func (e *BackendError) Status() int {
	return e.status
}

// HTTPCode maps backend client errors onto themselves and everything else to 502.
func (e *BackendError) HTTPCode() int {
	if e.status >= 400 && e.status < 500 {
		return e.status
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// Message returns the backend's message
func (e *BackendError) Message() string {
	return e.message
}

// Details returns the backend's own error code, if any
func (e *BackendError) Details() string {
	return e.code
}

// UserMessage returns the human-readable message for err. AppErrors keep their
// own message; anything else collapses to the generic retry message.
func UserMessage(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return ErrInternalError.Message()
}
