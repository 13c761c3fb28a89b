// Package response renders the JSON envelopes of the local API.
package response

import (
	"net/http"

	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// retryHint marks errors a view should offer a Retry action for.
const retryHint = "retry"

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "TITLE_REQUIRED"
	Message string `json:"message"`           // Message shown to the user as-is
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	Retry   bool   `json:"retry,omitempty"`   // The request may succeed if repeated
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Message is the payload of responses that only confirm an action.
type Message struct {
	Message string `json:"message"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// NoContent confirms an action with a fixed message
func NoContent(c echo.Context, message string) error {
	return Success(c, http.StatusOK, Message{Message: message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: NewErrorInfo(statusCode, errorCode, message, details),
		Meta:  meta(c),
	})
}

// NewErrorInfo builds the error body. Details are dropped for 5xx and
// authentication/authorization errors.
func NewErrorInfo(statusCode int, errorCode string, message string, details any) *ErrorInfo {
	info := &ErrorInfo{Code: errorCode, Message: message}
	if s, ok := details.(string); ok {
		if s == retryHint {
			info.Retry = true
			details = nil
		} else if s == "" {
			details = nil
		}
	}
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	info.Details = details

	return info
}

// AppErrorInfo converts an AppError into its response body.
func AppErrorInfo(appErr domainerrors.AppError) *ErrorInfo {
	return NewErrorInfo(appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
