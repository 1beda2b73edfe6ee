package response

import (
	"net/http"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
)

// Response represents the standard API response structure
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error details in the response
type ErrorInfo struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// --- Error Code Constants ---

const (
	// Client errors (4xx)
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"

	// Server errors (5xx)
	ErrCodeInternalError = "INTERNAL_ERROR"

	// Designer errors
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeReferentialViolation = "REFERENTIAL_VIOLATION"
	ErrCodePersistenceError     = "PERSISTENCE_ERROR"
)

// ErrorCodeToHTTPStatus maps error codes to HTTP status codes
var ErrorCodeToHTTPStatus = map[string]int{
	ErrCodeBadRequest:           http.StatusBadRequest,
	ErrCodeUnauthorized:         http.StatusUnauthorized,
	ErrCodeForbidden:            http.StatusForbidden,
	ErrCodeNotFound:             http.StatusNotFound,
	ErrCodeInternalError:        http.StatusInternalServerError,
	ErrCodeValidationFailed:     http.StatusBadRequest,
	ErrCodeReferentialViolation: http.StatusConflict,
	ErrCodePersistenceError:     http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeToHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// --- Response Builders ---

// Success creates a success response with data
func Success(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// Error creates an error response
func Error(code string, message string) *Response {
	return &Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// ErrorWithDetails creates an error response with additional details
func ErrorWithDetails(code string, message string, details map[string]string) *Response {
	return &Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// BadRequest creates a bad request error response
func BadRequest(message string) *Response {
	return Error(ErrCodeBadRequest, message)
}

// Unauthorized creates an unauthorized error response
func Unauthorized(message string) *Response {
	if message == "" {
		message = "Authentication required"
	}
	return Error(ErrCodeUnauthorized, message)
}

// NotFound creates a not found error response
func NotFound(message string) *Response {
	if message == "" {
		message = "Resource not found"
	}
	return Error(ErrCodeNotFound, message)
}

// InternalError creates an internal server error response
func InternalError(message string) *Response {
	if message == "" {
		message = "An internal error occurred"
	}
	return Error(ErrCodeInternalError, message)
}

// FromDomainError maps a designer domain error to its response and HTTP
// status. Unknown errors map to INTERNAL_ERROR so nothing leaks a stack.
func FromDomainError(err error) (int, *Response) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, Error(ErrCodeValidationFailed, err.Error())
	case domain.IsNotFound(err):
		return http.StatusNotFound, Error(ErrCodeNotFound, err.Error())
	case domain.IsReferential(err):
		return http.StatusConflict, Error(ErrCodeReferentialViolation, err.Error())
	case domain.IsPersistence(err):
		return http.StatusBadGateway, Error(ErrCodePersistenceError, err.Error())
	default:
		return http.StatusInternalServerError, InternalError(err.Error())
	}
}
