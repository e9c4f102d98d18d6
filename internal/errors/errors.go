package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotTaskOwner is returned when a caller is neither the owner of
	// the task nor an admin.
	ErrNotTaskOwner = errors.New("not authorized to access this task")
	// ErrInvalidStatus is returned when a task status value is unknown.
	ErrInvalidStatus = errors.New("invalid task status")
	// ErrEmptyTitle is returned when a task title is missing or blank.
	ErrEmptyTitle = errors.New("task title is required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. A missing task maps
// to 404 before any ownership failure maps to 403: the existence check
// runs first, so a non-owner probing an absent task learns "not found"
// rather than "not authorized".
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrTaskNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrNotTaskOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_TASK_OWNER")
	case ErrInvalidStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case ErrEmptyTitle:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_TITLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
