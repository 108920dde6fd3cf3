package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the request cannot be applied to the current
// state of the resource (duplicate ballot, poll already closed, etc.).
var ErrConflict = errors.New("conflict with current state")

// ErrForbidden indicates that the acting employee is not allowed to perform
// the requested operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-style status code alongside a message and an
// optional wrapped cause. Business-rule outcomes use the sentinel errors
// above; AppError is for infrastructure failures and handler responses.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError for a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewBadRequestError creates an AppError for malformed input.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewValidationFailedError creates an AppError for input that failed a
// domain validation rule.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError creates an AppError for a state conflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewForbiddenError creates an AppError for an authorization failure.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

// NewUnauthorizedError creates an AppError for an authentication failure.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

// NewInternalServerError creates an AppError for unexpected failures.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: ErrInternal}
}

// NewGatewayTimeoutError creates an AppError for upstream service timeouts.
func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message, Err: ErrInternal}
}
