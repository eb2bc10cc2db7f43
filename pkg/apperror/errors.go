package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application error independently of its HTTP mapping.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindInvalidState  Kind = "invalid_state"
	KindIndexRange    Kind = "index_out_of_range"
	KindNotFound      Kind = "not_found"
	KindPersistence   Kind = "persistence"
	KindAuthorization Kind = "authorization"
	KindInternal      Kind = "internal"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError reports a rejected input value (blank name, negative
// price, non-positive quantity).
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Kind: KindValidation, Message: message}
}

// NewInvalidStateError reports an operation not permitted in the aggregate's
// current state, e.g. mutating a finalized table.
func NewInvalidStateError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Kind: KindInvalidState, Message: message}
}

// NewIndexError reports an item or order index outside bounds.
func NewIndexError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: KindIndexRange, Message: message}
}

// NewNotFoundError creates a not found error for the named resource
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: resource + " not found"}
}

// NewPersistenceError wraps an I/O or decode failure against the backing store.
func NewPersistenceError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Kind: KindPersistence, Message: message}
}

// NewAuthorizationError reports a failed admin check on a destructive operation.
func NewAuthorizationError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Kind: KindAuthorization, Message: message}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: err.Error(),
	}
}
