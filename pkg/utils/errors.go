package utils

import "net/http"

// ErrorKind classifies service failures into the fixed set of outcomes
// the API can report. Every kind maps to exactly one HTTP status code.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuthFailure
	KindNotFound
	KindMethodNotAllowed
	KindConflict
	KindInternal
)

// StatusCode returns the HTTP status for the kind
func (k ErrorKind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthFailure:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError carries the kind, the user-facing message and the wrapped cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ==================== CONSTRUCTORS ====================

func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func AuthFailureError(message string) *AppError {
	return &AppError{Kind: KindAuthFailure, Message: message}
}

func NotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func MethodNotAllowedError(message string) *AppError {
	return &AppError{Kind: KindMethodNotAllowed, Message: message}
}

func ConflictError(message string, err error) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Err: err}
}

// InternalError surfaces the underlying error text to the caller.
// Parity with the previous backend, which returned str(e) in the body.
func InternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: err.Error(), Err: err}
}
