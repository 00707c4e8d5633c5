package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"time"

	usecaseErrors "github.com/johnquangdev/meeting-action-tracker/internal/usecase/errors"
)

// ErrorCode identifies an error class in API responses
type ErrorCode string

const (
	ErrorCode_INTERNAL            ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT    ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_PAYLOAD     ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_NOT_FOUND           ErrorCode = "NOT_FOUND"
	ErrorCode_INTEGRITY_VIOLATION ErrorCode = "INTEGRITY_VIOLATION"
	ErrorCode_TOO_MANY_REQUESTS   ErrorCode = "TOO_MANY_REQUESTS"
)

func (c ErrorCode) String() string {
	return string(c)
}

// AppError is the error type rendered by the HTTP layer
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrIntegrityViolation(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_INTEGRITY_VIOLATION,
		Message:  fmt.Sprintf("Referenced %s not found", resource),
	}
}

func ErrTooManyRequests() AppError {
	return AppError{
		HTTPCode: http.StatusTooManyRequests,
		Code:     ErrorCode_TOO_MANY_REQUESTS,
		Message:  "Too many requests",
	}
}

// FromUsecase converts usecase errors into AppErrors. Unknown errors become ErrInternal.
func FromUsecase(err error) AppError {
	var appErr AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var integrityErr *usecaseErrors.IntegrityError
	if stdErrors.As(err, &integrityErr) {
		return ErrIntegrityViolation(integrityErr.Resource).
			WithDetail(integrityErr.Resource+"_id", fmt.Sprintf("%d", integrityErr.ID))
	}

	var notFoundErr *usecaseErrors.NotFoundError
	if stdErrors.As(err, &notFoundErr) {
		return ErrNotFound(capitalize(notFoundErr.Resource)).
			WithDetail(notFoundErr.Resource+"_id", fmt.Sprintf("%d", notFoundErr.ID))
	}

	var validationErr *usecaseErrors.ValidationError
	if stdErrors.As(err, &validationErr) {
		appErr := ErrInvalidArgument(validationErr.Message)
		if validationErr.Field != "" {
			appErr = appErr.WithDetail("field", validationErr.Field)
		}
		return appErr
	}

	return ErrInternal(err)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
