package errors

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed errors below
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("resource not found")
	ErrIntegrity  = errors.New("referenced resource does not exist")
)

// ValidationError reports malformed or missing input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a meeting or action that does not exist
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IntegrityError reports a foreign key pointing at a missing row.
// It unwraps to a NotFoundError for the referenced resource.
type IntegrityError struct {
	Resource string
	ID       uint
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("referenced %s %d does not exist", e.Resource, e.ID)
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

func (e *IntegrityError) Unwrap() error {
	return &NotFoundError{Resource: e.Resource, ID: e.ID}
}

// Invalid builds a ValidationError for a single field
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFound builds a NotFoundError
func NotFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// MissingReference builds an IntegrityError
func MissingReference(resource string, id uint) error {
	return &IntegrityError{Resource: resource, ID: id}
}

// Resource names used in NotFound/Integrity errors
const (
	ResourceMeeting = "meeting"
	ResourceAction  = "action"
)

// IsDomain reports whether err belongs to the validation/not-found/integrity taxonomy
func IsDomain(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrIntegrity)
}

// Outcome classifies err for metrics labels
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrIntegrity):
		return "integrity"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "error"
	}
}
