package service

import (
	"errors"
	"fmt"

	"notes-api/internal/storage"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found or not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when no valid caller identity is available.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned for any failed login, whatever the cause.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict is returned when a write collides with existing data.
	ErrConflict = errors.New("conflict")
	// ErrBackend is returned when the storage backend fails.
	ErrBackend = errors.New("storage backend error")
	// ErrExternalService is returned when an external service call fails.
	ErrExternalService = errors.New("external service error")
	// ErrFeatureDisabled is returned when an optional capability is not configured.
	ErrFeatureDisabled = errors.New("feature disabled")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// fromStore translates a storage error into the service taxonomy.
func fromStore(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrDuplicate):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %s: %w", ErrBackend, msg, err)
	}
}
