package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrTaskCompleted = errors.New("task already completed")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TaskError ties a failure to the task it concerns
type TaskError struct {
	ID  string
	Err error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s: %v", e.ID, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// NotFoundError returns an error matching ErrNotFound for the given task ID
func NotFoundError(id string) error {
	return &TaskError{ID: id, Err: ErrNotFound}
}

// IsValidation reports whether err carries a ValidationError
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
