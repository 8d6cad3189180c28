package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrSettingNotFound indicates the setting path doesn't exist.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrValidationFailed indicates a value is not acceptable for its setting.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError describes an invalid setting value.
type ValidationError struct {
	// Path is the setting path, e.g. "logging.level".
	Path string
	// Value is the rejected value.
	Value string
	// Message describes what is wrong.
	Message string
	// Err is the underlying error, if any.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Path, e.Value, e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidationFailed
}

// Is matches ErrValidationFailed regardless of the underlying error.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
