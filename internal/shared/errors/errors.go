package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeInvalidAttribute indicates a planet attribute violated its constraint
	ErrorTypeInvalidAttribute ErrorType = "invalid_attribute"
	// ErrorTypeEmptyInput indicates an aggregate was requested over no planets
	ErrorTypeEmptyInput ErrorType = "empty_input"
	// ErrorTypeNotFound indicates a planet was not found in a system
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeInvalidConfig indicates unusable configuration or seed data
	ErrorTypeInvalidConfig ErrorType = "invalid_config"
	// ErrorTypeInternal indicates an unexpected error
	ErrorTypeInternal ErrorType = "internal"
)

// AppError is the base error type for application errors
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
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

// InvalidAttribute creates an invalid attribute error
func InvalidAttribute(message string) error {
	return &AppError{
		Type:    ErrorTypeInvalidAttribute,
		Message: message,
	}
}

// EmptyInput creates an empty input error
func EmptyInput(message string) error {
	return &AppError{
		Type:    ErrorTypeEmptyInput,
		Message: message,
	}
}

// NotFoundf creates a not found error with formatting
func NotFoundf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidConfigf creates an invalid config error with formatting
func InvalidConfigf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeInvalidConfig,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapInvalidConfig wraps an error as an invalid config error
func WrapInvalidConfig(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeInvalidConfig,
		Message: message,
		Err:     err,
	}
}

// WrapInternal wraps an error as an internal error
func WrapInternal(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// GetType returns the error type of an error
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// Is reports whether any AppError in err's chain has the given type
func Is(err error, errorType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errorType {
			return true
		}
		err = appErr.Err
	}
	return false
}
