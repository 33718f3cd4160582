package geminicli

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies producer failures by how a caller should read
// them.
type ErrorCategory string

const (
	// ErrorTransient marks temporary conditions such as rate limits or
	// server overload.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent marks unrecoverable conditions such as a bad API key
	// or an unknown model.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput marks malformed requests the user must correct.
	ErrorUserInput ErrorCategory = "user_input"
)

// Error is a categorized failure raised at the producer boundary.
type Error struct {
	Msg   string
	Cat   ErrorCategory
	Code  int // HTTP status code, 0 if not applicable
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *Error) Category() ErrorCategory {
	return e.Cat
}

// NewTransientError creates a transient error.
func NewTransientError(msg string, code int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorTransient, Code: code, Cause: cause}
}

// NewPermanentError creates a permanent error.
func NewPermanentError(msg string, code int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorPermanent, Code: code, Cause: cause}
}

// NewUserInputError creates an invalid-input error.
func NewUserInputError(msg string, code int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorUserInput, Code: code, Cause: cause}
}

// CategoryOf returns the category of err, or the empty string when err is
// not a categorized error.
func CategoryOf(err error) ErrorCategory {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Cat
	}
	return ""
}
