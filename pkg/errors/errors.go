package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrCancelled     ErrorCode = "CANCELLED"

	// Patch engine errors. These are the only kinds a patch function returns.
	ErrPatternNotFound      ErrorCode = "PATTERN_NOT_FOUND"
	ErrNoEligibleMatch      ErrorCode = "NO_ELIGIBLE_MATCH"
	ErrStructuralCorruption ErrorCode = "STRUCTURAL_CORRUPTION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrFileRead         ErrorCode = "FILE_READ"
	ErrFileWrite        ErrorCode = "FILE_WRITE"
	ErrDirCreate        ErrorCode = "DIR_CREATE"

	// Build errors
	ErrBuildFailed ErrorCode = "BUILD_FAILED"
)

// ScrpatchError represents a structured error with code and details
type ScrpatchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScrpatchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScrpatchError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a ScrpatchError with the same code
func (e *ScrpatchError) Is(target error) bool {
	var targetErr *ScrpatchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ScrpatchError with the given code and message
func New(code ErrorCode, message string) *ScrpatchError {
	return &ScrpatchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScrpatchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScrpatchError {
	return &ScrpatchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *ScrpatchError {
	if err == nil {
		return nil
	}
	return &ScrpatchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ScrpatchError {
	if err == nil {
		return nil
	}
	return &ScrpatchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ScrpatchError) WithDetail(key string, value interface{}) *ScrpatchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ScrpatchError) WithDetails(details map[string]interface{}) *ScrpatchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// NotFound reports a construct a patch function required but could not locate.
func NotFound(construct string) *ScrpatchError {
	return Newf(ErrPatternNotFound, "%s not found in template", construct).
		WithDetail("construct", construct)
}

// NoEligible reports a destructive operation that matched nothing.
func NoEligible(format string, args ...interface{}) *ScrpatchError {
	return Newf(ErrNoEligibleMatch, format, args...)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var se *ScrpatchError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ScrpatchError
func GetErrorCode(err error) ErrorCode {
	var se *ScrpatchError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ScrpatchError
func GetErrorDetails(err error) map[string]interface{} {
	var se *ScrpatchError
	if errors.As(err, &se) {
		return se.Details
	}
	return nil
}
