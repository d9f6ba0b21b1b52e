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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrHomeNotSet   ErrorCode = "HOME_NOT_SET"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Settings directory validation errors
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrNotADirectory    ErrorCode = "NOT_A_DIRECTORY"
	ErrEmptyDirectory   ErrorCode = "EMPTY_DIRECTORY"
	ErrManifestMissing  ErrorCode = "MANIFEST_MISSING"
	ErrNothingToInstall ErrorCode = "NOTHING_TO_INSTALL"
	ErrEmptyManifest    ErrorCode = "EMPTY_MANIFEST"
	ErrManifestParse    ErrorCode = "MANIFEST_PARSE"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileRemove    ErrorCode = "FILE_REMOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrPathResolve   ErrorCode = "PATH_RESOLVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
)

// validationCodes are user-fixable problems found before anything is installed
var validationCodes = map[ErrorCode]bool{
	ErrNotFound:         true,
	ErrNotADirectory:    true,
	ErrEmptyDirectory:   true,
	ErrManifestMissing:  true,
	ErrNothingToInstall: true,
	ErrEmptyManifest:    true,
	ErrManifestParse:    true,
}

// AyarlaError represents a structured error with code and details
type AyarlaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AyarlaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AyarlaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AyarlaError) Is(target error) bool {
	var targetErr *AyarlaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AyarlaError with the given code and message
func New(code ErrorCode, message string) *AyarlaError {
	return &AyarlaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AyarlaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AyarlaError {
	return &AyarlaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AyarlaError
func Wrap(err error, code ErrorCode, message string) *AyarlaError {
	if err == nil {
		return nil
	}
	return &AyarlaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AyarlaError {
	if err == nil {
		return nil
	}
	return &AyarlaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AyarlaError) WithDetail(key string, value interface{}) *AyarlaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ayarlaErr *AyarlaError
	if errors.As(err, &ayarlaErr) {
		return ayarlaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AyarlaError
func GetErrorCode(err error) ErrorCode {
	var ayarlaErr *AyarlaError
	if errors.As(err, &ayarlaErr) {
		return ayarlaErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AyarlaError
func GetErrorDetails(err error) map[string]interface{} {
	var ayarlaErr *AyarlaError
	if errors.As(err, &ayarlaErr) {
		return ayarlaErr.Details
	}
	return nil
}

// IsValidation reports whether err is a settings directory or manifest
// problem, i.e. one raised before any filesystem mutation.
func IsValidation(err error) bool {
	return validationCodes[GetErrorCode(err)]
}
