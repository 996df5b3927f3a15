// Package errors provides standardized error types for the siteconf tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// SiteError is the primary error type, containing:
//   - Code: Categorizes the error (MISSING_BINDING, TEMPLATE, etc.)
//   - Message: Human-readable error description
//   - Key: The binding key or site name involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrMissingBinding   // a template placeholder has no value
//	errors.ErrBadTemplate      // malformed placeholder syntax
//	errors.ErrSiteNotInstalled // site config not present on disk
//	errors.ErrRootRequired     // root access required
//
// # Usage
//
// Creating domain-specific errors:
//
//	// A placeholder with no supplied value
//	return errors.MissingBinding("installation.system.hostname")
//
//	// Malformed template input
//	return errors.BadTemplate("unterminated placeholder")
//
//	// Wrapping an underlying error
//	return errors.Wrap(errors.ErrCodeConfig, "failed to load bindings", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrMissingBinding) {
//	    // Handle the missing value case
//	}
//
// Use errors.As for type assertion:
//
//	var siteErr *errors.SiteError
//	if errors.As(err, &siteErr) {
//	    fmt.Printf("Error code: %s, Key: %s\n", siteErr.Code, siteErr.Key)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeMissingBinding ErrorCode = "MISSING_BINDING" // Placeholder has no supplied value
	ErrCodeTemplate       ErrorCode = "TEMPLATE"        // Malformed template syntax
	ErrCodeValidation     ErrorCode = "VALIDATION"      // Input validation failed
	ErrCodePermission     ErrorCode = "PERMISSION"      // Permission denied
	ErrCodeConfig         ErrorCode = "CONFIG"          // Bindings file error
	ErrCodeDriver         ErrorCode = "DRIVER"          // Web server driver error
	ErrCodeInternal       ErrorCode = "INTERNAL"        // Internal/unexpected error
)

// SiteError represents a structured error with context about the operation.
type SiteError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Key     string    // Binding key or site name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Key != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Key, e.Message, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s: %s", e.Key, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *SiteError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *SiteError) Is(target error) bool {
	t, ok := target.(*SiteError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrMissingBinding indicates a template placeholder has no supplied value.
	ErrMissingBinding = &SiteError{Code: ErrCodeMissingBinding, Message: "missing configuration value"}

	// ErrBadTemplate indicates the template contains malformed placeholder syntax.
	ErrBadTemplate = &SiteError{Code: ErrCodeTemplate, Message: "malformed template"}

	// ErrInvalidHostname indicates the hostname is not valid.
	ErrInvalidHostname = &SiteError{Code: ErrCodeValidation, Message: "invalid hostname"}

	// ErrInvalidPath indicates a file path is not valid.
	ErrInvalidPath = &SiteError{Code: ErrCodeValidation, Message: "invalid path"}

	// ErrSiteNotInstalled indicates the site config is not present on disk.
	ErrSiteNotInstalled = &SiteError{Code: ErrCodeDriver, Message: "site not installed"}

	// ErrConfigInvalid indicates the bindings file is invalid or corrupt.
	ErrConfigInvalid = &SiteError{Code: ErrCodeConfig, Message: "invalid bindings file"}

	// ErrRootRequired indicates root privileges are required.
	ErrRootRequired = &SiteError{Code: ErrCodePermission, Message: "root privileges required"}
)

// MissingBinding creates an error for a placeholder with no supplied value.
func MissingBinding(key string) error {
	return &SiteError{
		Code:    ErrCodeMissingBinding,
		Message: "missing configuration value",
		Key:     key,
	}
}

// BadTemplate creates an error for malformed placeholder syntax.
func BadTemplate(msg string) error {
	return &SiteError{
		Code:    ErrCodeTemplate,
		Message: msg,
	}
}

// SiteNotInstalled creates an error for a site with no installed config.
func SiteNotInstalled(site string) error {
	return &SiteError{
		Code:    ErrCodeDriver,
		Message: "site not installed",
		Key:     site,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapKey creates an error with key context and underlying error.
func WrapKey(code ErrorCode, key string, err error) error {
	return &SiteError{
		Code: code,
		Key:  key,
		Err:  err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
