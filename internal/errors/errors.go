// Package errors provides standardized error types for the glabenv CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// VarError is the primary error type, containing:
//   - Code: Categorizes the error (FORMAT, REMOTE, POLICY, etc.)
//   - Message: Human-readable error description
//   - Key: The variable key involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrDuplicateKey   // variable key appears twice in a file
//	errors.ErrInvalidKey     // key fails the allowed character pattern
//	errors.ErrInvalidType    // variable_type is not env_var or file
//	errors.ErrAuthRequired   // no GitLab URL or token could be resolved
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Malformed variables file
//	return errors.Format("variable 3 has no key")
//
//	// Remote store rejected an operation
//	return errors.Remote("update", "DB_PASSWORD", err)
//
//	// Policy downgrade (reported, not applied)
//	return errors.Policy("API_KEY", "empty value requires --force")
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrDuplicateKey) {
//	    // Handle the duplicate
//	}
//
// Use errors.As for type assertion:
//
//	var varErr *errors.VarError
//	if errors.As(err, &varErr) {
//	    fmt.Printf("Error code: %s, Key: %s\n", varErr.Code, varErr.Key)
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
	ErrCodeFormat     ErrorCode = "FORMAT"     // Malformed variables file
	ErrCodeRemote     ErrorCode = "REMOTE"     // Remote store (GitLab API) error
	ErrCodePolicy     ErrorCode = "POLICY"     // Operation downgraded by policy
	ErrCodeValidation ErrorCode = "VALIDATION" // Input validation failed
	ErrCodeAuth       ErrorCode = "AUTH"       // Missing or rejected credentials
	ErrCodeConfig     ErrorCode = "CONFIG"     // Configuration error
	ErrCodeCert       ErrorCode = "CERT"       // Certificate tooling error
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal/unexpected error
)

// VarError represents a structured error with context about the operation.
type VarError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Key     string    // Variable key (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *VarError) Error() string {
	if e.Key != "" && e.Err != nil {
		return fmt.Sprintf("variable %s: %s: %v", e.Key, e.Message, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("variable %s: %s", e.Key, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *VarError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *VarError) Is(target error) bool {
	t, ok := target.(*VarError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrDuplicateKey indicates a key appears more than once in a file.
	ErrDuplicateKey = &VarError{Code: ErrCodeFormat, Message: "duplicate variable key"}

	// ErrMissingKey indicates a variable record with no key.
	ErrMissingKey = &VarError{Code: ErrCodeFormat, Message: "variable key is required"}

	// ErrInvalidKey indicates the key fails the allowed character pattern.
	ErrInvalidKey = &VarError{Code: ErrCodeFormat, Message: "invalid variable key"}

	// ErrInvalidType indicates the variable_type is not recognized.
	ErrInvalidType = &VarError{Code: ErrCodeFormat, Message: "invalid variable type"}

	// ErrVariableNotFound indicates the remote store has no such variable.
	ErrVariableNotFound = &VarError{Code: ErrCodeRemote, Message: "variable not found"}

	// ErrAuthRequired indicates no GitLab URL or token could be resolved.
	ErrAuthRequired = &VarError{Code: ErrCodeAuth, Message: "GitLab URL and token are required"}

	// ErrProjectRequired indicates no project was selected.
	ErrProjectRequired = &VarError{Code: ErrCodeValidation, Message: "project is required"}

	// ErrConfigInvalid indicates the configuration is invalid or corrupt.
	ErrConfigInvalid = &VarError{Code: ErrCodeConfig, Message: "invalid configuration"}

	// ErrAcmeNotInstalled indicates acme.sh is not installed.
	ErrAcmeNotInstalled = &VarError{Code: ErrCodeCert, Message: "acme.sh not installed"}
)

// Format creates an error for a malformed variables file.
func Format(msg string) error {
	return &VarError{
		Code:    ErrCodeFormat,
		Message: msg,
	}
}

// FormatKey creates a file-format error tied to a specific variable key.
func FormatKey(key, msg string) error {
	return &VarError{
		Code:    ErrCodeFormat,
		Message: msg,
		Key:     key,
	}
}

// Remote creates an error for a failed remote store operation.
func Remote(op, key string, err error) error {
	return &VarError{
		Code:    ErrCodeRemote,
		Message: fmt.Sprintf("%s failed", op),
		Key:     key,
		Err:     err,
	}
}

// Policy creates an error describing an operation downgraded by policy.
func Policy(key, reason string) error {
	return &VarError{
		Code:    ErrCodePolicy,
		Message: reason,
		Key:     key,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &VarError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &VarError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapKey creates an error with variable key context and underlying error.
func WrapKey(code ErrorCode, key, msg string, err error) error {
	return &VarError{
		Code:    code,
		Message: msg,
		Key:     key,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
