// Package errors defines application-specific error values and the mapping
// from a failed run to its process exit status.
package errors

import (
	"github.com/bossoq/flood-disaster-crawl/internal/errors"
)

// Exit codes reported by the crawler process. Zero is reserved for a clean
// run, including runs that found nothing new.
const (
	ExitGeneric = 1
	ExitConfig  = 2
	ExitFetch   = 3
	ExitStorage = 4
	ExitAuth    = 5
	ExitNotify  = 6
)

// RunError defines the interface for application-specific errors
type RunError interface {
	error
	ExitCode() int     // Process exit code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the RunError interface
type BaseError struct {
	exitCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(exitCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		exitCode:  exitCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ExitCode returns the process exit code
func (e *BaseError) ExitCode() int {
	return e.exitCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		exitCode:  e.exitCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Configuration and credential-store errors, fatal before any network call
	ErrConfigLoad = NewBaseError(
		ExitConfig,
		"CONFIG_LOAD_FAILED",
		"configuration could not be loaded",
		"",
	)

	ErrSecretsLoad = NewBaseError(
		ExitConfig,
		"SECRETS_LOAD_FAILED",
		"secrets document is missing or unparsable",
		"",
	)

	ErrCredentialLoad = NewBaseError(
		ExitConfig,
		"CREDENTIAL_LOAD_FAILED",
		"credential document is missing or unparsable",
		"",
	)

	ErrCredentialSave = NewBaseError(
		ExitConfig,
		"CREDENTIAL_SAVE_FAILED",
		"credential document could not be written",
		"",
	)

	// Catalog fetch errors
	ErrRemoteFetch = NewBaseError(
		ExitFetch,
		"REMOTE_FETCH_FAILED",
		"catalog listing could not be fetched",
		"",
	)

	ErrMalformedResponse = NewBaseError(
		ExitFetch,
		"MALFORMED_RESPONSE",
		"catalog listing envelope could not be parsed",
		"",
	)

	// Registry errors
	ErrStorage = NewBaseError(
		ExitStorage,
		"STORAGE_FAILED",
		"registry read or write failed",
		"",
	)

	ErrDuplicateKey = NewBaseError(
		ExitStorage,
		"DUPLICATE_KEY",
		"registry insert collided with an existing id",
		"",
	)

	// Token refresh errors
	ErrTokenRefresh = NewBaseError(
		ExitAuth,
		"TOKEN_REFRESH_FAILED",
		"refresh token exchange failed",
		"",
	)

	// Notification errors
	ErrNotify = NewBaseError(
		ExitNotify,
		"NOTIFY_FAILED",
		"chat notification could not be sent",
		"",
	)
)

// ExitCodeFor maps any error to the crawler's process exit code. Errors that
// do not carry a RunError anywhere in their tree fall back to ExitGeneric.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var runErr RunError
	if errors.As(err, &runErr) {
		return runErr.ExitCode()
	}

	return ExitGeneric
}
