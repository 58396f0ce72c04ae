package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid flag, override or
	// configuration, or a failed --check).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrInvalidOverride indicates a malformed key=value override.
	ErrInvalidOverride = crdb.New("invalid override")

	// ErrUnknownFormat indicates an unsupported output format was requested.
	ErrUnknownFormat = crdb.New("unknown output format")

	// ErrMissingDirectories indicates package directories do not exist.
	ErrMissingDirectories = crdb.New("package directories missing")
)

// Helpers from github.com/cockroachdb/errors, so callers need a single
// errors import.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// Is and As see through it to the wrapped error.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitErrorWithSuggestion creates an ExitError with a suggestion.
func NewExitErrorWithSuggestion(err error, code int, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       code,
		Suggestion: suggestion,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitUser, suggestion)
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitSystem, suggestion)
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitUser, "Run: dkpkg config validate")
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code carried by err. Errors without an
// ExitError in their chain map to ExitSystem, and nil maps to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}

// SuggestionFor returns the suggestion of the first ExitError in err's
// chain, or "" when there is none.
func SuggestionFor(err error) string {
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Suggestion
	}
	return ""
}
