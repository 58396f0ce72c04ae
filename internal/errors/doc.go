// Package errors provides error handling conventions for the dkpkg CLI.
//
// It re-exports the wrapping helpers of github.com/cockroachdb/errors,
// defines sentinel errors for common failure conditions, and an ExitError
// type that carries an exit code and a suggestion to the CLI edge.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrInvalidOverride) {
//	    // handle a malformed --set flag
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, failed check)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. [ExitCode] extracts the code from any error chain:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Check .dkpkg.yaml")
//	os.Exit(errors.ExitCode(err))
package errors
