// Package errors defines the stable error code system for aider-vertex.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract; scripts match on these.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	// Environment and readiness
	EInvalidEnv Code = "E_INVALID_ENV" // a tunable environment variable failed to parse
	EUnhealthy  Code = "E_UNHEALTHY"   // doctor reported at least one blocking finding

	// Confirmation
	EAborted        Code = "E_ABORTED"         // user declined to continue past an unhealthy report
	ENotInteractive Code = "E_NOT_INTERACTIVE" // confirmation needed but stdin/stderr are not TTYs

	// Wrapped tool
	EConfigSynthFailed Code = "E_CONFIG_SYNTH_FAILED" // transient tool config could not be written
	EWrappedNotFound   Code = "E_WRAPPED_NOT_FOUND"   // wrapped executable not on PATH
	EWrappedFailed     Code = "E_WRAPPED_FAILED"      // wrapped executable could not be started or was killed

	// Tutorial scaffolding
	ETutorialExists Code = "E_TUTORIAL_EXISTS" // target directory already exists
	EScaffoldFailed Code = "E_SCAFFOLD_FAILED" // writing the tutorial tree failed
	EGitInitFailed  Code = "E_GIT_INIT_FAILED" // tutorial tree written but git bootstrap failed

	// Interface configuration
	EInvalidDDDConfig Code = "E_INVALID_DDD_CONFIG" // .ddd/config.json is not valid JSONC
)

// LauncherError is the standard error type for aider-vertex errors.
type LauncherError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *LauncherError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *LauncherError) Unwrap() error {
	return e.Cause
}

// ExitCodeError wraps an error with an explicit process exit code.
type ExitCodeError struct {
	Err  error
	Code int
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

func (e *ExitCodeError) ExitCode() int {
	return e.Code
}

// Exit returns an error that only carries a process exit code. It prints
// nothing; use it to propagate a child process's status.
func Exit(code int) error {
	return &ExitCodeError{Code: code}
}

// WithExitCode wraps err with a specific process exit code.
func WithExitCode(err error, code int) error {
	return &ExitCodeError{Err: err, Code: code}
}

// New creates a new LauncherError with the given code and message.
func New(code Code, msg string) error {
	return &LauncherError{Code: code, Msg: msg}
}

// NewWithDetails creates a new LauncherError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &LauncherError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new LauncherError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &LauncherError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new LauncherError wrapping an underlying error with details.
// Details map is copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &LauncherError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a LauncherError.
func GetCode(err error) Code {
	var le *LauncherError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}

// AsLauncherError returns (*LauncherError, true) if err is or wraps a LauncherError.
func AsLauncherError(err error) (*LauncherError, bool) {
	var le *LauncherError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors,
// unless err carries its own exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec interface{ ExitCode() int }
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var le *LauncherError
	if errors.As(err, &le) {
		_, _ = fmt.Fprintf(w, "error_code: %s\n", le.Code)
		_, _ = fmt.Fprintln(w, le.Msg)
	} else {
		_, _ = fmt.Fprintln(w, err.Error())
	}
}
