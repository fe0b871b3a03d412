// Package cli provides shared configuration and exit-code handling for the
// crndecomp command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	ExitSuccess        = 0
	ExitGeneral        = 1
	ExitConfig         = 2
	ExitInput          = 3
	ExitInvalidNetwork = 4
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the code carried by err: ExitSuccess for nil, the
// ExitError's code when one is in the chain, ExitGeneral otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}

// ReportError prints err to w and returns its exit code.
func ReportError(w io.Writer, err error) int {
	fmt.Fprintln(w, "Error:", err)
	return ExitCode(err)
}

// ExitWithError prints the error and exits with the appropriate code.
func ExitWithError(err error) {
	os.Exit(ReportError(os.Stderr, err))
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// InputError creates an ExitError with ExitInput code.
func InputError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitInput, Message: msg, Err: err}
}

// InvalidNetworkError creates an ExitError with ExitInvalidNetwork code.
func InvalidNetworkError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitInvalidNetwork, Message: msg, Err: err}
}

// GeneralError creates an ExitError with ExitGeneral code.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}
