package cli

import (
	"errors"
	"fmt"
)

// ExitCodeError carries a process exit code back to main.
// The failure has already been reported to the user when one is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr)
}
