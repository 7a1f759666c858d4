package cmd

import (
	"context"
	"errors"
)

// Exit codes
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitBadOption   = 2
	ExitInterrupted = 130
)

// ExitError carries the process exit code for an error.
// ShowUsage asks the caller to print usage text after the message.
type ExitError struct {
	Code      int
	Err       error
	ShowUsage bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// usageError is a bad-argument error reported with usage text and exit code 1
func usageError(err error) *ExitError {
	return &ExitError{Code: ExitFailure, Err: err, ShowUsage: true}
}

// ExitCode maps an error returned by the root command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	return ExitFailure
}

// showUsage reports whether usage text should follow the error message
func showUsage(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.ShowUsage
}
