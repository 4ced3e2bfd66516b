package main

import (
	"errors"
	"fmt"
)

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// ValidationFailedError is returned when a report contains errors. The
// report itself has already been written.
type ValidationFailedError struct {
	Errors   int
	Warnings int
	Code     int
}

// Error implements the error interface.
func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d errors, %d warnings", e.Errors, e.Warnings)
}

// ExitCode returns the report's exit status.
func (e *ValidationFailedError) ExitCode() int {
	return e.Code
}

// InputError is a records document that could not be read or parsed.
type InputError struct {
	Err error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("❌ Error reading data file: %v", e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ExitCode returns 1.
func (e *InputError) ExitCode() int { return 1 }
