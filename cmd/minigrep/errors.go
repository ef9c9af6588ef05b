package main

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitUsage   = 1
	exitFailure = 2
)

// errNoMatch is returned by the root command when the line does not match.
// It is a normal outcome and is never printed.
var errNoMatch = errors.New("pattern not found")

// UsageError reports an invocation that does not have the `-E <pattern>`
// shape.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// exitCode maps the result of the root command to a process exit status.
func exitCode(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil:
		return exitMatch
	case errors.Is(err, errNoMatch):
		return exitNoMatch
	case errors.As(err, &usageErr):
		return exitUsage
	default:
		return exitFailure
	}
}
