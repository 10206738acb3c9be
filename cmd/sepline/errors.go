package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/instance"
	"github.com/katalvlaran/sepline/separate"
)

var errNoInput = errors.New("no instance file given")

// fileError ties a failure to the instance file that caused it.
type fileError struct {
	path string
	err  error
}

func (e *fileError) Error() string { return e.path + ": " + e.err.Error() }
func (e *fileError) Unwrap() error { return e.err }

// report prints a user-facing message for err and returns the exit code.
func report(w io.Writer, err error) int {
	var fe *fileError
	path := ""
	if errors.As(err, &fe) {
		path = fe.path
	}

	switch {
	case errors.Is(err, core.ErrInvariantViolation):
		fmt.Fprintf(w, "Internal error while solving %s: %v\n", path, err)
		return exitInternal
	case errors.Is(err, instance.ErrFileNotFound):
		fmt.Fprintf(w, "No file with name [%s] found\n", path)
	case errors.Is(err, instance.ErrNoPoints):
		fmt.Fprintf(w, "There are no points in file %s\n", path)
	case errors.Is(err, instance.ErrPointCountMismatch):
		fmt.Fprintf(w, "The file %s has more|less points than it should\n", path)
	case errors.Is(err, core.ErrCapacityExceeded):
		fmt.Fprintf(w, "The file %s has more points than the capacity allows\n", path)
	case errors.Is(err, separate.ErrDuplicatePoint):
		fmt.Fprintf(w, "The file %s contains duplicate points\n", path)
	case errors.Is(err, errNoInput):
		fmt.Fprintln(w, "No instance of file input")
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}

	return exitInput
}
