package instance

import "errors"

var (
	// ErrFileNotFound indicates a missing instance file.
	ErrFileNotFound = errors.New("instance: file not found")
	// ErrNoPoints indicates a missing, non-integer or negative point count.
	ErrNoPoints = errors.New("instance: no points")
	// ErrPointCountMismatch indicates more or fewer pairs than announced, a
	// dangling coordinate, or a non-integer coordinate token.
	ErrPointCountMismatch = errors.New("instance: point count mismatch")
)
