package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrContainerNotExist is returned when the container file is missing.
	ErrContainerNotExist = errors.New("container file does not exist")

	// ErrNotRegularFile is returned when the path names a directory or
	// another non-regular file.
	ErrNotRegularFile = errors.New("container path is not a regular file")

	// ErrEmptyPath is returned when no path was given.
	ErrEmptyPath = errors.New("container path is empty")
)
