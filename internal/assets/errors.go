package assets

import "errors"

// Sentinel errors for shell loading.
var (
	// ErrShellNotFound indicates the requested page shell does not exist.
	ErrShellNotFound = errors.New("page shell not found")

	// ErrInvalidShellName indicates the shell name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidShellName = errors.New("invalid shell name")

	// ErrInvalidShellDir indicates the configured shell directory is not a
	// valid directory.
	ErrInvalidShellDir = errors.New("invalid shell directory")

	// ErrShellRead indicates an I/O error occurred while reading a shell file.
	ErrShellRead = errors.New("failed to read shell")

	// ErrPathTraversal indicates an attempt to access files outside the
	// shell directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
