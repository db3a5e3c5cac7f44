package download

import "errors"

// Sentinel errors for the download package.
var (
	// ErrPathTraversal is returned when a planned file would land outside
	// the download root.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrEmptyPath is returned when no download root was given.
	ErrEmptyPath = errors.New("download path is empty")
)
