package domain

import "errors"

var (
	// ErrInvalidRoot is returned when the input directory is missing or is not a directory.
	ErrInvalidRoot = errors.New("invalid input directory")
	// ErrTraversal is returned when a directory below the root cannot be read.
	ErrTraversal = errors.New("directory traversal failed")
	// ErrUnreadableFile marks a file whose content was replaced by the placeholder.
	// It is only ever logged; it never aborts a run.
	ErrUnreadableFile = errors.New("unreadable file")
	// ErrSerialization is returned when the document cannot be written.
	ErrSerialization = errors.New("failed to write document")
	// ErrBuilderState is returned when builder calls are not paired correctly.
	ErrBuilderState = errors.New("document builder misuse")
)
