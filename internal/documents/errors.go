package documents

import "errors"

var (
	// ErrNotFound indicates the document does not exist or is owned by someone else.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
