package style

import "errors"

// Errors returned by color construction and parsing.
var (
	// ErrOutOfRange indicates a color component outside its documented bounds.
	ErrOutOfRange = errors.New("color component out of range")

	// ErrInvalidFormat indicates a malformed color literal.
	ErrInvalidFormat = errors.New("invalid color format")
)
