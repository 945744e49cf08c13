package buffer

import "errors"

// Errors returned by grid and style-table operations.
var (
	// ErrOutOfBounds indicates a range referencing lines or columns
	// beyond the grid's current extent. Ranges never clamp.
	ErrOutOfBounds = errors.New("range out of bounds")

	// ErrInvalidRange indicates a range whose start is after its end.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnknownKey indicates a style key with no live table entry.
	// Under correct grid usage this cannot happen; it signals a broken
	// refcount invariant, not a caller mistake.
	ErrUnknownKey = errors.New("unknown style key")
)
