package alphabet

import (
	"errors"
)

var (
	// ErrInvalidBounds is returned when a Range is built with negative or inverted bounds.
	ErrInvalidBounds = errors.New("invalid range bounds")

	// ErrEmptyAlphabet is returned when an alphabet would contain no characters.
	ErrEmptyAlphabet = errors.New("alphabet must contain at least one character")

	// ErrIndexOutOfBounds is returned for an index or sub-sequence boundary outside the sequence.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidRange is returned when a sub-sequence end precedes its start.
	ErrInvalidRange = errors.New("sub-sequence end is before start")
)
