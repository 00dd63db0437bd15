package generator

import (
	"errors"
)

var (
	// ErrInvalidSize is returned when a negative string size is requested.
	ErrInvalidSize = errors.New("invalid string size requested")

	// ErrNilSequence is returned when a Generator is created without an alphabet.
	ErrNilSequence = errors.New("alphabet can not be nil")

	// ErrNilSource is returned when a Generator is created without a random source.
	ErrNilSource = errors.New("random source can not be nil")
)
