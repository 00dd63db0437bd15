package alphabet

import (
	"github.com/pkg/errors"
)

// Sequence is a read-only, indexable run of characters.
type Sequence interface {
	// Len returns the number of characters.
	Len() int
	// CharAt returns the character at index i.
	CharAt(i int) (rune, error)
	// SubSequence returns the characters in [start, end).
	SubSequence(start, end int) (Sequence, error)
	// String materializes every character.
	String() string
}

// Text is a Sequence over literal characters.
type Text []rune

// NewText returns s as a Sequence.
func NewText(s string) Text {
	return Text(s)
}

// Len implements Sequence.
func (t Text) Len() int { return len(t) }

// CharAt implements Sequence.
func (t Text) CharAt(i int) (rune, error) {
	if err := checkIndex(i, len(t)); err != nil {
		return 0, err
	}

	return t[i], nil
}

// SubSequence implements Sequence.
func (t Text) SubSequence(start, end int) (Sequence, error) {
	if err := checkWindow(start, end, len(t)); err != nil {
		return nil, err
	}

	return t[start:end:end], nil
}

// String implements Sequence.
func (t Text) String() string { return string(t) }

func checkIndex(i, length int) error {
	if i < 0 {
		return errors.Wrapf(ErrIndexOutOfBounds, "index was expected to be >= 0, but was %d", i)
	}

	if i >= length {
		return errors.Wrapf(ErrIndexOutOfBounds, "index was expected to be less than %d, but was %d", length, i)
	}

	return nil
}

// checkWindow validates the bounds of a sub-sequence request. Both ends may equal length.
func checkWindow(start, end, length int) error {
	for _, i := range []int{start, end} {
		if i < 0 || i > length {
			return errors.Wrapf(ErrIndexOutOfBounds, "bound %d outside [0, %d]", i, length)
		}
	}

	if end < start {
		return errors.Wrapf(ErrInvalidRange, "end index was expected to be >= %d, but was %d", start, end)
	}

	return nil
}
