package alphabet

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// maxEnd is the largest exclusive end a code-point range may have.
const maxEnd = utf8.MaxRune + 1

// Range is an immutable half-open interval [start, end) of code points.
type Range struct {
	start int
	end   int
}

// NewRange returns the range [start, end).
func NewRange(start, end int) (Range, error) {
	switch {
	case start < 0:
		return Range{}, errors.Wrapf(ErrInvalidBounds, "range start should be >= 0 but is %d", start)
	case end < 0:
		return Range{}, errors.Wrapf(ErrInvalidBounds, "range end should be >= 0 but is %d", end)
	case end < start:
		return Range{}, errors.Wrapf(ErrInvalidBounds, "range boundaries are inverted: from %d to %d", start, end)
	case end > maxEnd:
		return Range{}, errors.Wrapf(ErrInvalidBounds, "range end %d is past the last code point", end)
	}

	return Range{start: start, end: end}, nil
}

// CharRange returns the range covering first through last, both inclusive.
func CharRange(first, last rune) (Range, error) {
	return NewRange(int(first), int(last)+1)
}

// Singleton returns the range holding exactly one code point.
func Singleton(cp rune) (Range, error) {
	return NewRange(int(cp), int(cp)+1)
}

// MustRange is like CharRange but panics on error. Meant for package-level presets.
func MustRange(first, last rune) Range {
	r, err := CharRange(first, last)
	if err != nil {
		panic(err)
	}

	return r
}

// Start returns the first code point of the range.
func (r Range) Start() int { return r.start }

// End returns the exclusive end of the range.
func (r Range) End() int { return r.end }

// Len returns the number of code points in the range.
func (r Range) Len() int { return r.end - r.start }

// Contains reports whether cp lies inside the range.
func (r Range) Contains(cp rune) bool {
	return int(cp) >= r.start && int(cp) < r.end
}

// String renders the range as a character class, e.g. "[a-z]".
func (r Range) String() string {
	switch r.Len() {
	case 0:
		return "[]"
	case 1:
		return fmt.Sprintf("[%c]", rune(r.start))
	default:
		return fmt.Sprintf("[%c-%c]", rune(r.start), rune(r.end-1))
	}
}
