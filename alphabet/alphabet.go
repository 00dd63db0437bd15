package alphabet

import (
	"strings"

	"github.com/pkg/errors"
)

// Alphabet is an ordered list of code-point ranges read as one character sequence.
// Index 0 is the first character of the first non-empty range.
type Alphabet struct {
	ranges []Range
	length int
}

// New composes an alphabet from ranges in the given order.
// The ranges may overlap; the alphabet must hold at least one character.
func New(ranges ...Range) (*Alphabet, error) {
	a := newAlphabet(append([]Range(nil), ranges...))
	if a.length == 0 {
		return nil, errors.Wrap(ErrEmptyAlphabet, "all ranges are empty")
	}

	return a, nil
}

func newAlphabet(ranges []Range) *Alphabet {
	length := 0
	for _, r := range ranges {
		length += r.Len()
	}

	return &Alphabet{ranges: ranges, length: length}
}

// Len returns the number of characters in the alphabet.
func (a *Alphabet) Len() int { return a.length }

// Ranges returns a copy of the alphabet's ranges.
func (a *Alphabet) Ranges() []Range {
	return append([]Range(nil), a.ranges...)
}

// CharAt returns the character at index i.
func (a *Alphabet) CharAt(i int) (rune, error) {
	if err := checkIndex(i, a.length); err != nil {
		return 0, err
	}

	for _, r := range a.ranges {
		if i < r.Len() {
			return rune(r.start + i), nil
		}

		i -= r.Len()
	}

	// checkIndex guarantees some range holds i.
	panic("alphabet: index resolved outside every range")
}

// Contains reports whether cp is one of the alphabet's characters.
func (a *Alphabet) Contains(cp rune) bool {
	for _, r := range a.ranges {
		if r.Contains(cp) {
			return true
		}
	}

	return false
}

// SubSequence returns the characters in [start, end).
// An empty window yields an empty Text, the full window yields a itself, and any other
// window yields a new Alphabet built from the clipped ranges.
func (a *Alphabet) SubSequence(start, end int) (Sequence, error) {
	if err := checkWindow(start, end, a.length); err != nil {
		return nil, err
	}

	if start == end {
		return Text(nil), nil
	}

	if start == 0 && end == a.length {
		return a, nil
	}

	var clipped []Range

	for _, r := range a.ranges {
		if end <= 0 {
			break
		}

		l := r.Len()
		if start < l {
			if start == 0 && end >= l {
				clipped = append(clipped, r)
			} else {
				clipped = append(clipped, Range{start: r.start + start, end: r.start + min(end, l)})
			}
		}

		start = max(start-l, 0)
		end -= l
	}

	return newAlphabet(clipped), nil
}

// String materializes every character of the alphabet in index order.
func (a *Alphabet) String() string {
	var sb strings.Builder

	sb.Grow(a.length)

	for _, r := range a.ranges {
		for cp := r.start; cp < r.end; cp++ {
			sb.WriteRune(rune(cp))
		}
	}

	return sb.String()
}
