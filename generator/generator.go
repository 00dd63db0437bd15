package generator

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/mormao/randstr/alphabet"
)

// Generator samples strings from an alphabet using a random source.
// It holds no state of its own; concurrent use is safe when the source is.
type Generator struct {
	seq alphabet.Sequence
	src Source
}

// New returns a Generator drawing characters from seq with randomness from src.
func New(seq alphabet.Sequence, src Source) (*Generator, error) {
	if seq == nil {
		return nil, ErrNilSequence
	}

	if src == nil {
		return nil, ErrNilSource
	}

	if seq.Len() == 0 {
		return nil, errors.Wrap(alphabet.ErrEmptyAlphabet, "generator needs a non-empty alphabet")
	}

	return &Generator{seq: seq, src: src}, nil
}

// Alphabet returns the sequence the generator samples from.
func (g *Generator) Alphabet() alphabet.Sequence {
	return g.seq
}

// NewRandomString returns size characters, each drawn independently and uniformly
// from the alphabet. A size of zero returns "" without touching the source.
func (g *Generator) NewRandomString(size int) (string, error) {
	if size < 0 {
		return "", errors.Wrapf(ErrInvalidSize, "size %d", size)
	}

	if size == 0 {
		return "", nil
	}

	var sb strings.Builder

	sb.Grow(size)

	n := g.seq.Len()

	for range size {
		c, err := g.seq.CharAt(g.src.IntN(n))
		if err != nil {
			return "", errors.Wrap(err, "random source returned an index outside the alphabet")
		}

		sb.WriteRune(c)
	}

	return sb.String(), nil
}
