package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	text := NewText("héllo")
	assert.Equal(t, 5, text.Len())
	assert.Equal(t, "héllo", text.String())

	c, err := text.CharAt(1)
	require.NoError(t, err)
	assert.Equal(t, 'é', c)

	_, err = text.CharAt(5)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	sub, err := text.SubSequence(1, 4)
	require.NoError(t, err)
	assert.Equal(t, "éll", sub.String())

	_, err = text.SubSequence(4, 1)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = text.SubSequence(0, 6)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestSequenceImplementations(t *testing.T) {
	var seqs []Sequence

	seqs = append(seqs, WithAllChars, NewText(allChars))

	for _, s := range seqs {
		assert.Equal(t, 63, s.Len())
		assert.Equal(t, allChars, s.String())
	}
}
