package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmpty(t *testing.T) {
	_, err := NewBuilder().Build()
	require.ErrorIs(t, err, ErrEmptyAlphabet)

	_, err = Build(Categories{})
	require.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestBuilderCanonicalOrder(t *testing.T) {
	testCases := []struct {
		name     string
		builder  Builder
		expected string
		length   int
	}{
		{
			name:     "digits only",
			builder:  NewBuilder().WithDigits(),
			expected: "0123456789",
			length:   10,
		},
		{
			name:     "underscore first still last",
			builder:  NewBuilder().WithUnderscore().WithUpper().WithDigits().WithLower(),
			expected: allChars,
			length:   63,
		},
		{
			name:     "upper then lower",
			builder:  NewBuilder().WithUpper().WithLower(),
			expected: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
			length:   52,
		},
		{
			name:     "idempotent toggles",
			builder:  NewBuilder().WithDigits().WithDigits().WithUnderscore().WithUnderscore(),
			expected: "0123456789_",
			length:   11,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := tc.builder.Build()
			require.NoError(t, err)
			assert.Equal(t, tc.length, a.Len())
			assert.Equal(t, tc.expected, a.String())
		})
	}
}

func TestBuilderIsValue(t *testing.T) {
	base := NewBuilder().WithDigits()
	_ = base.WithUpper()

	a, err := base.Build()
	require.NoError(t, err)
	assert.Equal(t, "0123456789", a.String())
}

func TestCategoriesEmpty(t *testing.T) {
	assert.True(t, Categories{}.Empty())
	assert.False(t, Categories{Underscore: true}.Empty())
}
