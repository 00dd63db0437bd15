package generator

import (
	"sync"

	"github.com/mormao/randstr/alphabet"
)

// defaultAlphabet is used when no alphabet is given.
var defaultAlphabet alphabet.Sequence = alphabet.WithAllChars //nolint:gochecknoglobals

var (
	// defaultSource is created on first use and lives for the whole process.
	defaultSource = sync.OnceValue(func() Source { //nolint:gochecknoglobals
		return NewCryptoSource()
	})

	defaultGenerator = sync.OnceValue(func() *Generator { //nolint:gochecknoglobals
		return &Generator{seq: defaultAlphabet, src: defaultSource()}
	})
)

// DefaultSource returns the shared cryptographically secure source.
func DefaultSource() Source {
	return defaultSource()
}

// Default returns the shared generator over alphabet.WithAllChars and DefaultSource.
func Default() *Generator {
	return defaultGenerator()
}

// String returns a random string from the default alphabet and source.
func String(size int) (string, error) {
	return Default().NewRandomString(size)
}

// StringWithSource returns a random string from the default alphabet using src.
func StringWithSource(size int, src Source) (string, error) {
	return StringFromWithSource(size, defaultAlphabet, src)
}

// StringFrom returns a random string from seq using the default source.
func StringFrom(size int, seq alphabet.Sequence) (string, error) {
	return StringFromWithSource(size, seq, DefaultSource())
}

// StringFromWithSource returns a random string from seq using src.
func StringFromWithSource(size int, seq alphabet.Sequence, src Source) (string, error) {
	g, err := New(seq, src)
	if err != nil {
		return "", err
	}

	return g.NewRandomString(size)
}
