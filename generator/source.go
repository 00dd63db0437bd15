package generator

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	randv2 "math/rand/v2"
	"sync"
)

// Source provides uniform integers in [0, n). IntN panics if n <= 0.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(n int) int

// IntN calls f(n).
func (f SourceFunc) IntN(n int) int {
	return f(n)
}

// NewSeededSource returns a deterministic source. The same seed always yields the same
// sequence. It is not safe for concurrent use and not suitable for secrets.
func NewSeededSource(seed uint64) Source {
	return randv2.New(randv2.NewPCG(seed, seed)) //nolint:gosec
}

const (
	// bufLen is the number of random bytes fetched from the reader at once.
	bufLen = 2048

	// wordLen is the number of bytes consumed per 64-bit draw.
	wordLen = 8
)

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct {
	mu     sync.Mutex
	reader io.Reader
	buf    []byte
	pos    int
}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return newCryptoSource(rand.Reader)
}

func newCryptoSource(r io.Reader) *CryptoSource {
	return &CryptoSource{
		reader: r,
		buf:    make([]byte, bufLen),
		pos:    bufLen,
	}
}

// IntN returns a uniform integer in [0, n).
func (s *CryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("generator: invalid argument to IntN")
	}

	if n == 1 {
		return 0
	}

	bound := uint64(n)
	// 2^64 mod bound; words below it would bias the modulo.
	threshold := -bound % bound

	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		v := s.next()
		if v < threshold {
			continue
		}

		return int(v % bound) //nolint:gosec
	}
}

// Uint64 returns 64 uniformly random bits.
func (s *CryptoSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.next()
}

// next must be called with mu held.
func (s *CryptoSource) next() uint64 {
	if s.pos+wordLen > len(s.buf) {
		if _, err := io.ReadFull(s.reader, s.buf); err != nil {
			panic("generator: error reading random bytes: " + err.Error())
		}

		s.pos = 0
	}

	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += wordLen

	return v
}
