// Package generator builds random strings by sampling characters uniformly from an
// alphabet.Sequence. The randomness comes from a pluggable Source; the package-level
// helpers use a cryptographically secure one.
package generator
