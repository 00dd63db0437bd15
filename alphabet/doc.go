// Package alphabet composes character alphabets out of contiguous code-point ranges.
// An Alphabet behaves like an indexable, sliceable string without holding its characters
// in memory; String materializes them only when the full text is needed.
package alphabet
