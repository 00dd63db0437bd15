package alphabet

import (
	"github.com/pkg/errors"
)

// Standard category ranges.
var (
	DigitsRange     = MustRange('0', '9')
	UppercaseRange  = MustRange('A', 'Z')
	LowercaseRange  = MustRange('a', 'z')
	UnderscoreRange = MustRange('_', '_')
)

// WithAllChars holds lowercase letters, digits, uppercase letters and underscore, in that order.
var WithAllChars = mustBuild(Categories{Digits: true, Upper: true, Lower: true, Underscore: true}) //nolint:gochecknoglobals

// Categories selects the standard ranges an alphabet is built from.
type Categories struct {
	Digits     bool `toml:"digits"     json:"digits"`
	Upper      bool `toml:"upper"      json:"upper"`
	Lower      bool `toml:"lower"      json:"lower"`
	Underscore bool `toml:"underscore" json:"underscore"`
}

// Empty reports whether no category is selected.
func (c Categories) Empty() bool {
	return !c.Digits && !c.Upper && !c.Lower && !c.Underscore
}

// Build returns the alphabet of the selected categories.
// Ranges always come in the order lowercase, digits, uppercase, underscore.
func Build(c Categories) (*Alphabet, error) {
	if c.Empty() {
		return nil, errors.Wrap(ErrEmptyAlphabet, "select at least one of digits, upper, lower or underscore")
	}

	ranges := make([]Range, 0, 4) //nolint:mnd

	if c.Lower {
		ranges = append(ranges, LowercaseRange)
	}

	if c.Digits {
		ranges = append(ranges, DigitsRange)
	}

	if c.Upper {
		ranges = append(ranges, UppercaseRange)
	}

	if c.Underscore {
		ranges = append(ranges, UnderscoreRange)
	}

	return newAlphabet(ranges), nil
}

func mustBuild(c Categories) *Alphabet {
	a, err := Build(c)
	if err != nil {
		panic(err)
	}

	return a
}

// Builder collects categories through chained calls. The zero value selects nothing.
type Builder struct {
	categories Categories
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder {
	return Builder{}
}

// WithDigits adds 0-9.
func (b Builder) WithDigits() Builder {
	b.categories.Digits = true
	return b
}

// WithUpper adds A-Z.
func (b Builder) WithUpper() Builder {
	b.categories.Upper = true
	return b
}

// WithLower adds a-z.
func (b Builder) WithLower() Builder {
	b.categories.Lower = true
	return b
}

// WithUnderscore adds '_'.
func (b Builder) WithUnderscore() Builder {
	b.categories.Underscore = true
	return b
}

// Build returns the alphabet of the collected categories.
func (b Builder) Build() (*Alphabet, error) {
	return Build(b.categories)
}
