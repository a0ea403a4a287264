// Package syllable converts between a cell position N and its pronounceable
// address string: L syllables, each a consonant-vowel pair, per spec.md
// §4.4. The arithmetic is base-A digit extraction where A = len(consonants) *
// len(vowels), the same "address as a base-A number" framing spec.md uses
// throughout.
//
// Grounded on h3index.go's digit-extraction idiom (divide/mod against a
// fixed radix per position) generalized from base-7 to base-A, and on
// original_source/scripts/configs/generate_configs.py's consonant/vowel
// split of a syllable index s into (s / len(vowels), s % len(vowels)).
package syllable

import (
	"math/bits"
	"strings"

	"github.com/geosyllable/geosyllable/addrerr"
)

// Codec encodes and decodes addresses for one alphabet partition.
type Codec struct {
	consonants []rune
	vowels     []rune
	length     int // number of syllables, i.e. address length L
}

// New builds a Codec. consonants and vowels must be non-empty and disjoint;
// length is the number of syllables per address (spec.md §4.4/§4.5's L).
func New(consonants, vowels []rune, length int) (*Codec, error) {
	if len(consonants) == 0 || len(vowels) == 0 {
		return nil, addrerr.New(addrerr.InfeasibleConfiguration, "consonants and vowels must be non-empty")
	}
	if length <= 0 {
		return nil, addrerr.Newf(addrerr.InfeasibleConfiguration, "address length must be positive, got %d", length)
	}

	seen := make(map[rune]bool, len(consonants)+len(vowels))
	for _, c := range consonants {
		if seen[c] {
			return nil, addrerr.Newf(addrerr.InfeasibleConfiguration, "duplicate letter %q in alphabet", c)
		}
		seen[c] = true
	}
	for _, v := range vowels {
		if seen[v] {
			return nil, addrerr.Newf(addrerr.InfeasibleConfiguration, "consonant/vowel overlap on %q", v)
		}
		seen[v] = true
	}

	return &Codec{
		consonants: append([]rune(nil), consonants...),
		vowels:     append([]rune(nil), vowels...),
		length:     length,
	}, nil
}

// AlphabetSize returns A = len(consonants) * len(vowels), the radix of one
// syllable.
func (c *Codec) AlphabetSize() int { return len(c.consonants) * len(c.vowels) }

// Length returns the number of syllables per address.
func (c *Codec) Length() int { return c.length }

// Capacity returns A^L, the number of distinct addresses this codec can
// represent. Capacity is computed with bits.Mul64 to detect overflow rather
// than silently wrapping, since some alphabet/length combinations (e.g. a
// large alphabet at high L) can exceed a uint64.
func (c *Codec) Capacity() (uint64, bool) {
	capacity := uint64(1)
	a := uint64(c.AlphabetSize())
	for i := 0; i < c.length; i++ {
		hi, lo := bits.Mul64(capacity, a)
		if hi != 0 {
			return 0, false
		}
		capacity = lo
	}
	return capacity, true
}

// Encode renders position n as its L-syllable address string.
func (c *Codec) Encode(n uint64) (string, error) {
	capacity, ok := c.Capacity()
	if ok && n >= capacity {
		return "", addrerr.Newf(addrerr.AddressOutOfRange, "position %d exceeds capacity %d", n, capacity)
	}

	a := uint64(c.AlphabetSize())
	digits := make([]uint64, c.length)
	remaining := n
	for i := c.length - 1; i >= 0; i-- {
		digits[i] = remaining % a
		remaining /= a
	}

	var b strings.Builder
	b.Grow(c.length * 2)
	for _, s := range digits {
		consonantIdx := s / uint64(len(c.vowels))
		vowelIdx := s % uint64(len(c.vowels))
		b.WriteRune(c.consonants[consonantIdx])
		b.WriteRune(c.vowels[vowelIdx])
	}
	return b.String(), nil
}

// Decode parses an address string back to its position N.
func (c *Codec) Decode(address string) (uint64, error) {
	letters := []rune(address)
	if len(letters) != c.length*2 {
		return 0, addrerr.Newf(addrerr.MalformedAddress, "address %q has %d letters, want %d", address, len(letters), c.length*2)
	}

	consonantIndex := make(map[rune]uint64, len(c.consonants))
	for i, r := range c.consonants {
		consonantIndex[r] = uint64(i)
	}
	vowelIndex := make(map[rune]uint64, len(c.vowels))
	for i, r := range c.vowels {
		vowelIndex[r] = uint64(i)
	}

	a := uint64(c.AlphabetSize())
	var n uint64
	for i := 0; i < c.length; i++ {
		consonant, vowel := letters[i*2], letters[i*2+1]
		ci, ok := consonantIndex[consonant]
		if !ok {
			return 0, addrerr.Newf(addrerr.MalformedAddress, "%q is not a known consonant in syllable %d", consonant, i+1)
		}
		vi, ok := vowelIndex[vowel]
		if !ok {
			return 0, addrerr.Newf(addrerr.MalformedAddress, "%q is not a known vowel in syllable %d", vowel, i+1)
		}
		s := ci*uint64(len(c.vowels)) + vi
		n = n*a + s
	}
	return n, nil
}
