// Package config implements the Configuration Model of spec.md §4.5: given
// an alphabet and a user-selected subset of its letters, derives the
// consonant/vowel partition, the minimal address length L, and the
// canonical base-26 identifier, and persists the result as the record
// format of spec.md §6.
//
// Grounded on original_source/scripts/configs/generate_configs.py's
// ConfigGenerator: same partition/L/identifier derivation, reauthored as a
// validated Go constructor rather than a script with CLI flags (the CLI
// surface lives in cmd/geosyllable).
package config

import "sort"

// Alphabet is a fixed, ordered universe of lowercase letters together with
// its predeclared vowel subset (spec.md §4.5's "alphabet (fixed universe of
// characters with a predeclared vowel subset)").
type Alphabet struct {
	Name    string
	Letters []rune // declared order; binary_array membership is indexed against this
	Vowels  map[rune]bool
}

// registry holds the built-in alphabets. "ascii" matches spec.md §8's
// concrete scenario configuration.
var registry = map[string]Alphabet{
	"ascii": {
		Name:    "ascii",
		Letters: []rune("abcdefghijklmnopqrstuvwxyz"),
		Vowels:  vowelSet("aeiou"),
	},
}

func vowelSet(letters string) map[rune]bool {
	set := make(map[rune]bool, len(letters))
	for _, r := range letters {
		set[r] = true
	}
	return set
}

// Lookup returns the named built-in alphabet.
func Lookup(name string) (Alphabet, bool) {
	a, ok := registry[name]
	return a, ok
}

// Partition splits selected (a subset of a.Letters) into sorted consonants
// and vowels according to a's vowel subset.
func (a Alphabet) Partition(selected []rune) (consonants, vowels []rune) {
	for _, r := range selected {
		if a.Vowels[r] {
			vowels = append(vowels, r)
		} else {
			consonants = append(consonants, r)
		}
	}
	sort.Slice(consonants, func(i, j int) bool { return consonants[i] < consonants[j] })
	sort.Slice(vowels, func(i, j int) bool { return vowels[i] < vowels[j] })
	return consonants, vowels
}

// BinaryArray renders selected's membership over a.Letters, in a's declared
// order, as a 0/1 vector (spec.md §6's "binary_array").
func (a Alphabet) BinaryArray(selected []rune) []int {
	set := make(map[rune]bool, len(selected))
	for _, r := range selected {
		set[r] = true
	}
	out := make([]int, len(a.Letters))
	for i, r := range a.Letters {
		if set[r] {
			out[i] = 1
		}
	}
	return out
}
