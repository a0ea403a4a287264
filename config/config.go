package config

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/geosyllable/geosyllable/addrerr"
)

// targetSpace is 122 * 7^15, the H3 target space of spec.md §4.5/§6.
const targetSpace = 579202504213046

// maxAddressLength is spec.md §4.5 step 3's feasibility ceiling.
const maxAddressLength = 19

// Configuration is the immutable record described by spec.md §4.3/§6: a
// sorted consonant/vowel partition, minimal address length, and canonical
// identifier.
type Configuration struct {
	Alphabet        string
	Consonants      []rune
	Vowels          []rune
	AddressLength   int
	Base26ID        string
	SelectedLetters []rune
	BinaryArray     []int
}

// A returns the number of distinct syllables, |consonants|*|vowels|.
func (c Configuration) A() int { return len(c.Consonants) * len(c.Vowels) }

// TotalCombinations returns A^L.
func (c Configuration) TotalCombinations() *big.Int {
	a := big.NewInt(int64(c.A()))
	l := big.NewInt(int64(c.AddressLength))
	return new(big.Int).Exp(a, l, nil)
}

// Name is "<alphabet>-<identifier>" (spec.md §4.5 step 4).
func (c Configuration) Name() string { return c.Alphabet + "-" + c.Base26ID }

// Generate derives a Configuration from an alphabet name and a selection of
// its letters, following spec.md §4.5 exactly: partition, minimal L,
// base-26 identifier.
func Generate(alphabetName string, selected []rune) (Configuration, error) {
	alphabet, ok := Lookup(alphabetName)
	if !ok {
		return Configuration{}, addrerr.Newf(addrerr.InfeasibleConfiguration, "unknown alphabet %q", alphabetName)
	}

	consonants, vowels := alphabet.Partition(selected)
	if len(consonants) == 0 {
		return Configuration{}, addrerr.New(addrerr.InfeasibleConfiguration, "selection has no consonants")
	}
	if len(vowels) == 0 {
		return Configuration{}, addrerr.New(addrerr.InfeasibleConfiguration, "selection has no vowels")
	}

	a := len(consonants) * len(vowels)
	length, err := minimalAddressLength(a)
	if err != nil {
		return Configuration{}, err
	}

	selectedSorted := append([]rune(nil), consonants...)
	selectedSorted = append(selectedSorted, vowels...)
	binaryArray := alphabet.BinaryArray(selectedSorted)
	id := base26Identifier(binaryArray)

	return Configuration{
		Alphabet:        alphabetName,
		Consonants:      consonants,
		Vowels:          vowels,
		AddressLength:   length,
		Base26ID:        id,
		SelectedLetters: sortedUnion(consonants, vowels),
		BinaryArray:     binaryArray,
	}, nil
}

func sortedUnion(consonants, vowels []rune) []rune {
	all := append([]rune(nil), consonants...)
	all = append(all, vowels...)
	// consonants and vowels are each already sorted and disjoint by
	// construction (Alphabet.Partition), but their concatenation has to be
	// sorted again; an insertion sort does that.
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j-1] > all[j]; j-- {
			all[j-1], all[j] = all[j], all[j-1]
		}
	}
	return all
}

// minimalAddressLength finds the minimal L >= 1 with a^L >= targetSpace,
// per spec.md §4.5 step 3's "simple A^L" convention (see DESIGN.md for the
// rejected adjacent-duplicate-exclusion recurrence).
func minimalAddressLength(a int) (int, error) {
	if a < 2 {
		return 0, addrerr.Newf(addrerr.InfeasibleConfiguration, "alphabet size %d too small (need >= 2)", a)
	}
	capacity := big.NewInt(1)
	base := big.NewInt(int64(a))
	target := big.NewInt(targetSpace)
	for l := 1; l <= maxAddressLength; l++ {
		capacity.Mul(capacity, base)
		if capacity.Cmp(target) >= 0 {
			return l, nil
		}
	}
	return 0, addrerr.Newf(addrerr.InfeasibleConfiguration, "no address length <= %d covers the target space for alphabet size %d", maxAddressLength, a)
}

// base26Identifier treats binaryArray as a little-endian bit vector and
// renders it in base 26 using lowercase letters a..z (spec.md §4.5 step 4).
func base26Identifier(binaryArray []int) string {
	value := new(big.Int)
	bit := new(big.Int)
	for i, b := range binaryArray {
		if b != 0 {
			bit.SetInt64(1)
			bit.Lsh(bit, uint(i))
			value.Or(value, bit)
		}
	}

	if value.Sign() == 0 {
		return "a"
	}

	const base = 26
	digitsBase := big.NewInt(base)
	remainder := new(big.Int)
	var digits []byte
	for value.Sign() > 0 {
		value.DivMod(value, digitsBase, remainder)
		digits = append(digits, byte('a')+byte(remainder.Int64()))
	}
	// digits were produced least-significant-first; reverse for a
	// conventional most-significant-first rendering.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Record is the persisted JSON form of a Configuration (spec.md §6).
type Record struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Consonants     []string       `json:"consonants"`
	Vowels         []string       `json:"vowels"`
	AddressLength  int            `json:"address_length"`
	H3Resolution   int            `json:"h3_resolution"`
	Metadata       RecordMetadata `json:"metadata"`
}

// RecordMetadata is the nested "metadata" object of spec.md §6's
// configuration record.
type RecordMetadata struct {
	Alphabet           string  `json:"alphabet"`
	Base26Identifier   string  `json:"base26_identifier"`
	BinaryArray        []int   `json:"binary_array"`
	SelectedLetters    []string `json:"selected_letters"`
	TotalSyllables     int     `json:"total_syllables"`
	TotalCombinations  string  `json:"total_combinations"`
	H3TargetSpace      int64   `json:"h3_target_space"`
	CoverageRatio      float64 `json:"coverage_ratio"`
}

func runesToStrings(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// Record renders c in its persisted JSON form.
func (c Configuration) Record(description string) Record {
	total := c.TotalCombinations()
	totalF := new(big.Float).SetInt(total)
	ratio, _ := new(big.Float).Quo(totalF, big.NewFloat(targetSpace)).Float64()

	return Record{
		Name:          c.Name(),
		Description:   description,
		Consonants:    runesToStrings(c.Consonants),
		Vowels:        runesToStrings(c.Vowels),
		AddressLength: c.AddressLength,
		H3Resolution:  15,
		Metadata: RecordMetadata{
			Alphabet:          c.Alphabet,
			Base26Identifier:  c.Base26ID,
			BinaryArray:       c.BinaryArray,
			SelectedLetters:   runesToStrings(c.SelectedLetters),
			TotalSyllables:    c.A(),
			TotalCombinations: total.String(),
			H3TargetSpace:     targetSpace,
			CoverageRatio:     ratio,
		},
	}
}

// FromRecord rebuilds and validates a Configuration from its persisted form,
// failing fast on internal inconsistency per spec.md §9's "Dynamic
// configuration selection" design note: mismatched metadata, non-sorted
// letter lists, A^L below target, or L not minimal.
func FromRecord(r Record) (Configuration, error) {
	consonants := stringsToRunes(r.Consonants)
	vowels := stringsToRunes(r.Vowels)

	if !isSorted(consonants) {
		return Configuration{}, addrerr.New(addrerr.InfeasibleConfiguration, "consonants are not sorted")
	}
	if !isSorted(vowels) {
		return Configuration{}, addrerr.New(addrerr.InfeasibleConfiguration, "vowels are not sorted")
	}

	c := Configuration{
		Alphabet:        r.Metadata.Alphabet,
		Consonants:      consonants,
		Vowels:          vowels,
		AddressLength:   r.AddressLength,
		Base26ID:        r.Metadata.Base26Identifier,
		SelectedLetters: stringsToRunes(r.Metadata.SelectedLetters),
		BinaryArray:     r.Metadata.BinaryArray,
	}

	if c.A() != r.Metadata.TotalSyllables {
		return Configuration{}, addrerr.Newf(addrerr.InfeasibleConfiguration, "total_syllables %d disagrees with computed A=%d", r.Metadata.TotalSyllables, c.A())
	}
	if c.Name() != r.Name {
		return Configuration{}, addrerr.Newf(addrerr.InfeasibleConfiguration, "name %q disagrees with computed %q", r.Name, c.Name())
	}

	minimal, err := minimalAddressLength(c.A())
	if err != nil {
		return Configuration{}, err
	}
	if c.AddressLength != minimal {
		return Configuration{}, addrerr.Newf(addrerr.InfeasibleConfiguration, "address_length %d is not minimal (want %d)", c.AddressLength, minimal)
	}

	total := c.TotalCombinations()
	if total.String() != r.Metadata.TotalCombinations {
		return Configuration{}, addrerr.Newf(addrerr.InfeasibleConfiguration, "total_combinations %q disagrees with computed %q", r.Metadata.TotalCombinations, total.String())
	}
	if total.Cmp(big.NewInt(targetSpace)) < 0 {
		return Configuration{}, addrerr.Newf(addrerr.InfeasibleConfiguration, "total_combinations %s below target space %d", total.String(), int64(targetSpace))
	}

	return c, nil
}

func stringsToRunes(ss []string) []rune {
	out := make([]rune, 0, len(ss))
	for _, s := range ss {
		if s == "" {
			continue
		}
		out = append(out, []rune(s)[0])
	}
	return out
}

func isSorted(rs []rune) bool {
	for i := 1; i < len(rs); i++ {
		if rs[i-1] >= rs[i] {
			return false
		}
	}
	return true
}

// Save writes r to path as indented JSON.
func Save(path string, r Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal configuration record: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads and validates a Configuration record from path.
func Load(path string) (Configuration, Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, Record{}, fmt.Errorf("read configuration record: %w", err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Configuration{}, Record{}, fmt.Errorf("unmarshal configuration record: %w", err)
	}
	c, err := FromRecord(r)
	return c, r, err
}
