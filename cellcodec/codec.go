// Package cellcodec converts between a cell's hierarchical Tuple
// (base cell + fifteen septary digits) and its position N in the mixed-radix
// space [122, 7, 7, ..., 7], the Cell Index Codec of spec.md §4.3.
//
// Grounded on h3go's h3index.go SET_INDEX_DIGIT/H3_GET_BASE_CELL bit-packing
// idiom: this codec performs the analogous job in base-26-free arithmetic
// rather than bit fields, because the mixed radix here (122, then fifteen 7s)
// does not align to byte or nibble boundaries the way H3Index's digit fields
// do. 122*7^15 = 579,202,504,213,046 fits comfortably in a uint64, so no
// arbitrary-precision arithmetic is needed despite spec.md §4.4 discussing
// big.Int for the syllable codec's benefit with other alphabet sizes.
package cellcodec

import (
	"github.com/geosyllable/geosyllable/addrerr"
	"github.com/geosyllable/geosyllable/grid"
	"github.com/geosyllable/geosyllable/reorder"
)

const septaryDigits = grid.MaxResolution

// radix[i] = 7^i for i in 0..15, precomputed once.
var radix [septaryDigits + 1]uint64

func init() {
	radix[0] = 1
	for i := 1; i <= septaryDigits; i++ {
		radix[i] = radix[i-1] * 7
	}
}

// TotalCombinations is the size of the address space: 122 * 7^15.
const TotalCombinations = uint64(grid.NumBaseCells) * 4747561509943 // 7^15

// Codec converts Tuples to and from their position N, applying the
// Base-Cell Reordering permutation to the base cell component so that
// adjacent base cells land at adjacent N ranges.
type Codec struct {
	perm *reorder.Permutation
}

// New builds a Codec using perm to remap base-cell indices before arithmetic
// encoding. perm must have Len() == grid.NumBaseCells.
func New(perm *reorder.Permutation) (*Codec, error) {
	if perm.Len() != grid.NumBaseCells {
		return nil, addrerr.Newf(addrerr.PermutationUnavailable, "permutation covers %d cells, want %d", perm.Len(), grid.NumBaseCells)
	}
	return &Codec{perm: perm}, nil
}

// Encode maps a hierarchical Tuple to its position N in 0..TotalCombinations-1.
func (c *Codec) Encode(t grid.Tuple) (uint64, error) {
	if t.Base < 0 || t.Base >= grid.NumBaseCells {
		return 0, addrerr.Newf(addrerr.AddressOutOfRange, "base cell %d out of range", t.Base)
	}
	for level, d := range t.Digits {
		if !grid.Direction(d).Valid() {
			return 0, addrerr.Newf(addrerr.AddressOutOfRange, "digit at level %d out of range: %d", level+1, d)
		}
	}

	reordered := c.perm.Forward(t.Base)
	n := uint64(reordered) * radix[septaryDigits]
	for level := 1; level <= septaryDigits; level++ {
		n += uint64(t.Digits[level-1]) * radix[septaryDigits-level]
	}
	return n, nil
}

// Decode recovers the hierarchical Tuple for position N.
func (c *Codec) Decode(n uint64) (grid.Tuple, error) {
	if n >= TotalCombinations {
		return grid.Tuple{}, addrerr.Newf(addrerr.AddressOutOfRange, "position %d out of range [0, %d)", n, TotalCombinations)
	}

	reordered := int(n / radix[septaryDigits])
	remainder := n % radix[septaryDigits]

	var t grid.Tuple
	t.Base = c.perm.Inverse(reordered)
	for level := 1; level <= septaryDigits; level++ {
		place := radix[septaryDigits-level]
		t.Digits[level-1] = int(remainder / place)
		remainder %= place
	}
	return t, nil
}
