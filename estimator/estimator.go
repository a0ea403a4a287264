// Package estimator implements the Partial Estimator of spec.md §4.7: given
// a syllable prefix shorter than a full address, compute a bounding region,
// center coordinate, confidence, and area without enumerating the billions
// of cells the prefix could resolve to.
//
// Grounded on original_source/packages/python/test_partial_estimation.py's
// estimate_location_from_partial behavior and on spec.md §9's "Partial
// estimator's cell enumeration" design note: compute directly from the
// lowest-common-ancestor cell implied by [N_lo, N_hi] rather than walking
// the interval. Distance/area math reuses grid's haversine and destination
// helpers, themselves ported from h3go's geocoord.go.
package estimator

import (
	"math"
	"math/big"

	"github.com/geosyllable/geosyllable/addrerr"
	"github.com/geosyllable/geosyllable/cellcodec"
	"github.com/geosyllable/geosyllable/config"
	"github.com/geosyllable/geosyllable/grid"
	"github.com/geosyllable/geosyllable/syllable"
)

// Estimate is the result of resolving a prefix (spec.md §4.7's output).
type Estimate struct {
	CenterLat         float64
	CenterLon         float64
	North, South      float64
	East, West        float64
	EstimatedAreaKm2  float64
	Confidence        float64
	CompletenessLevel int
}

// Estimator resolves address prefixes against one configuration, cell
// codec, and grid adapter.
type Estimator struct {
	cfg    config.Configuration
	codec  *cellcodec.Codec
	grid   *grid.Adapter
	prefix *syllable.Codec
}

// New builds an Estimator for cfg. Prefixes are parsed syllable by syllable
// against cfg's consonant/vowel partition (see parsePrefixDigits), since a
// prefix is shorter than a full address; codec maps the resulting positions
// to cells and adapter places those cells.
func New(cfg config.Configuration, codec *cellcodec.Codec, adapter *grid.Adapter) (*Estimator, error) {
	prefixCodec, err := syllable.New(cfg.Consonants, cfg.Vowels, cfg.AddressLength)
	if err != nil {
		return nil, err
	}
	return &Estimator{cfg: cfg, codec: codec, grid: adapter, prefix: prefixCodec}, nil
}

// Estimate resolves a syllable prefix of length 1..L-1 (spec.md §4.7).
func (e *Estimator) Estimate(prefix string) (Estimate, error) {
	letters := []rune(prefix)
	if len(letters) == 0 {
		return Estimate{}, addrerr.New(addrerr.PrefixError, "empty prefix")
	}
	if len(letters)%2 != 0 {
		return Estimate{}, addrerr.Newf(addrerr.PrefixError, "prefix %q has odd length", prefix)
	}

	p := len(letters) / 2
	l := e.cfg.AddressLength
	if p >= l {
		return Estimate{}, addrerr.Newf(addrerr.PrefixError, "prefix length %d >= address length %d; address is complete, decode it directly", p, l)
	}

	digits, err := e.parsePrefixDigits(prefix)
	if err != nil {
		return Estimate{}, err
	}

	a := int64(e.cfg.A())
	nLo := big.NewInt(0)
	base := big.NewInt(a)
	for _, s := range digits {
		nLo.Mul(nLo, base)
		nLo.Add(nLo, big.NewInt(int64(s)))
	}
	remainingSyllables := l - p
	span := new(big.Int).Exp(base, big.NewInt(int64(remainingSyllables)), nil)
	nLo.Mul(nLo, span)

	nHi := new(big.Int).Add(nLo, span)
	nHi.Sub(nHi, big.NewInt(1))

	total := big.NewInt(int64(cellcodec.TotalCombinations))
	if nHi.Cmp(total) >= 0 {
		nHi.Sub(total, big.NewInt(1))
	}

	loTuple, err := e.codec.Decode(nLo.Uint64())
	if err != nil {
		return Estimate{}, err
	}
	hiTuple, err := e.codec.Decode(nHi.Uint64())
	if err != nil {
		return Estimate{}, err
	}

	depth := commonAncestorDepth(loTuple, hiTuple)
	return e.estimateFromAncestor(loTuple, depth, p), nil
}

// parsePrefixDigits decodes each two-letter syllable of prefix into its
// syllable index 0..A-1, without requiring the prefix to be a full address.
func (e *Estimator) parsePrefixDigits(prefix string) ([]int, error) {
	letters := []rune(prefix)
	consonantIndex := make(map[rune]int, len(e.cfg.Consonants))
	for i, r := range e.cfg.Consonants {
		consonantIndex[r] = i
	}
	vowelIndex := make(map[rune]int, len(e.cfg.Vowels))
	for i, r := range e.cfg.Vowels {
		vowelIndex[r] = i
	}

	digits := make([]int, 0, len(letters)/2)
	for i := 0; i < len(letters); i += 2 {
		consonant, vowel := letters[i], letters[i+1]
		ci, ok := consonantIndex[consonant]
		if !ok {
			return nil, addrerr.Newf(addrerr.MalformedAddress, "%q is not a known consonant in syllable %d", consonant, i/2+1)
		}
		vi, ok := vowelIndex[vowel]
		if !ok {
			return nil, addrerr.Newf(addrerr.MalformedAddress, "%q is not a known vowel in syllable %d", vowel, i/2+1)
		}
		digits = append(digits, ci*len(e.cfg.Vowels)+vi)
	}
	return digits, nil
}

// commonAncestorDepth returns how many hierarchy levels (0 = base cell only,
// 1..15 = that many matching child digits) lo and hi share, or -1 when their
// base cells differ.
func commonAncestorDepth(lo, hi grid.Tuple) int {
	if lo.Base != hi.Base {
		return -1 // differ even at the base cell: ancestor spans multiple base cells
	}
	depth := 0
	for level := 0; level < grid.MaxResolution; level++ {
		if lo.Digits[level] != hi.Digits[level] {
			break
		}
		depth++
	}
	return depth
}

func (e *Estimator) estimateFromAncestor(anchor grid.Tuple, depth, completenessLevel int) Estimate {
	var centerLat, centerLon, radiusKm float64

	if depth < 0 {
		// The prefix's interval spans more than one base cell; fall back to
		// the anchor base cell's own center and radius as a conservative
		// (slightly loose) bound.
		centerLat, centerLon = e.grid.Decode(grid.Compose(grid.Tuple{Base: anchor.Base}))
		radiusKm = grid.EdgeLengthKm(0)
	} else {
		ancestor := anchor
		for level := depth; level < grid.MaxResolution; level++ {
			ancestor.Digits[level] = 0
		}
		centerLat, centerLon = e.grid.Decode(grid.Compose(ancestor))
		radiusKm = grid.EdgeLengthKm(depth)
	}

	deltaLon := kmToDegLon(radiusKm, centerLat)
	bbox := grid.BoundingBox{
		North: clampLat(centerLat + kmToDegLat(radiusKm)),
		South: clampLat(centerLat - kmToDegLat(radiusKm)),
		East:  e.grid.ConstrainLon(centerLon + deltaLon),
		West:  e.grid.ConstrainLon(centerLon - deltaLon),
	}

	latSpanKm := (bbox.North - bbox.South) * 111.32
	lonSpanKm := 2 * deltaLon * 111.32 * math.Cos(centerLat*math.Pi/180)
	area := math.Abs(latSpanKm * lonSpanKm)

	baseCellArea := (grid.EdgeLengthKm(0) * 2) * 111.32 * (grid.EdgeLengthKm(0) * 2) * 111.32
	confidence := 1 - area/baseCellArea
	confidence = clamp(confidence, 1e-6, 1)

	return Estimate{
		CenterLat:         centerLat,
		CenterLon:         centerLon,
		North:             bbox.North,
		South:             bbox.South,
		East:              bbox.East,
		West:              bbox.West,
		EstimatedAreaKm2:  area,
		Confidence:        confidence,
		CompletenessLevel: completenessLevel,
	}
}

func kmToDegLat(km float64) float64 { return km / 111.32 }

func kmToDegLon(km, latDeg float64) float64 {
	cos := math.Cos(latDeg * math.Pi / 180)
	if math.Abs(cos) < 1e-9 {
		cos = 1e-9
	}
	return km / (111.32 * cos)
}

func clampLat(lat float64) float64 { return clamp(lat, -90, 90) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
