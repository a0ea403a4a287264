// Package address implements the System Facade of spec.md §4.6: composes
// the grid adapter, base-cell permutation, cell index codec, and syllable
// codec into coordinate<->address conversion and validation.
//
// Grounded on playbymail-ottomap's pattern of a single top-level type
// wiring together its store/domain packages behind a small public API
// (see internal/config.Config's role in that repo's main.go), adapted here
// to geosyllable's four composed components. The optional result cache is
// grounded on other_examples' golang-lru usage pattern (hashicorp/golang-lru/v2).
package address

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/geosyllable/geosyllable/cellcodec"
	"github.com/geosyllable/geosyllable/config"
	"github.com/geosyllable/geosyllable/estimator"
	"github.com/geosyllable/geosyllable/grid"
	"github.com/geosyllable/geosyllable/reorder"
	"github.com/geosyllable/geosyllable/syllable"
)

// System is the constructed, immutable facade of spec.md §4.6. Per spec.md
// §5 it is safe to share across goroutines and re-entrant: configuration
// and permutation are read-only after construction, and every operation is
// a pure function of its input plus that fixed state.
type System struct {
	cfg       config.Configuration
	grid      *grid.Adapter
	perm      *reorder.Permutation
	cells     *cellcodec.Codec
	syllables *syllable.Codec
	estimator *estimator.Estimator

	encodeCache *lru.Cache[coordKey, string]
	decodeCache *lru.Cache[string, coordResult]
}

type coordKey struct {
	lat, lon float64
}

type coordResult struct {
	lat, lon float64
}

// Option configures a System at construction.
type Option func(*System)

// WithCacheSize enables an LRU result cache of the given size for both
// CoordinateToAddress and AddressToCoordinate. Construction-time-only,
// matching spec.md §5: "An implementation MAY cache the base-cell
// permutation process-wide" generalized here to caching full results,
// since both directions are pure functions of their configuration-scoped
// input.
func WithCacheSize(size int) Option {
	return func(s *System) {
		if size <= 0 {
			return
		}
		if c, err := lru.New[coordKey, string](size); err == nil {
			s.encodeCache = c
		}
		if c, err := lru.New[string, coordResult](size); err == nil {
			s.decodeCache = c
		}
	}
}

// New constructs a System from a validated configuration and permutation.
// The caller loads those records; this package performs no I/O, neither
// here nor on the hot path (spec.md §5).
func New(cfg config.Configuration, perm *reorder.Permutation, opts ...Option) (*System, error) {
	cells, err := cellcodec.New(perm)
	if err != nil {
		return nil, err
	}
	syllables, err := syllable.New(cfg.Consonants, cfg.Vowels, cfg.AddressLength)
	if err != nil {
		return nil, err
	}
	gridAdapter := grid.NewAdapter()
	est, err := estimator.New(cfg, cells, gridAdapter)
	if err != nil {
		return nil, err
	}

	s := &System{
		cfg:       cfg,
		grid:      gridAdapter,
		perm:      perm,
		cells:     cells,
		syllables: syllables,
		estimator: est,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CoordinateToAddress encodes a coordinate into its full syllable address
// (spec.md §4.6).
func (s *System) CoordinateToAddress(lat, lon float64) (string, error) {
	key := coordKey{lat: lat, lon: lon}
	if s.encodeCache != nil {
		if addr, ok := s.encodeCache.Get(key); ok {
			return addr, nil
		}
	}

	id, err := s.grid.Encode(lat, lon)
	if err != nil {
		return "", err
	}
	tuple := s.grid.Hierarchy(id)
	n, err := s.cells.Encode(tuple)
	if err != nil {
		return "", err
	}
	addr, err := s.syllables.Encode(n)
	if err != nil {
		return "", err
	}

	if s.encodeCache != nil {
		s.encodeCache.Add(key, addr)
	}
	return addr, nil
}

// AddressToCoordinate decodes a full syllable address back to its cell's
// canonical coordinate (spec.md §4.6).
func (s *System) AddressToCoordinate(address string) (lat, lon float64, err error) {
	if s.decodeCache != nil {
		if r, ok := s.decodeCache.Get(address); ok {
			return r.lat, r.lon, nil
		}
	}

	n, err := s.syllables.Decode(address)
	if err != nil {
		return 0, 0, err
	}
	tuple, err := s.cells.Decode(n)
	if err != nil {
		return 0, 0, err
	}
	id := s.grid.Compose(tuple)
	lat, lon = s.grid.Decode(id)

	if s.decodeCache != nil {
		s.decodeCache.Add(address, coordResult{lat: lat, lon: lon})
	}
	return lat, lon, nil
}

// IsValid reports whether address decodes to an in-range coordinate
// (spec.md §4.6).
func (s *System) IsValid(address string) bool {
	_, _, err := s.AddressToCoordinate(address)
	return err == nil
}

// EstimateFromPrefix resolves a syllable prefix shorter than a full address
// (spec.md §4.7), delegating to the estimator.
func (s *System) EstimateFromPrefix(prefix string) (estimator.Estimate, error) {
	return s.estimator.Estimate(prefix)
}

// Configuration returns the configuration this system was built from.
func (s *System) Configuration() config.Configuration { return s.cfg }
