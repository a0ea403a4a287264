package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/geosyllable/geosyllable/addrerr"
)

func TestEncodeRejectsOutOfRangeCoordinates(t *testing.T) {
	a := NewAdapter()

	if _, err := a.Encode(91, 0); !errors.Is(err, addrerr.CoordinateOutOfRange) {
		t.Fatalf("expected CoordinateOutOfRange for lat=91, got %v", err)
	}
	if _, err := a.Encode(0, 181); !errors.Is(err, addrerr.CoordinateOutOfRange) {
		t.Fatalf("expected CoordinateOutOfRange for lon=181, got %v", err)
	}
}

func TestDecodeThenEncodeIsStable(t *testing.T) {
	a := NewAdapter()

	id, err := a.Encode(48.8566, 2.3522)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	lat, lon := a.Decode(id)
	id2, err := a.Encode(lat, lon)
	if err != nil {
		t.Fatalf("re-Encode: %v", err)
	}

	if id != id2 {
		t.Fatalf("decode->encode not stable: %v != %v", id, id2)
	}
}

func TestHierarchyComposeRoundTrips(t *testing.T) {
	a := NewAdapter()

	tuple := Tuple{Base: 37, Digits: [MaxResolution]int{1, 2, 3, 4, 5, 6, 0, 1, 2, 3, 4, 5, 6, 0, 1}}
	id := a.Compose(tuple)
	got := a.Hierarchy(id)

	if got != tuple {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, tuple)
	}
}

func TestAllBaseCellsCountAndNeighborSymmetry(t *testing.T) {
	a := NewAdapter()
	cells := a.AllBaseCells()
	if len(cells) != NumBaseCells {
		t.Fatalf("expected %d base cells, got %d", NumBaseCells, len(cells))
	}

	for _, c := range cells {
		for _, n := range a.BaseCellNeighbors(c.Index) {
			found := false
			for _, back := range a.BaseCellNeighbors(n) {
				if back == c.Index {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("adjacency not symmetric: %d -> %d but not back", c.Index, n)
			}
		}
	}
}

func TestEncodeDecodeRoundTripWithinCellRadius(t *testing.T) {
	a := NewAdapter()
	toleranceKm := EdgeLengthKm(MaxResolution) * 5 // generous multiple of the finest edge length

	coords := [][2]float64{
		{48.8566, 2.3522},
		{0, 0},
		{-33.8688, 151.2093},
		{89.9, 179.9},
	}

	for _, c := range coords {
		id, err := a.Encode(c[0], c[1])
		if err != nil {
			t.Fatalf("Encode(%v): %v", c, err)
		}
		lat, lon := a.Decode(id)
		dist := pointDistKm(Coord{LatDeg: c[0], LonDeg: c[1]}, Coord{LatDeg: lat, LonDeg: lon})
		if dist > toleranceKm {
			t.Fatalf("round trip distance %.6f km exceeds tolerance %.6f km for %v", dist, toleranceKm, c)
		}
	}
}

func TestHexUnitVecIsUnitLength(t *testing.T) {
	for d := 1; d < 7; d++ {
		x, y := hexUnitVec(d)
		length := math.Hypot(x, y)
		if math.Abs(length-1) > 1e-9 {
			t.Fatalf("digit %d: expected unit length, got %v", d, length)
		}
	}
}
