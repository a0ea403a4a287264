package grid

import (
	"math"

	"github.com/geosyllable/geosyllable/addrerr"
)

// Adapter is the Grid Adapter of spec.md §4.1: coordinate <-> CellID,
// cell hierarchy, and base-cell neighbors. It is stateless and safe for
// concurrent use — every base-cell center and neighbor set is computed once
// at package init (see basecells.go) and never mutated.
type Adapter struct{}

// NewAdapter returns a Grid Adapter. Construction never fails or performs
// I/O; the base-cell table is a package-level value computed at init.
func NewAdapter() *Adapter { return &Adapter{} }

// Encode maps a coordinate to the CellID of its resolution-15 cell.
func (a *Adapter) Encode(lat, lon float64) (CellID, error) {
	if lat < -90 || lat > 90 {
		return 0, addrerr.Newf(addrerr.CoordinateOutOfRange, "latitude %g outside [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return 0, addrerr.Newf(addrerr.CoordinateOutOfRange, "longitude %g outside [-180, 180]", lon)
	}

	c := Coord{LatDeg: lat, LonDeg: lon}
	base := nearestBaseCell(c)

	az := azimuthRad(baseCells.centers[base], c)
	dist := pointDistKm(baseCells.centers[base], c)
	dx := dist * math.Sin(az)
	dy := dist * math.Cos(az)

	digits := quantize(dx, dy)
	return Compose(Tuple{Base: base, Digits: digits}), nil
}

// Decode returns the canonical center of a CellID's resolution-15 cell.
func (a *Adapter) Decode(id CellID) (lat, lon float64) {
	t := Hierarchy(id)
	dx, dy := offsetOf(t.Digits)
	dist := math.Hypot(dx, dy)
	az := math.Atan2(dx, dy)
	c := destination(baseCells.centers[t.Base], az, dist)
	return c.LatDeg, c.LonDeg
}

// Hierarchy decomposes a CellID into its base cell index and 15 child
// digits.
func (a *Adapter) Hierarchy(id CellID) Tuple { return Hierarchy(id) }

// Compose builds a CellID from a base cell index and 15 child digits.
func (a *Adapter) Compose(t Tuple) CellID { return Compose(t) }

// Neighbors returns, for every base cell adjacent to id's base cell (the
// adjacency computed in basecells.go), the cell with id's fifteen digits
// under that neighboring base cell. For a cell whose digits are all zero
// this is the base-cell adjacency. For any other cell the returned cells
// are not its geometric neighbors at resolution 15. Base-Cell Reordering
// does not call Neighbors; it builds its graph from BaseCellNeighbors.
func (a *Adapter) Neighbors(id CellID) []CellID {
	t := Hierarchy(id)
	return a.neighborsOfTuple(t)
}

func (a *Adapter) neighborsOfTuple(t Tuple) []CellID {
	out := make([]CellID, 0, 6)
	for _, n := range baseCells.neighbors[t.Base] {
		nt := t
		nt.Base = n
		out = append(out, Compose(nt))
	}
	return out
}

// BaseCellNeighbors returns the neighbor base cell indices of base, the
// adjacency relation the Base-Cell Reordering component builds its graph
// from.
func (a *Adapter) BaseCellNeighbors(base int) []int {
	return append([]int(nil), baseCells.neighbors[base]...)
}

// ConstrainLon wraps a longitude in degrees back into [-180, 180].
func (a *Adapter) ConstrainLon(deg float64) float64 { return constrainLon(deg) }

// AllBaseCells returns all 122 base cell indices together with their
// canonical centers.
func (a *Adapter) AllBaseCells() []BaseCell {
	out := make([]BaseCell, NumBaseCells)
	for i := 0; i < NumBaseCells; i++ {
		out[i] = BaseCell{Index: i, Center: baseCells.centers[i]}
	}
	return out
}

// BaseCell is one of the 122 top-level cells: its index and canonical
// center coordinate.
type BaseCell struct {
	Index  int
	Center Coord
}

func nearestBaseCell(c Coord) int {
	best, bestDist := 0, math.Inf(1)
	for i := 0; i < NumBaseCells; i++ {
		d := pointDistKm(baseCells.centers[i], c)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// hexUnitVec returns the planar direction of digit d: the center for digit
// 0, or one of six directions 60 degrees apart for digits 1..6. This
// mirrors the role of h3go's coordijk.go UNIT_VECS table (one fixed
// direction per IJK digit) without requiring the cube/IJK machinery itself,
// since CellID digits here are an abstract mixed-radix coordinate rather
// than a true IJK lattice index.
func hexUnitVec(d int) (x, y float64) {
	if d == 0 {
		return 0, 0
	}
	angle := float64(d-1) * (math.Pi / 3)
	return math.Sin(angle), math.Cos(angle)
}

// offsetOf sums each level's digit direction scaled by that resolution's
// real-world edge length, giving a planar (x, y) displacement in kilometers
// from the base cell center.
func offsetOf(digits [MaxResolution]int) (dx, dy float64) {
	for level := 1; level <= MaxResolution; level++ {
		ux, uy := hexUnitVec(digits[level-1])
		edge := EdgeLengthKm(level)
		dx += ux * edge
		dy += uy * edge
	}
	return dx, dy
}

// quantize greedily decomposes a planar displacement (dx, dy), in
// kilometers from a base cell center, into fifteen digits by repeatedly
// picking, at each resolution from coarsest to finest, the digit whose
// contribution leaves the smallest residual — a standard successive-
// approximation vector quantizer over the same seven directions offsetOf
// sums. Because offsetOf and quantize share the same per-level unit vectors
// and edge lengths, quantizing the exact offset of a digit sequence
// reproduces that sequence (the residual after the correct digit is exactly
// zero, which is always the unique minimum).
func quantize(dx, dy float64) [MaxResolution]int {
	var digits [MaxResolution]int
	rx, ry := dx, dy
	for level := 1; level <= MaxResolution; level++ {
		edge := EdgeLengthKm(level)
		bestDigit, bestResidual := 0, math.Inf(1)
		for d := 0; d < 7; d++ {
			ux, uy := hexUnitVec(d)
			resX, resY := rx-ux*edge, ry-uy*edge
			residual := resX*resX + resY*resY
			if residual < bestResidual {
				bestDigit, bestResidual = d, residual
			}
		}
		digits[level-1] = bestDigit
		ux, uy := hexUnitVec(bestDigit)
		rx -= ux * edge
		ry -= uy * edge
	}
	return digits
}
