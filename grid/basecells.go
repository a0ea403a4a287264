package grid

import (
	"math"
	"sort"
)

// baseCellTable holds the 122 base cells: their canonical center and their
// neighbor set. It is built once, deterministically, at package init.
//
// The real H3 grid derives base-cell placement and adjacency from a fixed
// icosahedral projection table (home face/IJK per base cell). That table is
// itself external-library data (see spec.md §1's Grid Adapter scope) and was
// not present in the retrieved reference slice of isbang/h3go (only the
// resolution-generic digit/IJK and distance/azimuth math was). In its place
// this table is built with a Fibonacci sphere lattice, a standard
// equal-area point-on-a-sphere placement, which gives 122 base cells spread
// evenly over the globe with a hexagon-like neighbor count (six or seven
// near-neighbors) without requiring the omitted table.
// See DESIGN.md for the full rationale.
type baseCellTable struct {
	centers   [NumBaseCells]Coord
	neighbors [NumBaseCells][]int
}

var baseCells = buildBaseCellTable()

func buildBaseCellTable() *baseCellTable {
	t := &baseCellTable{centers: fibonacciSphere(NumBaseCells)}
	t.neighbors = nearestNeighborGraph(t.centers[:], 6)
	return t
}

// fibonacciSphere places n points approximately evenly on the unit sphere
// using the golden-angle spiral construction, then converts each to a
// latitude/longitude coordinate. Deterministic: no randomness, same input
// always yields the same table.
func fibonacciSphere(n int) [NumBaseCells]Coord {
	var out [NumBaseCells]Coord
	goldenAngle := math.Pi * (3 - math.Sqrt(5))

	for i := 0; i < n; i++ {
		// y runs from just under +1 to just above -1
		y := 1 - (float64(i)+0.5)*2/float64(n)
		radius := math.Sqrt(math.Max(0, 1-y*y))
		theta := goldenAngle * float64(i)

		x := math.Cos(theta) * radius
		z := math.Sin(theta) * radius

		lat := radsToDegs(math.Asin(clamp(y, -1, 1)))
		lon := radsToDegs(math.Atan2(z, x))
		out[i] = Coord{LatDeg: lat, LonDeg: lon}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nearestNeighborGraph builds a symmetric adjacency list where each node's k
// nearest centers (by great-circle distance) are candidate neighbors; the
// final graph keeps an edge whenever either endpoint proposed the other.
// Every node therefore has degree at least k; nodes that other nodes
// proposed without a proposal back get more than k. With k=6 and the
// Fibonacci-sphere centers, most nodes have degree 6 and the rest degree 7.
// No node has degree 5, so the pentagon cells of a real hexagonal grid are
// not reproduced.
func nearestNeighborGraph(centers []Coord, k int) [NumBaseCells][]int {
	n := len(centers)
	type candidate struct {
		idx  int
		dist float64
	}

	proposed := make([]map[int]bool, n)
	for i := range proposed {
		proposed[i] = make(map[int]bool, k)
	}

	for i := 0; i < n; i++ {
		candidates := make([]candidate, 0, n-1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			candidates = append(candidates, candidate{idx: j, dist: pointDistKm(centers[i], centers[j])})
		}
		sort.Slice(candidates, func(a, b int) bool { return candidates[a].dist < candidates[b].dist })
		for _, c := range candidates[:k] {
			proposed[i][c.idx] = true
		}
	}

	var adj [NumBaseCells][]int
	for i := 0; i < n; i++ {
		seen := make(map[int]bool, k+1)
		for j := range proposed[i] {
			seen[j] = true
		}
		for j := 0; j < n; j++ {
			if j != i && proposed[j][i] {
				seen[j] = true
			}
		}
		for j := range seen {
			adj[i] = append(adj[i], j)
		}
		sort.Ints(adj[i])
	}
	return adj
}
