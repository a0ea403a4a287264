// Package reorder computes and persists the base-cell Hamiltonian
// reordering: the permutation of the 122 base cells such that every
// consecutive pair in the ordering is a spatial neighbor.
//
// The search is grounded directly on
// original_source/scripts/hamiltonian/h3_hamiltonian_ordering.py's
// H3HamiltonianOrderingGenerator: depth-first backtracking, starting
// candidates tried in ascending degree order, unvisited neighbors at each
// step also tried in ascending degree order, under a wall-clock deadline.
package reorder

import (
	"context"
	"sort"
	"time"

	"github.com/geosyllable/geosyllable/addrerr"
)

// Graph is an adjacency list over node indices 0..n-1.
type Graph map[int][]int

// DefaultDeadline is the search's default wall-clock budget, matching
// spec.md §4.2's "configurable wall-clock bound (default 300 s)".
const DefaultDeadline = 300 * time.Second

// FindHamiltonianPath searches g for a path visiting every node exactly
// once, trying lower-degree start nodes first and, within a path, lower-
// degree unvisited neighbors first. It returns addrerr.PermutationUnavailable
// if no path is found before ctx is done.
func FindHamiltonianPath(ctx context.Context, g Graph) ([]int, error) {
	nodes := make([]int, 0, len(g))
	for n := range g {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return len(g[nodes[i]]) < len(g[nodes[j]]) })

	sortedNeighbors := make(map[int][]int, len(g))
	for n, neighbors := range g {
		ns := append([]int(nil), neighbors...)
		sort.Slice(ns, func(i, j int) bool { return len(g[ns[i]]) < len(g[ns[j]]) })
		sortedNeighbors[n] = ns
	}

	for _, start := range nodes {
		path, ok := backtrack(ctx, g, sortedNeighbors, start, len(nodes))
		if ok {
			return path, nil
		}
		select {
		case <-ctx.Done():
			return nil, addrerr.New(addrerr.PermutationUnavailable, ctx.Err().Error())
		default:
		}
	}
	return nil, addrerr.New(addrerr.PermutationUnavailable, "no Hamiltonian path found before deadline")
}

func backtrack(ctx context.Context, g Graph, sortedNeighbors map[int][]int, start, total int) ([]int, bool) {
	visited := make(map[int]bool, total)
	path := make([]int, 0, total)

	var walk func(current int) bool
	walk = func(current int) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		path = append(path, current)
		visited[current] = true

		if len(visited) == total {
			return true
		}

		for _, next := range sortedNeighbors[current] {
			if visited[next] {
				continue
			}
			if walk(next) {
				return true
			}
		}

		path = path[:len(path)-1]
		delete(visited, current)
		return false
	}

	if walk(start) {
		return append([]int(nil), path...), true
	}
	return nil, false
}

// ValidateHamiltonianPath checks that path visits every node of g exactly
// once and that every consecutive pair is adjacent in g, returning the
// adjacency rate (100.0 for a true Hamiltonian path).
func ValidateHamiltonianPath(g Graph, path []int) (adjacencyRatePercent float64, err error) {
	if len(path) != len(g) {
		return 0, addrerr.Newf(addrerr.PermutationUnavailable, "path length %d != graph size %d", len(path), len(g))
	}

	seen := make(map[int]bool, len(path))
	for _, n := range path {
		if seen[n] {
			return 0, addrerr.Newf(addrerr.PermutationUnavailable, "duplicate node %d in path", n)
		}
		seen[n] = true
	}

	if len(path) < 2 {
		return 100.0, nil
	}

	adjacent := 0
	for i := 0; i < len(path)-1; i++ {
		if isNeighbor(g, path[i], path[i+1]) {
			adjacent++
		}
	}
	total := len(path) - 1
	return float64(adjacent) / float64(total) * 100.0, nil
}

func isNeighbor(g Graph, a, b int) bool {
	for _, n := range g[a] {
		if n == b {
			return true
		}
	}
	return false
}
