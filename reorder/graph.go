package reorder

import "github.com/geosyllable/geosyllable/grid"

// BuildAdjacencyGraph builds the Graph the Hamiltonian search runs over,
// from the grid adapter's base-cell neighbor relation. Grounded on
// original_source/scripts/hamiltonian/h3_hamiltonian_ordering.py's
// _build_adjacency_graph, which calls h3.grid_ring(cell, 1) per base cell;
// here the equivalent is grid.Adapter.BaseCellNeighbors.
func BuildAdjacencyGraph(adapter *grid.Adapter) Graph {
	g := make(Graph, grid.NumBaseCells)
	for _, cell := range adapter.AllBaseCells() {
		g[cell.Index] = adapter.BaseCellNeighbors(cell.Index)
	}
	return g
}
