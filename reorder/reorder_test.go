package reorder

import (
	"context"
	"testing"
	"time"

	"github.com/geosyllable/geosyllable/grid"
)

func ringGraph(n int) Graph {
	g := make(Graph, n)
	for i := 0; i < n; i++ {
		g[i] = []int{(i + 1) % n, (i - 1 + n) % n}
	}
	return g
}

func TestFindHamiltonianPathOnRing(t *testing.T) {
	g := ringGraph(8)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	path, err := FindHamiltonianPath(ctx, g)
	if err != nil {
		t.Fatalf("FindHamiltonianPath: %v", err)
	}

	rate, err := ValidateHamiltonianPath(g, path)
	if err != nil {
		t.Fatalf("ValidateHamiltonianPath: %v", err)
	}
	if rate != 100.0 {
		t.Fatalf("adjacency rate = %.1f, want 100.0", rate)
	}
}

func TestValidateHamiltonianPathRejectsDuplicate(t *testing.T) {
	g := ringGraph(4)
	if _, err := ValidateHamiltonianPath(g, []int{0, 1, 1, 2}); err == nil {
		t.Fatal("expected error for duplicate node")
	}
}

func TestValidateHamiltonianPathRejectsWrongLength(t *testing.T) {
	g := ringGraph(4)
	if _, err := ValidateHamiltonianPath(g, []int{0, 1, 2}); err == nil {
		t.Fatal("expected error for wrong length")
	}
}

func TestFindHamiltonianPathRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A graph with no edges at all cannot yield a path longer than 1 node,
	// so the search is guaranteed to exhaust all starts; with ctx already
	// cancelled, it must fail fast rather than search forever.
	g := Graph{0: nil, 1: nil}
	if _, err := FindHamiltonianPath(ctx, g); err == nil {
		t.Fatal("expected error for disconnected graph with cancelled context")
	}
}

func TestGenerateOnRealBaseCellGraphProducesValidPermutation(t *testing.T) {
	adapter := grid.NewAdapter()
	g := BuildAdjacencyGraph(adapter)

	ctx, cancel := context.WithTimeout(context.Background(), DefaultDeadline)
	defer cancel()

	perm, record, err := Generate(ctx, g)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if perm.Len() != grid.NumBaseCells {
		t.Fatalf("permutation covers %d cells, want %d", perm.Len(), grid.NumBaseCells)
	}
	if record.AdjacencyRate != 100.0 {
		t.Fatalf("adjacency_rate = %.1f, want 100.0", record.AdjacencyRate)
	}

	for i := 0; i < grid.NumBaseCells-1; i++ {
		a, b := perm.Inverse(i), perm.Inverse(i+1)
		if !isNeighbor(g, a, b) {
			t.Fatalf("position %d (%d) is not adjacent to position %d (%d)", i, a, i+1, b)
		}
	}
}
