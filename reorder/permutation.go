package reorder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/geosyllable/geosyllable/addrerr"
)

// Permutation is the base-cell reordering: a bijection between original
// base-cell indices and their position along the Hamiltonian path. It is
// immutable once built or loaded, and safe to share across goroutines.
type Permutation struct {
	order   []int // order[position] = original index
	forward []int // forward[original] = position
}

// Record is the JSON-persisted form of a Permutation (spec.md §6).
type Record struct {
	CellOrder      []int          `json:"cell_order"`
	PositionMap    map[string]int `json:"position_map"`
	AdjacencyRate  float64        `json:"adjacency_rate"`
}

// Forward returns the ordered position of original base-cell index b.
func (p *Permutation) Forward(b int) int { return p.forward[b] }

// Inverse returns the original base-cell index at ordered position pos.
func (p *Permutation) Inverse(pos int) int { return p.order[pos] }

// Len returns the number of base cells in the permutation.
func (p *Permutation) Len() int { return len(p.order) }

// Record renders the permutation in its persisted JSON form.
func (p *Permutation) Record(adjacencyRatePercent float64) Record {
	positionMap := make(map[string]int, len(p.order))
	for pos, original := range p.order {
		positionMap[strconv.Itoa(original)] = pos
	}
	return Record{
		CellOrder:     append([]int(nil), p.order...),
		PositionMap:   positionMap,
		AdjacencyRate: adjacencyRatePercent,
	}
}

// FromRecord validates and builds a Permutation from a persisted Record.
// Fails fast (spec.md §9's "Dynamic configuration selection" design note)
// if the record is internally inconsistent: not a full permutation of
// 0..n-1, or position_map disagreeing with cell_order.
func FromRecord(r Record, n int) (*Permutation, error) {
	if len(r.CellOrder) != n {
		return nil, addrerr.Newf(addrerr.PermutationUnavailable, "cell_order has %d entries, want %d", len(r.CellOrder), n)
	}

	forward := make([]int, n)
	for i := range forward {
		forward[i] = -1
	}
	for pos, original := range r.CellOrder {
		if original < 0 || original >= n {
			return nil, addrerr.Newf(addrerr.PermutationUnavailable, "cell_order entry %d out of range", original)
		}
		if forward[original] != -1 {
			return nil, addrerr.Newf(addrerr.PermutationUnavailable, "cell_order repeats index %d", original)
		}
		forward[original] = pos
	}

	for original, pos := range forward {
		want, ok := r.PositionMap[strconv.Itoa(original)]
		if !ok {
			return nil, addrerr.Newf(addrerr.PermutationUnavailable, "position_map missing entry for %d", original)
		}
		if want != pos {
			return nil, addrerr.Newf(addrerr.PermutationUnavailable, "position_map disagrees with cell_order for %d: %d != %d", original, want, pos)
		}
	}

	return &Permutation{order: append([]int(nil), r.CellOrder...), forward: forward}, nil
}

// Generate builds a fresh Permutation by running the Hamiltonian search
// over g, validating the result has 100% adjacency. This is a generation-
// time-only operation (spec.md §5): never called from the hot encode/decode
// path, only from the CLI.
func Generate(ctx context.Context, g Graph) (*Permutation, Record, error) {
	path, err := FindHamiltonianPath(ctx, g)
	if err != nil {
		return nil, Record{}, err
	}

	rate, err := ValidateHamiltonianPath(g, path)
	if err != nil {
		return nil, Record{}, err
	}
	if rate != 100.0 {
		return nil, Record{}, addrerr.Newf(addrerr.PermutationUnavailable, "path has %.1f%% adjacency, want 100.0%%", rate)
	}

	positionMap := make(map[string]int, len(path))
	for pos, original := range path {
		positionMap[strconv.Itoa(original)] = pos
	}

	perm, err := FromRecord(Record{CellOrder: path, PositionMap: positionMap}, len(g))
	if err != nil {
		return nil, Record{}, err
	}
	return perm, perm.Record(rate), nil
}

// Save writes the permutation's record form to path as JSON.
func Save(path string, r Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal permutation record: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a permutation record from path and builds a validated
// Permutation over n base cells.
func Load(path string, n int) (*Permutation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read permutation record: %w", err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal permutation record: %w", err)
	}
	return FromRecord(r, n)
}
