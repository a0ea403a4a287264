package cellcodec

import (
	"strconv"
	"testing"

	"github.com/geosyllable/geosyllable/grid"
	"github.com/geosyllable/geosyllable/reorder"
)

func identityPermutation(t *testing.T) *reorder.Permutation {
	t.Helper()
	order := make([]int, grid.NumBaseCells)
	for i := range order {
		order[i] = i
	}
	perm, err := reorder.FromRecord(reorder.Record{CellOrder: order, PositionMap: positionMapFor(order)}, grid.NumBaseCells)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	return perm
}

func positionMapFor(order []int) map[string]int {
	m := make(map[string]int, len(order))
	for pos, original := range order {
		m[strconv.Itoa(original)] = pos
	}
	return m
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec, err := New(identityPermutation(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tuple := grid.Tuple{Base: 57, Digits: [grid.MaxResolution]int{1, 2, 3, 4, 5, 6, 0, 1, 2, 3, 4, 5, 6, 0, 1}}
	n, err := codec.Encode(tuple)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := codec.Decode(n)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != tuple {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, tuple)
	}
}

func TestEncodeRejectsOutOfRangeBase(t *testing.T) {
	codec, err := New(identityPermutation(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := codec.Encode(grid.Tuple{Base: grid.NumBaseCells}); err == nil {
		t.Fatal("expected error for out-of-range base cell")
	}
}

func TestDecodeRejectsOutOfRangePosition(t *testing.T) {
	codec, err := New(identityPermutation(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := codec.Decode(TotalCombinations); err == nil {
		t.Fatal("expected error for position at TotalCombinations")
	}
}

func TestTotalCombinationsMatchesSpec(t *testing.T) {
	const want = 579202504213046
	if TotalCombinations != want {
		t.Fatalf("TotalCombinations = %d, want %d", TotalCombinations, want)
	}
}

func TestBoundaryPositionsRoundTrip(t *testing.T) {
	codec, err := New(identityPermutation(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, n := range []uint64{0, TotalCombinations - 1} {
		tuple, err := codec.Decode(n)
		if err != nil {
			t.Fatalf("Decode(%d): %v", n, err)
		}
		got, err := codec.Encode(tuple)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if got != n {
			t.Fatalf("Decode/Encode(%d) = %d", n, got)
		}
	}
}
