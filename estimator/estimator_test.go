package estimator

import (
	"errors"
	"strconv"
	"testing"

	"github.com/geosyllable/geosyllable/addrerr"
	"github.com/geosyllable/geosyllable/cellcodec"
	"github.com/geosyllable/geosyllable/config"
	"github.com/geosyllable/geosyllable/grid"
	"github.com/geosyllable/geosyllable/reorder"
)

func identityPermutation(t *testing.T) *reorder.Permutation {
	t.Helper()
	order := make([]int, grid.NumBaseCells)
	for i := range order {
		order[i] = i
	}
	positionMap := make(map[string]int, len(order))
	for pos, original := range order {
		positionMap[strconv.Itoa(original)] = pos
	}
	perm, err := reorder.FromRecord(reorder.Record{CellOrder: order, PositionMap: positionMap}, grid.NumBaseCells)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	return perm
}

func referenceEstimator(t *testing.T) *Estimator {
	t.Helper()
	cfg, err := config.Generate("ascii", []rune("sptkmnlfrwhvjzdaeiou"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	codec, err := cellcodec.New(identityPermutation(t))
	if err != nil {
		t.Fatalf("cellcodec.New: %v", err)
	}
	e, err := New(cfg, codec, grid.NewAdapter())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// TestPrefixContainment covers spec.md §8's invariant 6: the region implied
// by a longer prefix is contained within the region implied by its shorter
// prefix.
func TestPrefixContainment(t *testing.T) {
	e := referenceEstimator(t)

	short, err := e.Estimate("da")
	if err != nil {
		t.Fatalf("Estimate(da): %v", err)
	}
	long, err := e.Estimate("dafe")
	if err != nil {
		t.Fatalf("Estimate(dafe): %v", err)
	}

	shortBox := grid.BoundingBox{North: short.North, South: short.South, East: short.East, West: short.West}
	longBox := grid.BoundingBox{North: long.North, South: long.South, East: long.East, West: long.West}

	if !shortBox.Contains(longBox.Center()) {
		t.Fatalf("dafe's center %+v not contained in da's box %+v", longBox.Center(), shortBox)
	}
	corners := []grid.Coord{
		{LatDeg: longBox.North, LonDeg: longBox.West},
		{LatDeg: longBox.North, LonDeg: longBox.East},
		{LatDeg: longBox.South, LonDeg: longBox.West},
		{LatDeg: longBox.South, LonDeg: longBox.East},
	}
	for _, c := range corners {
		if !shortBox.Contains(c) {
			t.Fatalf("dafe's box %+v not contained in da's box %+v: corner %+v outside", longBox, shortBox, c)
		}
	}
}

// TestMonotoneConfidence covers spec.md §8's invariant 7: area strictly
// decreases and confidence strictly increases as the prefix grows.
func TestMonotoneConfidence(t *testing.T) {
	e := referenceEstimator(t)

	short, err := e.Estimate("da")
	if err != nil {
		t.Fatalf("Estimate(da): %v", err)
	}
	long, err := e.Estimate("dafe")
	if err != nil {
		t.Fatalf("Estimate(dafe): %v", err)
	}

	if long.EstimatedAreaKm2 >= short.EstimatedAreaKm2 {
		t.Fatalf("expected dafe's area (%g) < da's area (%g)", long.EstimatedAreaKm2, short.EstimatedAreaKm2)
	}
	if long.Confidence <= short.Confidence {
		t.Fatalf("expected dafe's confidence (%g) > da's confidence (%g)", long.Confidence, short.Confidence)
	}
	if long.CompletenessLevel <= short.CompletenessLevel {
		t.Fatalf("expected dafe's completeness level (%d) > da's (%d)", long.CompletenessLevel, short.CompletenessLevel)
	}
}

func TestEstimateRejectsEmptyPrefix(t *testing.T) {
	e := referenceEstimator(t)
	_, err := e.Estimate("")
	if !errors.Is(err, addrerr.PrefixError) {
		t.Fatalf("expected PrefixError, got %v", err)
	}
}

func TestEstimateRejectsUnknownConsonant(t *testing.T) {
	e := referenceEstimator(t)
	_, err := e.Estimate("xx")
	if !errors.Is(err, addrerr.MalformedAddress) {
		t.Fatalf("expected MalformedAddress, got %v", err)
	}
}

func TestEstimateRejectsCompleteLengthAddress(t *testing.T) {
	e := referenceEstimator(t)
	full := "dadadadadadadada" // 8 syllables, address length L=8 for this configuration
	_, err := e.Estimate(full)
	if !errors.Is(err, addrerr.PrefixError) {
		t.Fatalf("expected PrefixError for a full-length prefix, got %v", err)
	}
}

func TestEstimateRejectsOddLengthPrefix(t *testing.T) {
	e := referenceEstimator(t)
	_, err := e.Estimate("d")
	if !errors.Is(err, addrerr.PrefixError) {
		t.Fatalf("expected PrefixError for an odd-length prefix, got %v", err)
	}
}

func TestEstimateSingleSyllableCoversWholeBaseCellSpan(t *testing.T) {
	e := referenceEstimator(t)
	est, err := e.Estimate("da")
	if err != nil {
		t.Fatalf("Estimate(da): %v", err)
	}
	if est.CompletenessLevel != 1 {
		t.Fatalf("expected completeness level 1, got %d", est.CompletenessLevel)
	}
	if est.EstimatedAreaKm2 <= 0 {
		t.Fatalf("expected positive area, got %g", est.EstimatedAreaKm2)
	}
	if est.Confidence <= 0 || est.Confidence > 1 {
		t.Fatalf("confidence %g out of (0, 1]", est.Confidence)
	}
}
