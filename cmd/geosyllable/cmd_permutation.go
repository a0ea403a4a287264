package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geosyllable/geosyllable/grid"
	"github.com/geosyllable/geosyllable/internal/store"
	"github.com/geosyllable/geosyllable/reorder"
)

var cmdPermutation = &cobra.Command{
	Use:   "permutation",
	Short: "Manage base-cell Hamiltonian permutations",
}

var argsPermutationGenerate struct {
	out      string
	deadline time.Duration
}

var cmdPermutationGenerate = &cobra.Command{
	Use:   "generate [--deadline 300s] [--out <path>]",
	Short: "Search for a Hamiltonian ordering of the base cells and persist it",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.NewString()
		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		adapter := grid.NewAdapter()
		graph := reorder.BuildAdjacencyGraph(adapter)

		ctx, cancel := context.WithTimeout(context.Background(), argsPermutationGenerate.deadline)
		defer cancel()

		logger.Info("starting Hamiltonian search",
			zap.String("run_id", runID),
			zap.Duration("deadline", argsPermutationGenerate.deadline),
			zap.Int("base_cells", len(graph)))

		start := time.Now()
		_, record, err := reorder.Generate(ctx, graph)
		elapsed := time.Since(start)
		if err != nil {
			logger.Error("Hamiltonian search failed", zap.String("run_id", runID), zap.Error(err))
			return err
		}

		logger.Info("Hamiltonian search succeeded",
			zap.String("run_id", runID),
			zap.Duration("elapsed", elapsed),
			zap.Float64("adjacency_rate", record.AdjacencyRate))

		if err := reorder.Save(argsPermutationGenerate.out, record); err != nil {
			return err
		}

		db, err := openCatalog(argsRoot.catalog)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.RecordPermutation(store.PermutationEntry{
			ID:            runID,
			AdjacencyRate: record.AdjacencyRate,
			SearchSeconds: elapsed.Seconds(),
			Path:          argsPermutationGenerate.out,
			CataloguedAt:  time.Now(),
		}); err != nil {
			return err
		}

		fmt.Printf("permutation generated: adjacency_rate=%.1f%%, elapsed=%s, saved to %s, catalogued in %s\n",
			record.AdjacencyRate, elapsed, argsPermutationGenerate.out, argsRoot.catalog)
		return nil
	},
}

var argsPermutationShow struct {
	in string
}

var cmdPermutationShow = &cobra.Command{
	Use:   "show [--in <path>]",
	Short: "Print a persisted permutation's summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		perm, err := reorder.Load(argsPermutationShow.in, grid.NumBaseCells)
		if err != nil {
			return err
		}
		fmt.Printf("permutation over %d base cells: first=%d last=%d\n", perm.Len(), perm.Inverse(0), perm.Inverse(perm.Len()-1))
		return nil
	},
}

func init() {
	cmdPermutationGenerate.Flags().StringVar(&argsPermutationGenerate.out, "out", "permutation.json", "path to write the permutation JSON record")
	cmdPermutationGenerate.Flags().DurationVar(&argsPermutationGenerate.deadline, "deadline", reorder.DefaultDeadline, "wall-clock deadline for the Hamiltonian search")

	cmdPermutationShow.Flags().StringVar(&argsPermutationShow.in, "in", "permutation.json", "path to the permutation JSON record")
}
