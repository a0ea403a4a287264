package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geosyllable/geosyllable/config"
	"github.com/geosyllable/geosyllable/internal/store"
)

var cmdConfig = &cobra.Command{
	Use:   "config",
	Short: "Manage geosyllable configurations",
}

var argsConfigGenerate struct {
	alphabet string
	letters  string
	save     bool
}

var cmdConfigGenerate = &cobra.Command{
	Use:   "generate --alphabet ascii --letters <letters> [--save]",
	Short: "Generate a configuration from a letter selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.NewString()
		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		logger.Info("generating configuration",
			zap.String("run_id", runID),
			zap.String("alphabet", argsConfigGenerate.alphabet),
			zap.String("letters", argsConfigGenerate.letters))

		cfg, err := config.Generate(argsConfigGenerate.alphabet, []rune(argsConfigGenerate.letters))
		if err != nil {
			logger.Error("generate failed", zap.String("run_id", runID), zap.Error(err))
			return err
		}

		record := cfg.Record(fmt.Sprintf("generated by geosyllable config generate (run %s)", runID))

		if argsConfigGenerate.save {
			recordPath := filepath.Join(filepath.Dir(argsRoot.catalog), record.Name+".json")
			if err := config.Save(recordPath, record); err != nil {
				return err
			}

			db, err := openCatalog(argsRoot.catalog)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.RecordConfig(store.ConfigEntry{
				Name:              record.Name,
				Alphabet:          record.Metadata.Alphabet,
				AddressLength:     record.AddressLength,
				Base26Identifier:  record.Metadata.Base26Identifier,
				TotalCombinations: record.Metadata.TotalCombinations,
				Path:              recordPath,
				CataloguedAt:      time.Now(),
			}); err != nil {
				return err
			}
			fmt.Printf("saved %q to %s and catalogued in %s\n", record.Name, recordPath, argsRoot.catalog)
		}

		fmt.Printf("configuration %q: %s syllables, %d syllables per address\n",
			record.Name, humanize.Comma(int64(record.Metadata.TotalSyllables)), record.AddressLength)
		fmt.Printf("total addresses: %s (target: %s, coverage %.4f)\n",
			record.Metadata.TotalCombinations, humanize.Comma(int64(record.Metadata.H3TargetSpace)), record.Metadata.CoverageRatio)
		return nil
	},
}

var cmdConfigList = &cobra.Command{
	Use:   "list",
	Short: "List catalogued configurations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.OpenStore(context.Background(), argsRoot.catalog)
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := db.ListConfigs()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%-24s alphabet=%-8s L=%-3d total=%s catalogued %s\n",
				e.Name, e.Alphabet, e.AddressLength, e.TotalCombinations, humanize.Time(e.CataloguedAt))
		}
		return nil
	},
}

func init() {
	cmdConfigGenerate.Flags().StringVar(&argsConfigGenerate.alphabet, "alphabet", "ascii", "alphabet name")
	cmdConfigGenerate.Flags().StringVar(&argsConfigGenerate.letters, "letters", "", "letters to select from the alphabet")
	cmdConfigGenerate.Flags().BoolVar(&argsConfigGenerate.save, "save", false, "persist the configuration and catalog it so it can be looked up by name later")
	_ = cmdConfigGenerate.MarkFlagRequired("letters")
}
