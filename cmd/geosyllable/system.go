package main

import (
	"context"
	"fmt"

	"github.com/geosyllable/geosyllable/address"
	"github.com/geosyllable/geosyllable/config"
	"github.com/geosyllable/geosyllable/grid"
	"github.com/geosyllable/geosyllable/internal/store"
	"github.com/geosyllable/geosyllable/reorder"
)

// openCatalog opens the catalog database at path, creating it on first use
// so "geosyllable config generate" works against a fresh checkout without a
// separate init step.
func openCatalog(path string) (*store.DB, error) {
	db, err := store.OpenStore(context.Background(), path)
	if err != nil {
		db, err = store.CreateStore(context.Background(), path, false)
	}
	return db, err
}

// loadSystem builds a System Facade from a configuration record path and a
// permutation record path, the construction-time-only I/O spec.md §5
// describes ("loading configuration and permutation records from persisted
// JSON is performed once at construction").
func loadSystem(configPath, permutationPath string) (*address.System, error) {
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	perm, err := reorder.Load(permutationPath, grid.NumBaseCells)
	if err != nil {
		return nil, err
	}
	return address.New(cfg, perm, address.WithCacheSize(1024))
}

// loadSystemByName resolves a catalogued configuration name (SPEC_FULL.md
// §4.9's "--config <name>") against catalogPath, together with the most
// recently catalogued permutation, and builds the System Facade from their
// persisted JSON records.
func loadSystemByName(catalogPath, configName string) (*address.System, error) {
	db, err := store.OpenStore(context.Background(), catalogPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog %q: %w", catalogPath, err)
	}
	defer db.Close()

	configEntry, err := db.GetConfig(configName)
	if err != nil {
		return nil, err
	}
	permutationEntry, err := db.LatestPermutation()
	if err != nil {
		return nil, err
	}

	return loadSystem(configEntry.Path, permutationEntry.Path)
}
