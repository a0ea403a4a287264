package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestCreateStoreRejectsExistingWithoutForce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := CreateStore(ctx, path, false)
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}
	defer db.Close()

	if _, err := CreateStore(ctx, path, false); err != ErrStoreExists {
		t.Fatalf("expected ErrStoreExists, got %v", err)
	}
}

func TestRecordAndListConfigs(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := CreateStore(ctx, path, false)
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}
	defer db.Close()

	entry := ConfigEntry{
		Name:              "ascii-abc",
		Alphabet:          "ascii",
		AddressLength:     8,
		Base26Identifier:  "abc",
		TotalCombinations: "1001129150390625",
		Path:              filepath.Join(t.TempDir(), "ascii-abc.json"),
		CataloguedAt:      time.Now(),
	}
	if err := db.RecordConfig(entry); err != nil {
		t.Fatalf("RecordConfig: %v", err)
	}

	entries, err := db.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != entry.Name || entries[0].Path != entry.Path {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	got, err := db.GetConfig(entry.Name)
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if got.Path != entry.Path {
		t.Fatalf("GetConfig path = %q, want %q", got.Path, entry.Path)
	}

	if _, err := db.GetConfig("does-not-exist"); err == nil {
		t.Fatal("expected error for unknown configuration name")
	}
}

func TestRecordAndListPermutations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := CreateStore(ctx, path, false)
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}
	defer db.Close()

	entry := PermutationEntry{
		ID:            "default",
		AdjacencyRate: 100.0,
		SearchSeconds: 4.2,
		Path:          filepath.Join(t.TempDir(), "permutation.json"),
		CataloguedAt:  time.Now(),
	}
	if err := db.RecordPermutation(entry); err != nil {
		t.Fatalf("RecordPermutation: %v", err)
	}

	entries, err := db.ListPermutations()
	if err != nil {
		t.Fatalf("ListPermutations: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != entry.ID || entries[0].Path != entry.Path {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	latest, err := db.LatestPermutation()
	if err != nil {
		t.Fatalf("LatestPermutation: %v", err)
	}
	if latest.ID != entry.ID {
		t.Fatalf("LatestPermutation = %+v, want ID %q", latest, entry.ID)
	}
}
