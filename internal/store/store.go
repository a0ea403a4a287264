// Package store implements the Config Catalog Store of SPEC_FULL.md §4.8:
// a local SQLite record of generated configuration and permutation metadata,
// so "geosyllable config list" can answer without re-parsing every JSON
// record on disk. Permutations are catalogued too (ListPermutations,
// LatestPermutation); the CLI has no command that lists them.
//
// Grounded on playbymail-ottomap's stores/sqlite package: a DB type wrapping
// *sql.DB and a context.Context, schema loaded via go:embed, CreateStore/
// OpenStore constructors that distinguish "must not already exist" from
// "must already exist". This package skips ottomap's sqlc code-generation
// layer (sqlc requires running the sqlc binary, which is not available
// here) and issues hand-written queries directly against database/sql
// instead — see DESIGN.md for that trade-off.
package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"database/sql"
)

//go:embed schema.sql
var schemaDDL string

// ErrStoreExists is returned by CreateStore when a database already exists
// at the target path and force was not requested.
var ErrStoreExists = errors.New("store: database already exists")

// DB is the catalog store: configuration and permutation metadata recorded
// alongside the JSON records themselves.
type DB struct {
	db  *sql.DB
	ctx context.Context
}

// CreateStore creates a new catalog database at path, failing if one
// already exists unless force is true.
func CreateStore(ctx context.Context, path string, force bool) (*DB, error) {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return nil, ErrStoreExists
		}
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("store: remove existing database: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("store: stat %q: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create parent directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	if _, err := sqlDB.ExecContext(ctx, schemaDDL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	return &DB{db: sqlDB, ctx: ctx}, nil
}

// OpenStore opens an existing catalog database at path.
func OpenStore(ctx context.Context, path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("store: stat %q: %w", path, err)
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	return &DB{db: sqlDB, ctx: ctx}, nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// ConfigEntry is one row of the configs table.
type ConfigEntry struct {
	Name              string
	Alphabet          string
	AddressLength     int
	Base26Identifier  string
	TotalCombinations string
	Path              string // filesystem path to the configuration's JSON record
	CataloguedAt      time.Time
}

// RecordConfig inserts or replaces a configuration's catalog entry.
func (d *DB) RecordConfig(e ConfigEntry) error {
	_, err := d.db.ExecContext(d.ctx, `
		INSERT INTO configs (name, alphabet, address_length, base26_identifier, total_combinations, path, catalogued_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			alphabet = excluded.alphabet,
			address_length = excluded.address_length,
			base26_identifier = excluded.base26_identifier,
			total_combinations = excluded.total_combinations,
			path = excluded.path,
			catalogued_at = excluded.catalogued_at
	`, e.Name, e.Alphabet, e.AddressLength, e.Base26Identifier, e.TotalCombinations, e.Path, e.CataloguedAt.UTC().Format(time.RFC3339))
	return err
}

// ListConfigs returns every catalogued configuration, most recently
// catalogued first.
func (d *DB) ListConfigs() ([]ConfigEntry, error) {
	rows, err := d.db.QueryContext(d.ctx, `
		SELECT name, alphabet, address_length, base26_identifier, total_combinations, path, catalogued_at
		FROM configs
		ORDER BY catalogued_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ConfigEntry
	for rows.Next() {
		var e ConfigEntry
		var cataloguedAt string
		if err := rows.Scan(&e.Name, &e.Alphabet, &e.AddressLength, &e.Base26Identifier, &e.TotalCombinations, &e.Path, &cataloguedAt); err != nil {
			return nil, err
		}
		e.CataloguedAt, err = time.Parse(time.RFC3339, cataloguedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetConfig resolves a catalogued configuration's name to its entry, the
// lookup the CLI's --config <name> flag performs (SPEC_FULL.md §4.9).
func (d *DB) GetConfig(name string) (ConfigEntry, error) {
	var e ConfigEntry
	var cataloguedAt string
	row := d.db.QueryRowContext(d.ctx, `
		SELECT name, alphabet, address_length, base26_identifier, total_combinations, path, catalogued_at
		FROM configs
		WHERE name = ?
	`, name)
	if err := row.Scan(&e.Name, &e.Alphabet, &e.AddressLength, &e.Base26Identifier, &e.TotalCombinations, &e.Path, &cataloguedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ConfigEntry{}, fmt.Errorf("store: no configuration catalogued under name %q", name)
		}
		return ConfigEntry{}, err
	}
	var err error
	e.CataloguedAt, err = time.Parse(time.RFC3339, cataloguedAt)
	return e, err
}

// PermutationEntry is one row of the permutations table.
type PermutationEntry struct {
	ID            string
	AdjacencyRate float64
	SearchSeconds float64
	Path          string // filesystem path to the permutation's JSON record
	CataloguedAt  time.Time
}

// RecordPermutation inserts or replaces a permutation's catalog entry.
func (d *DB) RecordPermutation(e PermutationEntry) error {
	_, err := d.db.ExecContext(d.ctx, `
		INSERT INTO permutations (id, adjacency_rate, search_seconds, path, catalogued_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			adjacency_rate = excluded.adjacency_rate,
			search_seconds = excluded.search_seconds,
			path = excluded.path,
			catalogued_at = excluded.catalogued_at
	`, e.ID, e.AdjacencyRate, e.SearchSeconds, e.Path, e.CataloguedAt.UTC().Format(time.RFC3339))
	return err
}

// ListPermutations returns every catalogued permutation, most recently
// catalogued first.
func (d *DB) ListPermutations() ([]PermutationEntry, error) {
	rows, err := d.db.QueryContext(d.ctx, `
		SELECT id, adjacency_rate, search_seconds, path, catalogued_at
		FROM permutations
		ORDER BY catalogued_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PermutationEntry
	for rows.Next() {
		var e PermutationEntry
		var cataloguedAt string
		if err := rows.Scan(&e.ID, &e.AdjacencyRate, &e.SearchSeconds, &e.Path, &cataloguedAt); err != nil {
			return nil, err
		}
		e.CataloguedAt, err = time.Parse(time.RFC3339, cataloguedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// LatestPermutation returns the most recently catalogued permutation, the
// permutation the CLI's encode/decode/estimate commands load: per
// SPEC_FULL.md §9's "global immutable state" note, a process uses one
// base-cell permutation at a time, so only the newest catalogued one is
// ever resolved implicitly.
func (d *DB) LatestPermutation() (PermutationEntry, error) {
	var e PermutationEntry
	var cataloguedAt string
	row := d.db.QueryRowContext(d.ctx, `
		SELECT id, adjacency_rate, search_seconds, path, catalogued_at
		FROM permutations
		ORDER BY catalogued_at DESC
		LIMIT 1
	`)
	if err := row.Scan(&e.ID, &e.AdjacencyRate, &e.SearchSeconds, &e.Path, &cataloguedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PermutationEntry{}, fmt.Errorf("store: no permutation catalogued")
		}
		return PermutationEntry{}, err
	}
	var err error
	e.CataloguedAt, err = time.Parse(time.RFC3339, cataloguedAt)
	return e, err
}
