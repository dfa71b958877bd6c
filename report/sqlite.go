// SPDX-License-Identifier: MIT
package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/oramap/analysis"
)

// SQLiteStore records results in a sqlite database.
type SQLiteStore struct {
	db   *sql.DB
	once sync.Once
}

// OpenSQLite opens or creates the database at path and ensures its schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("report: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err = initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err = initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			run_id TEXT NOT NULL,
			archive TEXT NOT NULL,
			title TEXT NOT NULL,
			mod TEXT NOT NULL,
			tileset TEXT NOT NULL,
			format INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			biggest_area INTEGER NOT NULL,
			symmetries TEXT NOT NULL,
			resource_symmetries TEXT NOT NULL,
			error_kind TEXT NOT NULL,
			error TEXT NOT NULL,
			recorded_at TEXT NOT NULL,
			PRIMARY KEY (run_id, archive)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_title ON results(title);`,
		`CREATE INDEX IF NOT EXISTS idx_results_error_kind ON results(error_kind);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Write stores one result. A repeated (runID, archive) pair replaces the row.
func (s *SQLiteStore) Write(runID string, r analysis.Result) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO results (
			run_id, archive, title, mod, tileset, format, width, height,
			biggest_area, symmetries, resource_symmetries, error_kind, error, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, r.Archive, r.Title, r.Mod, r.Tileset, int(r.Format), r.Width, r.Height,
		r.BiggestArea, joinNames(r.Symmetries), joinNames(r.ResourceSymmetries),
		r.ErrorKind, r.Error, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.Archive, err)
	}
	return nil
}

// Results returns the rows of one run ordered by archive.
func (s *SQLiteStore) Results(ctx context.Context, runID string) ([]analysis.Result, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
			archive, title, mod, tileset, format, width, height,
			biggest_area, symmetries, resource_symmetries, error_kind, error
		FROM results WHERE run_id = ? ORDER BY archive`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []analysis.Result
	for rows.Next() {
		var (
			r             analysis.Result
			format        int
			syms, resSyms string
		)
		if err = rows.Scan(&r.Archive, &r.Title, &r.Mod, &r.Tileset, &format, &r.Width, &r.Height,
			&r.BiggestArea, &syms, &resSyms, &r.ErrorKind, &r.Error); err != nil {
			return nil, err
		}
		r.Format = uint8(format)
		r.Symmetries = splitNames(syms)
		r.ResourceSymmetries = splitNames(resSyms)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database. Further calls are no-ops.
func (s *SQLiteStore) Close() error {
	var err error
	s.once.Do(func() { err = s.db.Close() })
	return err
}

func joinNames(names []string) string { return strings.Join(names, ",") }

func splitNames(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
