// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps an optional SQLite log of processing runs so the
// size wins of past compression passes stay inspectable.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tep-exp/pdfpress/pkg/types"
)

// Run is one recorded processing run.
type Run struct {
	ID          int64
	PDFPath     string
	Quality     types.Quality
	Stats       types.CompressionStats
	Embedder    string
	ProcessedAt time.Time
}

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating the schema
// and any missing parent directories.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pdf_path TEXT NOT NULL,
		quality TEXT NOT NULL,
		original_bytes INTEGER NOT NULL,
		compressed_bytes INTEGER NOT NULL,
		embedder TEXT,
		processed_at TEXT NOT NULL
	)`)
	return err
}

// Record appends a run to the log. A zero ProcessedAt is stamped with the
// current time.
func (s *Store) Record(ctx context.Context, run Run) error {
	ts := run.ProcessedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (pdf_path, quality, original_bytes, compressed_bytes, embedder, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.PDFPath, string(run.Quality), run.Stats.OriginalBytes, run.Stats.CompressedBytes,
		run.Embedder, ts.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first, up to limit
// (20 when limit is not positive).
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, pdf_path, quality, original_bytes, compressed_bytes, embedder, processed_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var quality, ts string
		if err := rows.Scan(&r.ID, &r.PDFPath, &quality, &r.Stats.OriginalBytes,
			&r.Stats.CompressedBytes, &r.Embedder, &ts); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Quality = types.Quality(quality)
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			r.ProcessedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
