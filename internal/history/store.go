// SPDX-License-Identifier: MIT

// Package history persists solved systems in a local sqlite database.
//
// Each entry keeps the method, the system size, the rounded solution, the
// rounding precision and the time it was solved. Non-finite components are
// stored verbatim ("NaN", "+Inf").
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/linsolve/solver"
)

var (
	// ErrClosed is returned by operations on a closed Store.
	ErrClosed = errors.New("history: store is closed")

	// ErrCorrupt reports a row that cannot be decoded.
	ErrCorrupt = errors.New("history: corrupt entry")
)

// Entry is one recorded solution.
type Entry struct {
	ID        uuid.UUID
	Method    solver.Method
	Size      int
	Solution  []float64
	Rounding  int
	CreatedAt time.Time
}

// Store is the solution history. All methods except Close may be called
// concurrently.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open migrates and opens the database at path, creating its directory.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history: mkdir: %w", err)
	}
	if err := runMigrations(path); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: ping: %w", err)
	}

	return &Store{db: db, now: now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Record stores e, assigning a fresh ID and timestamp. It returns the stored entry.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if s.db == nil {
		return Entry{}, ErrClosed
	}
	method, err := e.Method.MarshalText()
	if err != nil {
		return Entry{}, fmt.Errorf("history: record: %w", err)
	}
	e.ID = uuid.New()
	e.CreatedAt = s.now()
	if e.Size == 0 {
		e.Size = len(e.Solution)
	}

	_, err = s.db.ExecContext(ctx, `
	INSERT INTO solutions(id, method, size, solution, rounding, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, e.ID.String(), string(method), e.Size, encodeVector(e.Solution), e.Rounding, e.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("history: record: %w", err)
	}

	return e, nil
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, method, size, solution, rounding, created_at
	FROM solutions ORDER BY created_at DESC, rowid DESC LIMIT ?;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e              Entry
			id, method, xs string
		)
		if err = rows.Scan(&id, &method, &e.Size, &xs, &e.Rounding, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: list: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("id %q: %v: %w", id, err, ErrCorrupt)
		}
		if err = e.Method.UnmarshalText([]byte(method)); err != nil {
			return nil, fmt.Errorf("entry %s: %v: %w", id, err, ErrCorrupt)
		}
		if e.Solution, err = decodeVector(xs); err != nil {
			return nil, fmt.Errorf("entry %s: %v: %w", id, err, ErrCorrupt)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	var n int64
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM solutions`).Scan(&n); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM solutions`)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("history: clear: %w", err)
	}

	return n, nil
}

func encodeVector(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}

func decodeVector(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	var err error
	for i, f := range fields {
		if out[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, err
		}
	}

	return out, nil
}
