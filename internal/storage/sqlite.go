package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	brutalerrors "github.com/alexisbeaulieu97/brutalist/pkg/errors"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS slots (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteStore keeps slots in a single SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, brutalerrors.NewStorageError("open", "", fmt.Errorf("create store directory: %w", err))
	}

	db, err := sql.Open("sqlite", buildSQLiteDSN(path))
	if err != nil {
		return nil, brutalerrors.NewStorageError("open", "", fmt.Errorf("open sqlite db: %w", err))
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, brutalerrors.NewStorageError("open", "", fmt.Errorf("ping sqlite db: %w", err))
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, brutalerrors.NewStorageError("open", "", fmt.Errorf("create schema: %w", err))
	}
	return &SQLiteStore{db: db}, nil
}

func buildSQLiteDSN(path string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}
	q := url.Values{}
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(3000)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Get returns the slot value or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, brutalerrors.NewStorageError("read", key, err)
	}
	return value, nil
}

// Set upserts the slot.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, key, value)
	if err != nil {
		return brutalerrors.NewStorageError("write", key, err)
	}
	return nil
}

// Delete removes the slot. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return brutalerrors.NewStorageError("delete", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
