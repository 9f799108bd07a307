package storage

import (
	"context"
	"database/sql"
	"time"
)

// PostgreSQLAdapter stores keys as rows of the kv_entries table in PostgreSQL.
type PostgreSQLAdapter struct {
	db *sql.DB
}

// NewPostgreSQLAdapter creates a new PostgreSQLAdapter. The database handle is not owned by
// the adapter and is left open on Close.
func NewPostgreSQLAdapter(db *sql.DB) *PostgreSQLAdapter {
	return &PostgreSQLAdapter{db: db}
}

// Get retrieves the value stored under key.
func (p *PostgreSQLAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT entry_value FROM kv_entries WHERE entry_key = $1`
	return getValue(ctx, p.db, query, key)
}

// Set upserts the value stored under key.
func (p *PostgreSQLAdapter) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_entries (entry_key, entry_value, updated_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (entry_key) DO UPDATE
			  SET entry_value = EXCLUDED.entry_value, updated_at = EXCLUDED.updated_at`

	if _, err := p.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return wrapStorageError(err, "failed to write key "+key)
	}
	return nil
}

// Remove deletes the row for key.
func (p *PostgreSQLAdapter) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE entry_key = $1`
	if _, err := p.db.ExecContext(ctx, query, key); err != nil {
		return wrapStorageError(err, "failed to remove key "+key)
	}
	return nil
}

// Exists reports whether a row exists for key.
func (p *PostgreSQLAdapter) Exists(ctx context.Context, key string) (bool, error) {
	query := `SELECT COUNT(*) FROM kv_entries WHERE entry_key = $1`
	return countValue(ctx, p.db, query, key)
}

// Close is a no-op; the database handle belongs to the caller.
func (p *PostgreSQLAdapter) Close() error {
	return nil
}

// MySQLAdapter stores keys as rows of the kv_entries table in MySQL.
type MySQLAdapter struct {
	db *sql.DB
}

// NewMySQLAdapter creates a new MySQLAdapter. The database handle is not owned by the adapter.
func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// Get retrieves the value stored under key.
func (m *MySQLAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT entry_value FROM kv_entries WHERE entry_key = ?`
	return getValue(ctx, m.db, query, key)
}

// Set upserts the value stored under key.
func (m *MySQLAdapter) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_entries (entry_key, entry_value, updated_at)
			  VALUES (?, ?, ?)
			  ON DUPLICATE KEY UPDATE entry_value = VALUES(entry_value), updated_at = VALUES(updated_at)`

	if _, err := m.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return wrapStorageError(err, "failed to write key "+key)
	}
	return nil
}

// Remove deletes the row for key.
func (m *MySQLAdapter) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE entry_key = ?`
	if _, err := m.db.ExecContext(ctx, query, key); err != nil {
		return wrapStorageError(err, "failed to remove key "+key)
	}
	return nil
}

// Exists reports whether a row exists for key.
func (m *MySQLAdapter) Exists(ctx context.Context, key string) (bool, error) {
	query := `SELECT COUNT(*) FROM kv_entries WHERE entry_key = ?`
	return countValue(ctx, m.db, query, key)
}

// Close is a no-op; the database handle belongs to the caller.
func (m *MySQLAdapter) Close() error {
	return nil
}

func getValue(ctx context.Context, db *sql.DB, query, key string) ([]byte, error) {
	var value []byte
	if err := db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrKeyNotFound
		}
		return nil, wrapStorageError(err, "failed to read key "+key)
	}
	return value, nil
}

func countValue(ctx context.Context, db *sql.DB, query, key string) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, query, key).Scan(&count); err != nil {
		return false, wrapStorageError(err, "failed to check key "+key)
	}
	return count > 0, nil
}
