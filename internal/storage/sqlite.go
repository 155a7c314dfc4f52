package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// memoryDSN keeps the database inside the process; nothing touches disk.
const memoryDSN = ":memory:"

// SQLiteStorage implements service.TransactionStore on an in-memory SQLite
// database.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens a private in-memory database. Call Migrate before use.
func NewSQLiteStorage() (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every new connection to :memory: is a fresh, empty database, so the
	// pool must hold exactly one connection for the life of the store.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection and discards its contents.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// queryable is an interface satisfied by both *sql.DB and *sql.Tx.
type queryable interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
