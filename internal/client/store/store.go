// Package store persists the client's session credentials between runs in a
// local SQLite database. The cached token is the CLI analog of a browser
// session cookie: it is what the session probe on startup tries to resume.
package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/ssolovjova/recipebox/internal/dbx"
)

//go:embed migrations/*.sql
var migrations embed.FS

const tokenKey = "session_token"

// Store is a small key-value credential store backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the credential database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate credential db: %w", err)
	}
	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set credentials[%s]: %w", key, err)
	}
	return nil
}

// Token returns the cached session token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, tokenKey)
}

// SaveToken replaces the cached session token.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.set(ctx, s.db, tokenKey, token)
}

// ClearToken removes all cached credentials (used on logout).
func (s *Store) ClearToken(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
			return fmt.Errorf("clear credentials: %w", err)
		}
		return nil
	})
}
