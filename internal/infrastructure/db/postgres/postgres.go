package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to open a PostgreSQL pool.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens the process-wide connection pool and verifies connectivity
// with a ping. The pool is owned by the caller and must be closed at shutdown.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the users and villages tables when missing.
// villages.owner_id carries the foreign key that backs referential
// integrity checks at village creation.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const users = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	uuid UUID NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	password_hash BYTEA NOT NULL,
	salt BYTEA NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	if _, err := db.ExecContext(ctx, users); err != nil {
		return fmt.Errorf("ensure users schema: %w", err)
	}

	const villages = `
CREATE TABLE IF NOT EXISTS villages (
	id BIGSERIAL PRIMARY KEY,
	owner_id BIGINT NOT NULL REFERENCES users (id),
	name TEXT NOT NULL,
	x INT NOT NULL DEFAULT 0,
	y INT NOT NULL DEFAULT 0,
	population INT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	if _, err := db.ExecContext(ctx, villages); err != nil {
		return fmt.Errorf("ensure villages schema: %w", err)
	}

	return nil
}
