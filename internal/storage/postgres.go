package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-builder/internal/types"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS resume_store (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore keeps the blob in a key-value table in PostgreSQL
type PostgresStore struct {
	pool *pgxpool.Pool
	key  string
}

// ConnectPostgres establishes a connection pool and ensures the table exists.
// An empty key uses DefaultKey.
func ConnectPostgres(ctx context.Context, databaseURL, key string) (*PostgresStore, error) {
	if key == "" {
		key = DefaultKey
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create resume_store table: %w", err)
	}

	return &PostgresStore{pool: pool, key: key}, nil
}

// Close closes the connection pool
func (p *PostgresStore) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Get returns the stored blob, or nil if the key has no row yet
func (p *PostgresStore) Get(ctx context.Context) ([]byte, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx,
		`SELECT value::text FROM resume_store WHERE key = $1`,
		p.key,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "get", Key: p.key, Message: "failed to query resume", Cause: err}
	}
	return raw, nil
}

// Set upserts the blob for the configured key
func (p *PostgresStore) Set(ctx context.Context, data types.ResumeData) error {
	b, err := encode(p.key, data)
	if err != nil {
		return err
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO resume_store (key, value)
		 VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`,
		p.key, b,
	)
	if err != nil {
		return &StoreError{Op: "set", Key: p.key, Message: "failed to upsert resume", Cause: err}
	}
	return nil
}
