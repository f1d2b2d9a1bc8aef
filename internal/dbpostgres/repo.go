// Package dbpostgres keeps stored collections as rows of a Postgres table.
package dbpostgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"campusbuzz/internal/config"
)

const entriesTable = "kv_entries"

const createEntriesTable = `CREATE TABLE IF NOT EXISTS kv_entries (
	entry_key   TEXT PRIMARY KEY,
	entry_value TEXT NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Repository is a sqlx-backed common.Medium.
type Repository struct {
	connection *sqlx.DB
}

// New connects to Postgres and makes sure the entry table exists.
func New(ctx context.Context, cfg *config.Config) (*Repository, error) {
	conn, err := sqlx.ConnectContext(ctx, "postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	repo := NewWithDB(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return repo, nil
}

func NewWithDB(conn *sqlx.DB) *Repository {
	return &Repository{connection: conn}
}

func (r *Repository) Close() error {
	return r.connection.Close()
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.connection.ExecContext(ctx, createEntriesTable); err != nil {
		return fmt.Errorf("failed to create %s: %w", entriesTable, err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := sq.Select("entry_value").
		From(entriesTable).
		Where(sq.Eq{"entry_key": key}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build sql query: %w", err)
	}

	var value string
	err = r.connection.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch entry: %w", err)
	}
	return []byte(value), true, nil
}

func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert(entriesTable).
		Columns("entry_key", "entry_value", "updated_at").
		Values(key, string(value), sq.Expr("now()")).
		Suffix("ON CONFLICT (entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %w", err)
	}

	if _, err := r.connection.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}
