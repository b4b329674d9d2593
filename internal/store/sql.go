// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"graphicsstudio/internal/database"
)

// SQLKV stores values in the kv_store table created by the database
// migrations. It works against both SQLite and PostgreSQL; only the
// placeholder syntax differs.
type SQLKV struct {
	db       *sql.DB
	getQuery string
	setQuery string
}

// NewSQLKV returns a KV backed by the given database. dialect is one of
// database.DialectSQLite or database.DialectPostgres.
func NewSQLKV(db *sql.DB, dialect string) *SQLKV {
	s := &SQLKV{
		db:       db,
		getQuery: `SELECT value FROM kv_store WHERE key = $1`,
		setQuery: `
			INSERT INTO kv_store (key, value, updated_at)
			VALUES ($1, $2, CURRENT_TIMESTAMP)
			ON CONFLICT (key)
			DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
	}
	if dialect == database.DialectSQLite {
		s.getQuery = `SELECT value FROM kv_store WHERE key = ?`
		s.setQuery = `
			INSERT INTO kv_store (key, value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (key)
			DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	}
	return s
}

// Get returns the value stored under key.
func (s *SQLKV) Get(ctx context.Context, key string) ([]byte, error) {
	var val string
	err := s.db.QueryRowContext(ctx, s.getQuery, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return []byte(val), nil
}

// Set upserts the value stored under key.
func (s *SQLKV) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.setQuery, key, string(value)); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}
