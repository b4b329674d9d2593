// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package database handles SQL connection management and migration
// execution using goose. The saved-concepts slot lives in a single
// key/value table, so the same migrations serve both the embedded SQLite
// file used on a laptop and a shared PostgreSQL server.
package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var embedMigrations embed.FS

// Supported dialects. The value doubles as the database/sql driver name
// registered by the blank imports above.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "pgx"
)

// Connect opens a connection pool for the given dialect and verifies it
// with a ping before returning.
func Connect(dialect, dsn string) (*sql.DB, error) {
	if dialect != DialectSQLite && dialect != DialectPostgres {
		return nil, fmt.Errorf("database: unsupported dialect %q", dialect)
	}

	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}

	if dialect == DialectSQLite {
		// SQLite allows a single writer; serialise access instead of
		// surfacing SQLITE_BUSY to callers.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("database connected", "dialect", dialect)
	return db, nil
}

// Migrate runs all pending goose migrations from the embedded SQL files.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	gooseDialect := "postgres"
	if dialect == DialectSQLite {
		gooseDialect = "sqlite3"
	}
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	slog.Info("database migrations applied", "dialect", dialect)
	return nil
}
