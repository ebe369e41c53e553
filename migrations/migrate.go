// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the versioned schema of go-shop, one directory
// per SQL dialect, and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Supported dialect names.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

var ErrUnknownDialect = errors.New("unknown migration dialect")

// Migrate applies every pending migration of dialect to db and returns the
// number of applied migrations.
func Migrate(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	gooseDialect, dir, err := resolve(dialect)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return 0, fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}

func resolve(dialect string) (goose.Dialect, string, error) {
	switch dialect {
	case DialectSQLite:
		return goose.DialectSQLite3, "sqlite", nil
	case DialectPostgres:
		return goose.DialectPostgres, "postgres", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}
