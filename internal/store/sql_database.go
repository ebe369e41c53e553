// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/migrations"
)

// sqliteMemory is the data source of the sqlite:// URL. The cache is shared
// so every pooled connection sees the same database.
const sqliteMemory = "file::memory:?cache=shared"

// DB is a connection pool bound to its [Dialect].
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// Open resolves cfg.DSN to a driver, opens the pool and pings it.
//
// Accepted URLs:
//
//	sqlite:///relative.db   -> relative.db
//	sqlite:////abs/path.db  -> /abs/path.db
//	sqlite://               -> shared in-memory database
//	postgres://... and postgresql://... (pgx)
//	anything without a scheme is an sqlite data source
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, source, err := parseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error parsing database url")
		return nil, err
	}

	conn, err := sql.Open(dialect.Driver, source)
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if dialect.Driver == SQLite.Driver {
		// sqlite serializes writers; one connection avoids SQLITE_BUSY and
		// keeps an in-memory database alive
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxIdleTime(0)
		conn.SetConnMaxLifetime(0)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "store.Open").Str("driver", dialect.Driver).Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}, nil
}

// NewDB wraps an already opened pool. Intended for tests.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{DB: conn, dialect: dialect, logger: log}
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the database dialect.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect.Name)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}
	db.logger.Info().Str("func", "*DB.Migrate").Int("applied", applied).Msg("database schema is up to date")

	return nil
}

func parseDSN(dsn string) (Dialect, string, error) {
	scheme, rest, found := strings.Cut(dsn, "://")
	if !found {
		if dsn == "" {
			return Dialect{}, "", fmt.Errorf("%w: empty", ErrUnsupportedDSN)
		}
		return SQLite, dsn, nil
	}

	switch scheme {
	case "sqlite":
		// sqlite:///x.db keeps one slash as the separator, sqlite:////x.db
		// leaves an absolute path
		path := strings.TrimPrefix(rest, "/")
		if path == "" || path == ":memory:" {
			return SQLite, sqliteMemory, nil
		}
		return SQLite, path, nil
	case "postgres", "postgresql":
		return Postgres, dsn, nil
	default:
		return Dialect{}, "", fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
	}
}
