// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-shop/internal/logger"
)

// Querier is the subset of database/sql shared by *sql.DB, *sql.Conn and
// *sql.Tx. Repositories run every statement through it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SessionFunc is the body of a session. q is valid only until it returns.
type SessionFunc func(ctx context.Context, q Querier) error

// SessionProvider hands out one database connection per call and releases
// it when fn returns, fails or panics.
type SessionProvider interface {
	// WithSession runs fn on a dedicated connection.
	WithSession(ctx context.Context, fn SessionFunc) error

	// WithTx runs fn inside a transaction on a dedicated connection. The
	// transaction is committed when fn returns nil and rolled back when fn
	// returns an error or panics. Panics are re-raised after rollback.
	WithTx(ctx context.Context, fn SessionFunc) error
}

type sessionProvider struct {
	db *sql.DB
}

// NewSessionProvider returns a [SessionProvider] over the pool of db.
func NewSessionProvider(db *DB) SessionProvider {
	return &sessionProvider{db: db.DB}
}

func (s *sessionProvider) WithSession(ctx context.Context, fn SessionFunc) error {
	conn, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer s.release(ctx, conn)

	return fn(ctx, conn)
}

func (s *sessionProvider) WithTx(ctx context.Context, fn SessionFunc) (err error) {
	conn, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer s.release(ctx, conn)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionProvider.WithTx").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			logger.FromContext(ctx).Err(commitErr).Str("func", "*sessionProvider.WithTx").Msg("error commiting transaction")
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	err = fn(ctx, tx)
	return err
}

func (s *sessionProvider) acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionProvider.acquire").Msg("error acquiring connection")
		return nil, fmt.Errorf("%w: %w", ErrAcquiringSession, err)
	}

	return conn, nil
}

func (s *sessionProvider) release(ctx context.Context, conn *sql.Conn) {
	if err := conn.Close(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionProvider.release").Msg("error releasing connection")
	}
}
