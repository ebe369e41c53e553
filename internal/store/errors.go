// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user cannot be created
	// because the username is taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the given username.
	ErrUserNotFound = errors.New("user was not found")

	// ErrProductNotFound is returned when no product has the given id.
	ErrProductNotFound = errors.New("product was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository and session methods when a SQL-level operation fails before
// any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when running a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrAcquiringSession is returned when no connection can be taken
	// from the pool.
	ErrAcquiringSession = errors.New("failed to acquire database session")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned by Open for database URLs of an
	// unknown scheme.
	ErrUnsupportedDSN = errors.New("unsupported database url")
)
