// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop/migrations"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. Only uniqueness violations are singled
// out; every other failure is reported as it is.
type ErrorClassification int

const (
	// Unclassified is the default for errors with no special handling.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a UNIQUE or PRIMARY KEY constraint failure.
	UniqueViolation
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Dialect bundles what differs between the supported SQL backends.
type Dialect struct {
	// Name is the migration dialect name.
	Name string

	// Driver is the database/sql driver name.
	Driver string

	placeholder sq.PlaceholderFormat
	classifier  ErrorClassificator
}

var (
	SQLite = Dialect{
		Name:        migrations.DialectSQLite,
		Driver:      "sqlite3",
		placeholder: sq.Question,
		classifier:  NewSQLiteErrorClassifier(),
	}

	Postgres = Dialect{
		Name:        migrations.DialectPostgres,
		Driver:      "pgx",
		placeholder: sq.Dollar,
		classifier:  NewPostgresErrorClassifier(),
	}
)

// builder returns a statement builder with the dialect placeholder format.
func (d Dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// Classify implements [ErrorClassificator].
func (d Dialect) Classify(err error) ErrorClassification {
	if err == nil || d.classifier == nil {
		return Unclassified
	}

	return d.classifier.Classify(err)
}
