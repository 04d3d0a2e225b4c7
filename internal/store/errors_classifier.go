// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It names the constraint a failed statement
// ran into, so repositories can translate it into a domain sentinel.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and for anything that is not a
	// recognised constraint violation.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that a UNIQUE constraint rejected the row.
	UniqueViolation

	// ForeignKeyViolation indicates that a referenced row does not exist.
	ForeignKeyViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	// See https://www.postgresql.org/docs/current/errcodes-appendix.html
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// extended result codes reported by mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return Unclassified
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	}

	return Unclassified
}
