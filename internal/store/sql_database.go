// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/client-admin/internal/config"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/migrations"
	"github.com/jmoiron/sqlx"
)

// DB is a database handle shared by all repositories. It carries the
// driver-specific pieces repositories need: a squirrel statement builder
// with the right placeholder format and a classifier that turns driver
// errors into [ErrorClassification] values.
type DB struct {
	*sqlx.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sqlx.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Migrate applies the embedded schema migrations for the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB.DB, db.driver)
}

// classify maps a driver error onto a store classification. A nil
// classifier treats every error as [Unclassified].
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// expectAffected returns notFound when a statement matched no rows.
func expectAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
