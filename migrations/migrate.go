// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of the API server and applies it
// with goose. Each supported driver has its own directory of migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("migration error: db is nil")
	ErrUnsupportedDialect = errors.New("migration error: unsupported driver")
)

// dialects maps a database/sql driver name onto the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"pgx":     {goose: "pgx", dir: "postgres"},
	"sqlite3": {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration for driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
