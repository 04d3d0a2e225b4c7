// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/client-admin/internal/config"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteMemoryDSN = ":memory:"

// NewConnectSQLite opens (and creates if needed) a SQLite database file.
//
// SQLite enforces foreign keys per connection, so the pool is limited to a
// single connection on which the pragma is enabled once.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sqlx.Open(config.DriverSQLite, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error enabling foreign keys")
		_ = conn.Close()
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, config.DriverSQLite, log), nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == "" || dbFile == sqliteMemoryDSN || strings.HasPrefix(dbFile, "file:") {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
