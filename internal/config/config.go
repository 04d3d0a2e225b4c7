// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// admin console and the reference API server. It is populated by merging
// values from environment variables, command-line flags and an optional JSON
// file; each binary then projects the part it needs.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Adapter holds the console's connection settings for the remote API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address and timeouts of the API server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the API server's persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after env and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file the console writes its JSON log to. The console
	// owns the terminal, so it never logs to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the console's settings for talking to the remote API.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API
	// (e.g. "http://localhost:8080"). A bare host:port is accepted.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the API server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the API server's storage backend settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name passed to the driver, a file path for
	// SQLite or a connection URL for PostgreSQL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Supported values of [DB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)
