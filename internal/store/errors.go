// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrClientNotFound is returned when an update or delete targets a client
	// id that does not exist.
	ErrClientNotFound = errors.New("client was not found")

	// ErrAccountNotFound is returned when an update or delete targets an
	// account id that does not exist.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrNationalIDAlreadyExists is returned when a client insert or update
	// collides with another client's national ID.
	ErrNationalIDAlreadyExists = errors.New("national id already exists")

	// ErrOwnerNotFound is returned when an account refers to a client that
	// does not exist.
	ErrOwnerNotFound = errors.New("account owner does not exist")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
