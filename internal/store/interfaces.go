// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists clients and accounts for the reference API server.
//
// Repositories build their SQL with squirrel and run it through sqlx, so the
// same code serves SQLite and PostgreSQL; only the placeholder format and the
// error classifier differ per driver.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/client-admin/models"
)

// ClientRepository stores [models.Client] rows.
type ClientRepository interface {
	// ListClients returns every client ordered by id.
	ListClients(ctx context.Context) ([]models.Client, error)
	// CreateClient inserts client and returns it with the assigned id.
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	// UpdateClient replaces the row identified by client.ID.
	UpdateClient(ctx context.Context, client models.Client) error
	// DeleteClient removes a client together with its accounts.
	DeleteClient(ctx context.Context, id int64) error
}

// AccountRepository stores [models.Account] rows.
type AccountRepository interface {
	ListAccounts(ctx context.Context, clientID int64) ([]models.Account, error)
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// UpdateAccount renames the account identified by account.ID under its
	// owner account.ClientID. The owner itself is never rewritten.
	UpdateAccount(ctx context.Context, account models.Account) error
	DeleteAccount(ctx context.Context, id int64) error
}

// ErrorClassificator classifies driver errors into [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
