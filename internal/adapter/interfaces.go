// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the console uses to talk to
// the remote client/account API.
//
// The primary abstraction is [RemoteService], which decouples the managers
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteService]) built on resty.
//
// Every call either succeeds with the documented status code or returns one
// of two typed errors: [NetworkError] when the request could not complete, and
// [UnexpectedStatusError] when the server answered with any other status. A
// documented status whose body is not valid JSON yields an error wrapping
// [ErrDecodeResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/client-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_service_mock.go -package=mock

// RemoteService defines CRUD access to clients and accounts held by the
// remote API. Implementations perform no validation of their own; the server
// is the only authority on what a valid record is.
type RemoteService interface {
	// ListClients returns every client known to the server, in server order.
	ListClients(ctx context.Context) ([]models.Client, error)

	// CreateClient submits a new client. The ID of client is ignored and the
	// server-assigned record is returned.
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)

	// UpdateClient replaces the client identified by client.ID wholesale.
	UpdateClient(ctx context.Context, client models.Client) error

	// DeleteClient removes the client with the given ID.
	DeleteClient(ctx context.Context, id int64) error

	// ListAccounts returns the accounts owned by clientID.
	ListAccounts(ctx context.Context, clientID int64) ([]models.Account, error)

	// CreateAccount submits a new account for account.ClientID.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// UpdateAccount replaces the account identified by account.ID wholesale.
	UpdateAccount(ctx context.Context, account models.Account) error

	// DeleteAccount removes the account with the given ID.
	DeleteAccount(ctx context.Context, id int64) error
}
