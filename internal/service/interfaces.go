// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business operations of the reference API server.
// Each service is a thin layer over a store repository; validation is added
// by wrapping a service with its validation decorator.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/client-admin/models"
)

type ClientService interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, client models.Client) error
	DeleteClient(ctx context.Context, id int64) error
}

type AccountService interface {
	ListAccounts(ctx context.Context, clientID int64) ([]models.Account, error)
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	UpdateAccount(ctx context.Context, account models.Account) error
	DeleteAccount(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClientServiceWrapper defines middleware composition for ClientService.
// Implementations wrap an existing ClientService to add behavior such as
// validating.
type ClientServiceWrapper interface {
	Wrap(ClientService) ClientService // returns a decorated ClientService applying additional behavior
}

// AccountServiceWrapper defines middleware composition for AccountService.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}
