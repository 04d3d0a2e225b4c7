// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/client-admin/internal/logger"

// Repositories groups every repository the server needs.
type Repositories struct {
	ClientRepository  ClientRepository
	AccountRepository AccountRepository
}

// NewRepositories builds the repositories on top of db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		ClientRepository:  NewClientRepository(db, logger),
		AccountRepository: NewAccountRepository(db, logger),
	}
}
