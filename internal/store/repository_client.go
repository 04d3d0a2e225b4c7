// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/models"
)

const clientsTable = "clients"

var clientColumns = []string{"id", "national_id", "name", "birth_date"}

// clientRepository is the SQL implementation of [ClientRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// database failures are logged with the request's trace id.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by db.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// ListClients returns all clients ordered by id.
func (r *clientRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(clientColumns...).
		From(clientsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	clients := make([]models.Client, 0)
	if err = r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		log.Err(err).Str("func", "*clientRepository.ListClients").Msg("error selecting clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return clients, nil
}

// CreateClient inserts a client and returns the stored row, including the
// id assigned by the database.
//
// Error handling:
//   - unique violation on national_id → [ErrNationalIDAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(clientsTable).
		Columns("national_id", "name", "birth_date").
		Values(client.NationalID, client.Name, client.BirthDate).
		Suffix("RETURNING id, national_id, name, birth_date").
		ToSql()
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Client
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*clientRepository.CreateClient").Msg("error inserting client")
		return models.Client{}, r.translate(err)
	}

	return created, nil
}

// UpdateClient overwrites every editable column of the client with the
// given id. Zero affected rows means the id is unknown.
func (r *clientRepository) UpdateClient(ctx context.Context, client models.Client) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(clientsTable).
		Set("national_id", client.NationalID).
		Set("name", client.Name).
		Set("birth_date", client.BirthDate).
		Where(sq.Eq{"id": client.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.UpdateClient").Int64("client_id", client.ID).Msg("error updating client")
		return r.translate(err)
	}

	return expectAffected(result, ErrClientNotFound)
}

// DeleteClient removes the client. Its accounts go with it through the
// ON DELETE CASCADE foreign key.
func (r *clientRepository) DeleteClient(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Int64("client_id", id).Msg("error deleting client")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrClientNotFound)
}

func (r *clientRepository) translate(err error) error {
	switch r.db.classify(err) {
	case UniqueViolation:
		return ErrNationalIDAlreadyExists
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
