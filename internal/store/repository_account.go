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

const accountsTable = "accounts"

var accountColumns = []string{"id", "name", "client_id"}

// accountRepository is the SQL implementation of [AccountRepository].
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// ListAccounts returns the accounts of one client ordered by id. An unknown
// client simply has no accounts.
func (r *accountRepository) ListAccounts(ctx context.Context, clientID int64) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	accounts := make([]models.Account, 0)
	if err = r.db.SelectContext(ctx, &accounts, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Int64("client_id", clientID).Msg("error selecting accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return accounts, nil
}

// CreateAccount inserts an account for account.ClientID.
//
// Error handling:
//   - foreign key violation → [ErrOwnerNotFound].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(accountsTable).
		Columns("name", "client_id").
		Values(account.Name, account.ClientID).
		Suffix("RETURNING id, name, client_id").
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Account
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Int64("client_id", account.ClientID).Msg("error inserting account")
		return models.Account{}, r.translate(err)
	}

	return created, nil
}

// UpdateAccount overwrites the account's name. The owner never changes: the
// row is matched on both id and client_id, so an account addressed under
// another client is reported as ErrAccountNotFound.
func (r *accountRepository) UpdateAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(accountsTable).
		Set("name", account.Name).
		Where(sq.Eq{"id": account.ID, "client_id": account.ClientID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Int64("account_id", account.ID).Int64("client_id", account.ClientID).Msg("error updating account")
		return r.translate(err)
	}

	return expectAffected(result, ErrAccountNotFound)
}

// DeleteAccount removes one account.
func (r *accountRepository) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Int64("account_id", id).Msg("error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrAccountNotFound)
}

func (r *accountRepository) translate(err error) error {
	switch r.db.classify(err) {
	case ForeignKeyViolation:
		return ErrOwnerNotFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
