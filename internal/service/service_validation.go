package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/client-admin/internal/validators"
	"github.com/MKhiriev/client-admin/models"
)

// ClientValidationService rejects malformed clients before they reach the
// wrapped service. Failures wrap [ErrInvalidDataProvided].
type ClientValidationService struct {
	inner     ClientService
	validator validators.Validator
}

func NewClientValidationService() ClientServiceWrapper {
	return &ClientValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *ClientValidationService) ListClients(ctx context.Context) ([]models.Client, error) {
	return v.inner.ListClients(ctx)
}

func (v *ClientValidationService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	if err := v.validator.Validate(ctx, client); err != nil {
		return models.Client{}, invalid(err)
	}

	return v.inner.CreateClient(ctx, client)
}

func (v *ClientValidationService) UpdateClient(ctx context.Context, client models.Client) error {
	if err := v.validator.Validate(ctx, client,
		validators.FieldID,
		validators.FieldNationalID,
		validators.FieldName,
		validators.FieldBirthDate,
	); err != nil {
		return invalid(err)
	}

	return v.inner.UpdateClient(ctx, client)
}

func (v *ClientValidationService) DeleteClient(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.Client{ID: id}, validators.FieldID); err != nil {
		return invalid(err)
	}

	return v.inner.DeleteClient(ctx, id)
}

func (v *ClientValidationService) Wrap(inner ClientService) ClientService {
	v.inner = inner
	return v
}

// AccountValidationService rejects malformed accounts before they reach the
// wrapped service. Failures wrap [ErrInvalidDataProvided].
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *AccountValidationService) ListAccounts(ctx context.Context, clientID int64) ([]models.Account, error) {
	if err := v.validator.Validate(ctx, models.Account{ClientID: clientID}, validators.FieldClientID); err != nil {
		return nil, invalid(err)
	}

	return v.inner.ListAccounts(ctx, clientID)
}

func (v *AccountValidationService) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if err := v.validator.Validate(ctx, account); err != nil {
		return models.Account{}, invalid(err)
	}

	return v.inner.CreateAccount(ctx, account)
}

func (v *AccountValidationService) UpdateAccount(ctx context.Context, account models.Account) error {
	if err := v.validator.Validate(ctx, account,
		validators.FieldID,
		validators.FieldName,
		validators.FieldClientID,
	); err != nil {
		return invalid(err)
	}

	return v.inner.UpdateAccount(ctx, account)
}

func (v *AccountValidationService) DeleteAccount(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.Account{ID: id}, validators.FieldID); err != nil {
		return invalid(err)
	}

	return v.inner.DeleteAccount(ctx, id)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
