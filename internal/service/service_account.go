package service

import (
	"context"

	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/store"
	"github.com/MKhiriev/client-admin/models"
)

type accountService struct {
	accountRepository store.AccountRepository

	logger *logger.Logger
}

func NewAccountService(accountRepository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		logger:            logger,
	}
}

func (s *accountService) ListAccounts(ctx context.Context, clientID int64) ([]models.Account, error) {
	return s.accountRepository.ListAccounts(ctx, clientID)
}

func (s *accountService) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	account.ID = 0
	return s.accountRepository.CreateAccount(ctx, account)
}

func (s *accountService) UpdateAccount(ctx context.Context, account models.Account) error {
	return s.accountRepository.UpdateAccount(ctx, account)
}

func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.accountRepository.DeleteAccount(ctx, id)
}
