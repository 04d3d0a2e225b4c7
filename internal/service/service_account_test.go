package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/mock"
	"github.com/MKhiriev/client-admin/internal/service"
	"github.com/MKhiriev/client-admin/internal/store"
	"github.com/MKhiriev/client-admin/internal/validators"
	"github.com/MKhiriev/client-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAccountService(t *testing.T) (service.AccountService, *mock.MockAccountRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)

	svc := service.NewAccountValidationService().Wrap(service.NewAccountService(repo, logger.Nop()))
	return svc, repo
}

func TestAccountService_ListAccounts(t *testing.T) {
	t.Run("scoped to client", func(t *testing.T) {
		svc, repo := newAccountService(t)
		want := []models.Account{{ID: 10, Name: "Savings", ClientID: 4}}
		repo.EXPECT().ListAccounts(gomock.Any(), int64(4)).Return(want, nil)

		got, err := svc.ListAccounts(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing client id", func(t *testing.T) {
		svc, _ := newAccountService(t)

		_, err := svc.ListAccounts(context.Background(), 0)
		assert.ErrorIs(t, err, validators.ErrInvalidClientID)
	})
}

func TestAccountService_CreateAccount(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, repo := newAccountService(t)
		repo.EXPECT().
			CreateAccount(gomock.Any(), models.Account{Name: "Savings", ClientID: 4}).
			Return(models.Account{ID: 10, Name: "Savings", ClientID: 4}, nil)

		got, err := svc.CreateAccount(context.Background(), models.Account{ID: 77, Name: "Savings", ClientID: 4})
		require.NoError(t, err)
		assert.Equal(t, int64(10), got.ID)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _ := newAccountService(t)

		_, err := svc.CreateAccount(context.Background(), models.Account{ClientID: 4})
		assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyName)
	})

	t.Run("unknown owner", func(t *testing.T) {
		svc, repo := newAccountService(t)
		repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrOwnerNotFound)

		_, err := svc.CreateAccount(context.Background(), models.Account{Name: "Savings", ClientID: 99})
		assert.ErrorIs(t, err, store.ErrOwnerNotFound)
	})
}

func TestAccountService_UpdateAccount(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc, repo := newAccountService(t)
		account := models.Account{ID: 10, Name: "Main", ClientID: 4}
		repo.EXPECT().UpdateAccount(gomock.Any(), account).Return(nil)

		assert.NoError(t, svc.UpdateAccount(context.Background(), account))
	})

	t.Run("missing id", func(t *testing.T) {
		svc, _ := newAccountService(t)

		err := svc.UpdateAccount(context.Background(), models.Account{Name: "Main", ClientID: 4})
		assert.ErrorIs(t, err, validators.ErrInvalidID)
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, repo := newAccountService(t)
		repo.EXPECT().DeleteAccount(gomock.Any(), int64(10)).Return(nil)

		assert.NoError(t, svc.DeleteAccount(context.Background(), 10))
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newAccountService(t)
		repo.EXPECT().DeleteAccount(gomock.Any(), int64(10)).Return(store.ErrAccountNotFound)

		assert.ErrorIs(t, svc.DeleteAccount(context.Background(), 10), store.ErrAccountNotFound)
	})

	t.Run("negative id", func(t *testing.T) {
		svc, _ := newAccountService(t)

		assert.ErrorIs(t, svc.DeleteAccount(context.Background(), -1), validators.ErrInvalidID)
	})
}
