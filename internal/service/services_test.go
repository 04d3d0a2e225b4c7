package service_test

import (
	"testing"

	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/mock"
	"github.com/MKhiriev/client-admin/internal/service"
	"github.com/MKhiriev/client-admin/internal/store"
	"github.com/MKhiriev/client-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	repos := &store.Repositories{
		ClientRepository:  mock.NewMockClientRepository(ctrl),
		AccountRepository: mock.NewMockAccountRepository(ctrl),
	}

	t.Run("wires every service", func(t *testing.T) {
		services, err := service.NewServices(repos, models.NewAppBuildInfo("server", "1.0.0", "", ""), logger.Nop())
		require.NoError(t, err)

		assert.IsType(t, &service.ClientValidationService{}, services.ClientService)
		assert.IsType(t, &service.AccountValidationService{}, services.AccountService)
		assert.NotNil(t, services.AppInfoService)
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := service.NewServices(repos, models.NewAppBuildInfo("server", "", "", ""), logger.Nop())
		assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
	})
}
