package service

import (
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/store"
	"github.com/MKhiriev/client-admin/models"
)

type Services struct {
	ClientService  ClientService
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices assembles the validated services over repos.
func NewServices(repos *store.Repositories, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ClientService:  NewClientValidationService().Wrap(NewClientService(repos.ClientRepository, logger)),
		AccountService: NewAccountValidationService().Wrap(NewAccountService(repos.AccountRepository, logger)),
		AppInfoService: appInfo,
	}, nil
}
