package service

import (
	"context"

	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: buildInfo.BuildVersion(),
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
