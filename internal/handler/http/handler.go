package http

import (
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/service"
	"github.com/MKhiriev/client-admin/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *httpMetrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  newHTTPMetrics(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
