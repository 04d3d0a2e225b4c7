package service

import (
	"context"

	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/store"
	"github.com/MKhiriev/client-admin/models"
)

type clientService struct {
	clientRepository store.ClientRepository

	logger *logger.Logger
}

func NewClientService(clientRepository store.ClientRepository, logger *logger.Logger) ClientService {
	return &clientService{
		clientRepository: clientRepository,
		logger:           logger,
	}
}

func (s *clientService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.clientRepository.ListClients(ctx)
}

// CreateClient ignores any id supplied by the caller; the database assigns it.
func (s *clientService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	client.ID = 0
	return s.clientRepository.CreateClient(ctx, client)
}

func (s *clientService) UpdateClient(ctx context.Context, client models.Client) error {
	return s.clientRepository.UpdateClient(ctx, client)
}

func (s *clientService) DeleteClient(ctx context.Context, id int64) error {
	return s.clientRepository.DeleteClient(ctx, id)
}
