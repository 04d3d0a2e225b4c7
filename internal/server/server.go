package server

import (
	"context"
	"time"

	"github.com/MKhiriev/client-admin/internal/config"
	"github.com/MKhiriev/client-admin/internal/handler"
	"github.com/MKhiriev/client-admin/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer starts the HTTP server and waits for ctx to end (the caller
// ties it to SIGINT/SIGTERM) or for the listener to fail.
func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("error during server shutdown")
		return err
	}

	// ListenAndServe returns as soon as Shutdown starts
	if err := <-errCh; err != nil {
		return err
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
