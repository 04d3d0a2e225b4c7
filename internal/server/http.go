package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/client-admin/internal/app"
	"github.com/MKhiriev/client-admin/internal/config"
	"github.com/MKhiriev/client-admin/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer bounds every request by cfg.RequestTimeout.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           http.TimeoutHandler(handler, cfg.RequestTimeout, app.MsgRequestTimedOut),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// RunServer blocks until the listener stops. A graceful shutdown is not an
// error.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("launching HTTP server")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
