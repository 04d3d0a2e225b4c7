package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/tui"
)

// App runs the console until the user quits or the process is signalled.
type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("ui is required")
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run implements [Client]. Leaving the console on purpose is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("console started")
	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("console stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("console interrupted")
		return nil
	default:
		return fmt.Errorf("console: %w", err)
	}
}
