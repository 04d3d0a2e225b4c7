package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/client-admin/internal/config"
	"github.com/MKhiriev/client-admin/internal/handler"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/server"
	"github.com/MKhiriev/client-admin/internal/service"
	"github.com/MKhiriev/client-admin/internal/store"
	"github.com/MKhiriev/client-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("client-admin-server")

	buildInfo := newBuildInfo()
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func newBuildInfo() models.AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	return models.NewAppBuildInfo("client-admin-server", orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}
