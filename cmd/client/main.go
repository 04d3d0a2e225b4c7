package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/client-admin/internal/adapter"
	"github.com/MKhiriev/client-admin/internal/client"
	"github.com/MKhiriev/client-admin/internal/config"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/tui"
	"github.com/MKhiriev/client-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("client-admin", cfg.LogFile)
	buildInfo := models.NewAppBuildInfo("client-admin", buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("api", cfg.Adapter.HTTPAddress).
		Msg("starting console")

	remote, err := adapter.NewHTTPRemoteService(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote service adapter")
	}

	ui, err := tui.New(remote, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
