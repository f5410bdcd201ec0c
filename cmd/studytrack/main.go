package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/studytrack/internal/adapter"
	"github.com/MKhiriev/studytrack/internal/client"
	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/service"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/internal/tui"
	"github.com/MKhiriev/studytrack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println("studytrack", buildInfo)

	log := logger.NewClientLogger("studytrack")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	var backend adapter.Backend
	if cfg.App.Mode == config.ModeRemote {
		backend, err = adapter.NewHTTPBackend(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create backend adapter")
		}
	}

	services, err := service.NewClientServices(storages, backend, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		_ = storages.Close()
		os.Exit(1)
	}
}
