package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/emulator"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/server"
	"github.com/MKhiriev/studytrack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println("studytrack-emulator", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("studytrack-emulator")
	cfg, err := config.GetEmulatorConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	srv, err := server.NewServer(emulator.NewHandler(*cfg, log).Init(), cfg.HTTPAddress, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating emulator server")
	}
	srv.RunServer()
}
