package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/notekeeper-app/notekeeper/internal/adapter"
	"github.com/notekeeper-app/notekeeper/internal/client"
	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/service"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/internal/tui"
	"github.com/notekeeper-app/notekeeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Missing .env is fine, environment variables win anyway.
	_ = godotenv.Load()

	log := logger.NewClientLogger("notekeeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessionStore, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local session cache")
	}

	services := service.NewClientServices(sessionStore, serverAdapter, cfg, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
