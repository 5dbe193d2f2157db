package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/notekeeper-app/notekeeper/internal/config"
	handler "github.com/notekeeper-app/notekeeper/internal/handler/http"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/mail"
	"github.com/notekeeper-app/notekeeper/internal/server"
	"github.com/notekeeper-app/notekeeper/internal/service"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/internal/workers"
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

	log := logger.NewLogger("notekeeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	blob, err := store.NewMinioBlobStore(ctx, cfg.Storage.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to blob storage")
	}

	repos := store.NewRepositories(db, blob, log)
	sender := mail.NewSender(cfg.Mail, log)
	services := service.NewServices(repos, sender, cfg, log)

	router := handler.NewHandler(services, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewCodePurgeWorker(repos.CodeRepository, cfg.Workers, log),
	)
	background.Run(ctx)

	srv.RunServer()
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
