package main

import (
	"context"
	"fmt"

	"github.com/vndocs/govportal/internal/config"
	httphandler "github.com/vndocs/govportal/internal/handler/http"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/server"
	"github.com/vndocs/govportal/internal/service"
	"github.com/vndocs/govportal/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("govportal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	files, err := store.NewDiskFileStore(cfg.Storage.Files, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating file store")
	}

	storages := store.NewStorages(store.NewTableRepository(db, log), files)
	auth := service.NewAuthService(cfg.Auth, log)
	handler := httphandler.NewHandler(auth, storages, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
