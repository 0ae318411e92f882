package main

import (
	"fmt"

	"github.com/vndocs/govportal/internal/client"
	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewPortalLogger("govportal")
	cfg, err := config.GetPortalConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init portal error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("portal run error")
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
