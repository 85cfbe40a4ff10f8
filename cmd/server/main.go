package main

import (
	"context"
	"fmt"

	"github.com/brucethesloth/TradingAgents/internal/config"
	"github.com/brucethesloth/TradingAgents/internal/handler"
	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/server"
	"github.com/brucethesloth/TradingAgents/internal/service"
	"github.com/brucethesloth/TradingAgents/internal/store"
	"github.com/brucethesloth/TradingAgents/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("trading-agents-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	if err := migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	services := service.NewServices(storages, cfg.Auth, log)
	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
