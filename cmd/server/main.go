package main

import (
	"context"
	"fmt"

	"github.com/sunway-travel/vacation-booking/internal/config"
	internalhttp "github.com/sunway-travel/vacation-booking/internal/handler/http"
	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/server"
	"github.com/sunway-travel/vacation-booking/internal/service"
	"github.com/sunway-travel/vacation-booking/internal/store"
	"github.com/sunway-travel/vacation-booking/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vacation-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.App, log)

	handler := internalhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	sweeper := workers.NewSessionSweeper(storages.UserRepository, cfg.Workers.SweepInterval, log)
	background := workers.NewWorkers(sweeper)
	background.Run()
	defer sweeper.Stop()

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
