package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sunway-travel/vacation-booking/internal/adapter"
	"github.com/sunway-travel/vacation-booking/internal/client"
	"github.com/sunway-travel/vacation-booking/internal/config"
	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/session"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vacation-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()

	var cache *session.SessionCache
	if cfg.Client.SessionCachePath != "" {
		cache, err = session.NewSessionCache(ctx, cfg.Client.SessionCachePath, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create session cache")
		}
		defer cache.Close()
	}

	app := client.NewApp(serverAdapter, session.NewStore(), cache, cfg.Client, log)

	// config flags are consumed by GetStructuredConfig; what remains is the
	// subcommand and its arguments.
	if err = app.Run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
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
