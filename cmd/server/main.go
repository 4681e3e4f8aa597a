package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/items-api/internal/app"
	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/handler"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/ratelimit"
	"github.com/MKhiriev/items-api/internal/server"
	"github.com/MKhiriev/items-api/internal/service"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger("server", cfg.Log, cfg.App)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(store.NewRepositories(db, log), *cfg, buildInfo, log)
	if err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiter, err := ratelimit.New(ctx, cfg.RateLimit, cfg.Storage.Redis, log)
	if err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}

	handlers, err := handler.NewHandlers(services, db, limiter, *cfg, log)
	if err != nil {
		_ = limiter.Close()
		_ = db.Close()
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	hooks := []server.ShutdownHook{
		{Name: "rate limiter", Close: limiter.Close},
		{Name: "database", Close: db.Close},
		{Name: "logger", Close: log.Close},
	}

	srv, err := server.NewServer(handlers, cfg.Server, limiter.Janitors(), hooks, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Msgf(app.MsgRunningOn, environment(cfg.App))
	srv.RunServer()
}

func environment(a config.App) string {
	if a.Production {
		return app.EnvProduction
	}
	return app.EnvDevelopment
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
