package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/items-api/internal/adapter"
	"github.com/MKhiriev/items-api/internal/client"
	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("client", flag.ExitOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", cfg.Adapter.HTTPAddress, "items-api server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "t", cfg.Adapter.RequestTimeout, "request timeout")
	verbose := fs.Bool("v", false, "verbose logging")
	version := fs.Bool("version", false, "print build info and exit")
	_ = fs.Parse(os.Args[1:])

	if *version {
		printBuildInfo()
		return
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewClientLogger("client", level)

	items, err := adapter.NewHTTPItemsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create items adapter")
	}

	app, err := client.NewApp(items, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, fs.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
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
