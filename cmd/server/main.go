package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/jrebel-license-server/internal/config"
	"github.com/MKhiriev/jrebel-license-server/internal/handler"
	"github.com/MKhiriev/jrebel-license-server/internal/kenger"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/metrics"
	"github.com/MKhiriev/jrebel-license-server/internal/server"
	"github.com/MKhiriev/jrebel-license-server/internal/service"
	"github.com/MKhiriev/jrebel-license-server/internal/store"
	"github.com/MKhiriev/jrebel-license-server/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const bootstrapTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("jrebel-server", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("jrebel-server", cfg.Server.Debug)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	// Everything below the config load degrades instead of failing: a
	// broken config service, registry, or database still leaves a
	// serving HTTP process behind.
	client, err := kenger.NewClient(cfg.ConfigServer.URL, cfg.ConfigServer.Token, cfg.Server.RequestTimeout)
	if err != nil {
		log.Warn().Err(err).Msg("config service client not created, continuing with env/default configuration")
	}

	var remote config.RemoteSource
	if client != nil {
		remote = client.Config()
	}
	resolver := config.NewResolver(remote, log)
	settings := resolver.BuildSettings(ctx, cfg)

	storages := store.NewStorages(ctx, settings.MySQL, log)

	signer, err := service.NewSigner(settings.SigningKeyPEM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating license signer")
	}

	services, err := service.NewServices(storages, settings, signer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	m := metrics.New()
	handlers := handler.NewHandlers(services, m, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	registry := kenger.InitServiceRegistry(client, cfg.Registry, log)
	workers.NewWorkers(registry, storages.LicenseRepository, m, log).Run()

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
