// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/handler"
	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/internal/server"
	"github.com/MKhiriev/validations-api/internal/service"
	"github.com/MKhiriev/validations-api/internal/store"
	"github.com/MKhiriev/validations-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("validations-api-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("validations-api-server", cfg.App.LogLevel)
	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("https_address", cfg.Server.HTTPSAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, cfg.Server.ReadinessTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	var checkers []service.Checker
	if storages.DB != nil {
		checkers = append(checkers, storages.DB)
	}

	services, err := service.NewServices(cfg, checkers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services.HealthService, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer(ctx)

	if err = storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}
