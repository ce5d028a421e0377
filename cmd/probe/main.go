// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command probe checks a running validations-api server over HTTP and exits
// non-zero when it is not ready. It reads the same configuration as the
// server, so it can be used as a container health check as is.
package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/validations-api/internal/adapter"
	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const probeTimeout = 5 * time.Second

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	log := logger.NewLogger("validations-api-probe", "info")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	probe, err := adapter.NewHTTPProbeAdapter(cfg.Server.HTTPAddress, probeTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating probe")
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err = probe.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("server is not alive")
	}

	report, err := probe.Readiness(ctx)
	if err != nil {
		log.Fatal().Err(err).Any("checks", report.Checks).Msg("server is not ready")
	}

	log.Info().Str("status", report.Status).Msg("server is ready")
}
