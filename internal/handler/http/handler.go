// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/internal/router"
	"github.com/MKhiriev/validations-api/internal/service"
	"github.com/MKhiriev/validations-api/internal/utils"
)

type Handler struct {
	services *service.Services

	app    config.App
	server config.Server

	traceIDs *utils.UUIDGenerator
	metrics  *httpMetrics
	table    *router.Table

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      cfg.App,
		server:   cfg.Server,
		traceIDs: utils.NewUUIDGenerator(),
		metrics:  newHTTPMetrics(),
		logger:   logger,
	}
}
