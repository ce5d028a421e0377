// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers built on top of the
// service layer.
package handler

import (
	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/handler/grpc"
	"github.com/MKhiriev/validations-api/internal/handler/http"
	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport that has a listen
// address. The HTTP handler serves both the plain and the TLS listener.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" || cfg.Server.HTTPSAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
