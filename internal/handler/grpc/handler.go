// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the readiness report over the standard gRPC health
// checking protocol (grpc.health.v1).
package grpc

import (
	"context"

	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/internal/service"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the health service name answered besides the empty
// overall-server name.
const ServiceName = "validations-api"

// Handler is the root gRPC transport handler. It answers health checks
// from [service.HealthService], so HTTP and gRPC probes always agree.
type Handler struct {
	healthpb.UnimplementedHealthServer

	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check reports SERVING when the readiness report is ready and NOT_SERVING
// otherwise. Unknown service names yield codes.NotFound.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}

	report := h.services.HealthService.Readiness(ctx)
	if !report.Ready() {
		h.logger.Debug().Str("status", report.Status).Msg("gRPC health check: not serving")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
