// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the public health surface of a
// running validations-api server.
//
// It backs the probe command used as a container health check. Non-2xx
// responses are mapped to the sentinel errors in errors.go, so callers can
// branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/validations-api/models"
)

// ProbeAdapter queries the health endpoints of a server.
type ProbeAdapter interface {
	// Ping calls GET /ping and fails unless the body is "pong".
	Ping(ctx context.Context) error

	// Liveness calls GET /health/live.
	Liveness(ctx context.Context) (models.Liveness, error)

	// Readiness calls GET /health/ready. A 503 still returns the decoded
	// report together with [ErrNotReady].
	Readiness(ctx context.Context) (models.Readiness, error)

	// Version calls GET /api/version.
	Version(ctx context.Context) (string, error)
}
