// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/validations-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies the bearer tokens guarding protected
// routes.
type AuthService interface {
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes static facts about the running process.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetEnvironment(ctx context.Context) string
	Uptime(ctx context.Context) time.Duration
}

// HealthService reports liveness and readiness.
//
// Readiness is the conjunction of a server-controlled flag (false before
// listeners start and after shutdown begins) and every registered
// [Checker].
type HealthService interface {
	Liveness(ctx context.Context) models.Liveness
	Readiness(ctx context.Context) models.Readiness
	SetReady(ready bool)
	IsReady() bool
}

// Checker is a single readiness dependency, such as a database.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}
