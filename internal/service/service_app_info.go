// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/logger"
)

type appInfoService struct {
	appVersion  string
	environment string
	startedAt   time.Time

	now func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		environment: cfg.Environment,
		startedAt:   time.Now(),
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetEnvironment(ctx context.Context) string {
	return s.environment
}

// Uptime is the time elapsed since the service was constructed, truncated
// to whole seconds.
func (s *appInfoService) Uptime(ctx context.Context) time.Duration {
	return s.now().Sub(s.startedAt).Truncate(time.Second)
}
