// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress      = ":8080"
	defaultHTTPSPort        = 443
	defaultEnvironment      = EnvironmentProduction
	defaultLogLevel         = "info"
	defaultTokenIssuer      = "validations-api"
	defaultTokenDuration    = time.Hour
	defaultShutdownTimeout  = 10 * time.Second
	defaultReadinessTimeout = 2 * time.Second
	defaultVersion          = "dev"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = defaultEnvironment
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.HTTPSAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.HTTPSPort == 0 {
		cfg.Server.HTTPSPort = defaultHTTPSPort
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Server.ReadinessTimeout == 0 {
		cfg.Server.ReadinessTimeout = defaultReadinessTimeout
	}
}
