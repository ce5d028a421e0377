// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

// Environment names recognised by [App.IsDevelopment].
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// validations-api server. It is populated by merging values from a JSON
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: environment name, version,
	// logging and token verification parameters.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses, TLS files and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the optional database used as a readiness dependency.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the deployment environment name. "development" enables
	// the route listing endpoint.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is the semantic version string of the running application.
	// Exposed via /api/version and the liveness report.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the secret key used to verify (and, in tests, sign)
	// HS256 bearer tokens. Protected routes reject every request while it
	// is empty.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens issued by the auth service.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// IsDevelopment reports whether the application runs in the development
// environment.
func (a App) IsDevelopment() bool {
	return strings.EqualFold(a.Environment, EnvironmentDevelopment)
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the plain HTTP listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// HTTPSAddress is the TLS listen address. Requires TLSCertFile and
	// TLSKeyFile.
	// Env: SERVER_HTTPS_ADDRESS
	HTTPSAddress string `env:"HTTPS_ADDRESS"`

	// HTTPSPort is the public port used when building redirect locations.
	// Port 443 is left out of the location.
	// Env: SERVER_HTTPS_PORT
	HTTPSPort int `env:"HTTPS_PORT"`

	// TLSCertFile and TLSKeyFile are PEM files for the HTTPS listener.
	// Env: SERVER_TLS_CERT_FILE, SERVER_TLS_KEY_FILE
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`

	// RedirectHTTPS enables redirection of plain HTTP requests to HTTPS.
	// Env: SERVER_REDIRECT_HTTPS
	RedirectHTTPS bool `env:"REDIRECT_HTTPS"`

	// GRPCAddress is the listen address of the gRPC health service. The
	// service is disabled while it is empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single request; zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// ReadinessTimeout bounds each readiness check.
	// Env: SERVER_READINESS_TIMEOUT
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT"`
}

// Storage groups the configuration of external storage dependencies.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string. When set, the database is
	// pinged as part of the readiness report.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are applied in the following order, later
// sources overriding earlier non-zero fields:
//  1. JSON file (path resolved from the other two sources)
//  2. Environment variables
//  3. Command-line flags
//
// Unset fields receive defaults before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		build()
}
