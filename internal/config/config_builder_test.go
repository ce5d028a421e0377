// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:   EnvironmentProduction,
			Version:       "dev",
			LogLevel:      "info",
			TokenIssuer:   "validations-api",
			TokenDuration: time.Hour,
		},
		Server: Server{
			HTTPAddress:      ":8080",
			HTTPSPort:        443,
			ShutdownTimeout:  10 * time.Second,
			ReadinessTimeout: 2 * time.Second,
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder([]string{"-a", ":9000"})
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Equal(t, []string{"-a", ":9000"}, b.args)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigsOverride verifies that non-zero fields of later
// configs win and zero fields keep earlier values.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{
			App:    App{Version: "1.0.0", LogLevel: "warn"},
			Server: Server{HTTPAddress: "localhost:8080"},
		},
		&StructuredConfig{
			App:    App{Version: "2.0.0"},
			Server: Server{GRPCAddress: "localhost:9090"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
}

func TestBuild_HTTPSOnlyKeepsHTTPAddressEmpty(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPSAddress: ":8443", TLSCertFile: "c.pem", TLSKeyFile: "k.pem"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Equal(t, ":8443", cfg.Server.HTTPSAddress)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "https without cert",
			cfg:     &StructuredConfig{Server: Server{HTTPSAddress: ":8443"}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "https port out of range",
			cfg:     &StructuredConfig{Server: Server{HTTPSPort: 70000}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative request timeout",
			cfg:     &StructuredConfig{Server: Server{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative token duration",
			cfg:     &StructuredConfig{App: App{TokenDuration: -time.Minute}},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder(nil)
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "3.1.4"})

	b := newConfigBuilder(nil).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "3.1.4", b.configs[0].App.Version)
}

func TestWithEnv_RecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_HTTPS_PORT": "nope"})

	b := newConfigBuilder(nil).withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_RecordsError(t *testing.T) {
	b := newConfigBuilder([]string{"-bogus"}).withFlags()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	setEnvVars(t, nil)

	b := newConfigBuilder(nil).withEnv().withFlags().withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 2)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"CONFIG": "/does/not/exist.json"})

	b := newConfigBuilder(nil).withEnv().withJSON()
	assert.Error(t, b.err)
}

// TestBuilder_Precedence verifies JSON < env < flags.
func TestBuilder_Precedence(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"version":     "json-version",
			"log_level":   "debug",
			"environment": "development",
		},
		"server": map[string]any{
			"http_address": "localhost:7000",
		},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":         jsonPath,
		"APP_VERSION":    "env-version",
		"SERVER_ADDRESS": "localhost:7001",
	})

	cfg, err := newConfigBuilder([]string{"-a", "localhost:7002"}).
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "localhost:7002", cfg.Server.HTTPAddress)
}

func TestApp_IsDevelopment(t *testing.T) {
	assert.True(t, App{Environment: "development"}.IsDevelopment())
	assert.True(t, App{Environment: "Development"}.IsDevelopment())
	assert.False(t, App{Environment: "production"}.IsDevelopment())
	assert.False(t, App{}.IsDevelopment())
}
